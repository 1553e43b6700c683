package rules

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/file"
)

// fileOf extracts the file metadata from a field value.
func fileOf(value any) (*file.File, bool) {
	f, ok := value.(*file.File)
	if !ok || f == nil {
		return nil, false
	}
	return f, true
}

// MaxFileSize fails when a picked file is larger than max bytes.
// Non-file and empty values pass.
func MaxFileSize(max int64) *Rule {
	return &Rule{
		Name: "maxFileSize",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			f, ok := fileOf(value)
			if !ok || f.Size <= max {
				return nil
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        fmt.Sprintf("file must be at most %d bytes", max),
				TranslationKey: "validation.max_file_size",
				TranslationValues: map[string]any{
					"field": meta.Field.String(),
					"max":   max,
					"size":  f.Size,
				},
			}}
		},
	}
}

// AllowedMIMETypes fails when a picked file's MIME type is not in the
// allowed set.
func AllowedMIMETypes(mimeTypes ...string) *Rule {
	allowed := make(map[string]bool, len(mimeTypes))
	for _, mt := range mimeTypes {
		allowed[mt] = true
	}
	return &Rule{
		Name: "allowedMIMETypes",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			f, ok := fileOf(value)
			if !ok || allowed[f.MIMEType] {
				return nil
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        "file type is not allowed",
				TranslationKey: "validation.mime_type",
				TranslationValues: map[string]any{
					"field":   meta.Field.String(),
					"allowed": mimeTypes,
					"got":     f.MIMEType,
				},
			}}
		},
	}
}

// Image fails when a picked file is not an image.
func Image() *Rule {
	return &Rule{
		Name: "image",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			f, ok := fileOf(value)
			if !ok || f.IsImage() {
				return nil
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        "must be an image",
				TranslationKey: "validation.image",
				TranslationValues: map[string]any{
					"field": meta.Field.String(),
				},
			}}
		},
	}
}
