package rules

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/deepval"
)

// numberOf coerces a field value to float64 for numeric comparisons.
// JSON-decoded trees carry numbers as float64; typed Go values and
// numeric strings are accepted too.
func numberOf(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// SameAs fails when the value differs structurally from the value at
// path. Path may be a pattern; it is resolved against the field under
// evaluation, so "contacts.*.email" from inside "contacts.1.confirm"
// reads index 1.
func SameAs(path string) *Rule {
	return &Rule{
		Name: "sameAs",
		Deps: []string{path},
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			other, _ := meta.Lookup(all, path)
			if deepval.Equal(value, other) {
				return nil
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        fmt.Sprintf("must match %s", path),
				TranslationKey: "validation.same_as",
				TranslationValues: map[string]any{
					"field": meta.Field.String(),
					"other": path,
				},
			}}
		},
	}
}

// RequiredIf fails when the value at path structurally equals expect
// and the field under evaluation is empty. When the condition does not
// hold, the field passes regardless of its value.
func RequiredIf(path string, expect any) *Rule {
	return &Rule{
		Name: "requiredIf",
		Deps: []string{path},
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			other, _ := meta.Lookup(all, path)
			if !deepval.Equal(other, expect) {
				return nil
			}
			if !isEmpty(value) {
				return nil
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        "field is required",
				TranslationKey: "validation.required_if",
				TranslationValues: map[string]any{
					"field": meta.Field.String(),
					"other": path,
				},
			}}
		},
	}
}

// Numeric fails when a non-empty value cannot be read as a number.
func Numeric() *Rule {
	return &Rule{
		Name: "numeric",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			if isEmpty(value) {
				return nil
			}
			if _, ok := numberOf(value); ok {
				return nil
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        "must be a number",
				TranslationKey: "validation.numeric",
				TranslationValues: map[string]any{
					"field": meta.Field.String(),
				},
			}}
		},
	}
}

// Min fails when a numeric value is below min.
func Min(min float64) *Rule {
	return &Rule{
		Name: "min",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			if isEmpty(value) {
				return nil
			}
			n, ok := numberOf(value)
			if ok && n >= min {
				return nil
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        fmt.Sprintf("must be at least %v", min),
				TranslationKey: "validation.min",
				TranslationValues: map[string]any{
					"field": meta.Field.String(),
					"min":   min,
				},
			}}
		},
	}
}

// Max fails when a numeric value is above max.
func Max(max float64) *Rule {
	return &Rule{
		Name: "max",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			if isEmpty(value) {
				return nil
			}
			n, ok := numberOf(value)
			if ok && n <= max {
				return nil
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        fmt.Sprintf("must be at most %v", max),
				TranslationKey: "validation.max",
				TranslationValues: map[string]any{
					"field": meta.Field.String(),
					"max":   max,
				},
			}}
		},
	}
}

// OneOf fails when a non-empty value is not among the allowed choices.
func OneOf(choices ...any) *Rule {
	return &Rule{
		Name: "oneOf",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			if isEmpty(value) {
				return nil
			}
			for _, choice := range choices {
				if deepval.Equal(value, choice) {
					return nil
				}
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        "must be one of the allowed values",
				TranslationKey: "validation.one_of",
				TranslationValues: map[string]any{
					"field":   meta.Field.String(),
					"choices": choices,
				},
			}}
		},
	}
}
