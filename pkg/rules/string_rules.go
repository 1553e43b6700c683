package rules

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/file"
)

// isEmpty reports whether a field value counts as "not filled in".
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	case *file.File:
		return v == nil
	default:
		return false
	}
}

// stringOf extracts the string form of a value for length and format
// checks. Non-string values fail the extraction rather than being
// coerced, so a numeric value never silently passes a string rule.
func stringOf(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// Required fails when the value is absent, an empty or whitespace-only
// string, or an empty array or object.
func Required() *Rule {
	return &Rule{
		Name: "required",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			if isEmpty(value) {
				return Errors{{
					Field:          meta.Field.String(),
					Message:        "field is required",
					TranslationKey: "validation.required",
					TranslationValues: map[string]any{
						"field": meta.Field.String(),
					},
				}}
			}
			return nil
		},
	}
}

// MinLength fails when a string value is shorter than min.
// Empty values pass; pair with Required to reject them.
func MinLength(min int) *Rule {
	return &Rule{
		Name: "minLength",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			if isEmpty(value) {
				return nil
			}
			s, ok := stringOf(value)
			if ok && len(s) >= min {
				return nil
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        fmt.Sprintf("must be at least %d characters long", min),
				TranslationKey: "validation.min_length",
				TranslationValues: map[string]any{
					"field": meta.Field.String(),
					"min":   min,
				},
			}}
		},
	}
}

// MaxLength fails when a string value is longer than max.
func MaxLength(max int) *Rule {
	return &Rule{
		Name: "maxLength",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			s, ok := stringOf(value)
			if !ok || len(s) <= max {
				return nil
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        fmt.Sprintf("must be at most %d characters long", max),
				TranslationKey: "validation.max_length",
				TranslationValues: map[string]any{
					"field": meta.Field.String(),
					"max":   max,
				},
			}}
		},
	}
}

// Email fails when a non-empty string value is not a plausible email
// address for web use: parseable, with a dotted domain.
func Email() *Rule {
	return &Rule{
		Name: "email",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			if isEmpty(value) {
				return nil
			}
			invalid := Errors{{
				Field:          meta.Field.String(),
				Message:        "must be a valid email address",
				TranslationKey: "validation.email",
				TranslationValues: map[string]any{
					"field": meta.Field.String(),
				},
			}}

			s, ok := stringOf(value)
			if !ok {
				return invalid
			}
			addr, err := mail.ParseAddress(s)
			if err != nil || addr.Address != s {
				return invalid
			}
			at := strings.LastIndex(s, "@")
			domain := s[at+1:]
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return invalid
			}
			return nil
		},
	}
}

// Matches fails when a non-empty string value does not match the
// pattern. The pattern is compiled once at rule construction.
func Matches(pattern string) *Rule {
	re := regexp.MustCompile(pattern)
	return &Rule{
		Name: "matches",
		Check: func(ctx context.Context, value any, all Values, meta Meta) Errors {
			if isEmpty(value) {
				return nil
			}
			s, ok := stringOf(value)
			if ok && re.MatchString(s) {
				return nil
			}
			return Errors{{
				Field:          meta.Field.String(),
				Message:        "has an invalid format",
				TranslationKey: "validation.pattern",
				TranslationValues: map[string]any{
					"field":   meta.Field.String(),
					"pattern": pattern,
				},
			}}
		},
	}
}
