package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

func check(t *testing.T, r *rules.Rule, value any) rules.Errors {
	t.Helper()
	return r.Check(context.Background(), value, rules.Values{}, rules.Meta{
		Field: fieldpath.MustParse("field"),
	})
}

func TestRequired(t *testing.T) {
	t.Parallel()

	r := rules.Required()

	t.Run("passes for non-empty string", func(t *testing.T) {
		assert.Empty(t, check(t, r, "abc"))
	})

	t.Run("fails for empty and whitespace strings", func(t *testing.T) {
		for _, v := range []any{nil, "", "   ", []any{}, map[string]any{}} {
			errs := check(t, r, v)
			require.Len(t, errs, 1)
			assert.Equal(t, "field is required", errs[0].Message)
			assert.Equal(t, "validation.required", errs[0].TranslationKey)
			assert.Equal(t, "field", errs[0].Field)
		}
	})

	t.Run("passes for zero number", func(t *testing.T) {
		assert.Empty(t, check(t, r, 0))
	})
}

func TestMinLength(t *testing.T) {
	t.Parallel()

	r := rules.MinLength(3)

	t.Run("passes at and above the minimum", func(t *testing.T) {
		assert.Empty(t, check(t, r, "abc"))
		assert.Empty(t, check(t, r, "abcd"))
	})

	t.Run("fails below the minimum", func(t *testing.T) {
		errs := check(t, r, "ab")
		require.Len(t, errs, 1)
		assert.Equal(t, "must be at least 3 characters long", errs[0].Message)
		assert.Equal(t, "validation.min_length", errs[0].TranslationKey)
	})

	t.Run("empty value passes", func(t *testing.T) {
		assert.Empty(t, check(t, r, ""))
	})

	t.Run("non-string fails", func(t *testing.T) {
		assert.Len(t, check(t, r, 12345), 1)
	})
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	r := rules.MaxLength(3)
	assert.Empty(t, check(t, r, "abc"))
	assert.Len(t, check(t, r, "abcd"), 1)
	assert.Empty(t, check(t, r, nil))
}

func TestEmail(t *testing.T) {
	t.Parallel()

	r := rules.Email()

	t.Run("accepts plain addresses", func(t *testing.T) {
		assert.Empty(t, check(t, r, "user@example.com"))
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, v := range []any{"not-an-email", "user@", "user@nodot", "user@.com", 42} {
			assert.NotEmpty(t, check(t, r, v), "value %v", v)
		}
	})

	t.Run("empty value passes", func(t *testing.T) {
		assert.Empty(t, check(t, r, ""))
	})
}

func TestMatches(t *testing.T) {
	t.Parallel()

	r := rules.Matches(`^[a-z]+$`)
	assert.Empty(t, check(t, r, "abc"))

	errs := check(t, r, "abc123")
	require.Len(t, errs, 1)
	assert.Equal(t, "validation.pattern", errs[0].TranslationKey)

	assert.Empty(t, check(t, r, ""))
}
