package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("flattens nested chains in order", func(t *testing.T) {
		required := rules.Required()
		minLen := rules.MinLength(3)
		email := rules.Email()

		chain := rules.Chain("identity", rules.Chain("base", required, minLen), email)
		got := rules.Normalize([]*rules.Rule{chain})
		require.Len(t, got, 3)
		assert.Same(t, required, got[0])
		assert.Same(t, minLen, got[1])
		assert.Same(t, email, got[2])
	})

	t.Run("deduplicates by pointer identity", func(t *testing.T) {
		required := rules.Required()
		got := rules.Normalize([]*rules.Rule{required, rules.Chain("c", required)})
		require.Len(t, got, 1)
		assert.Same(t, required, got[0])
	})

	t.Run("two instances of the same factory stay distinct", func(t *testing.T) {
		got := rules.Normalize([]*rules.Rule{rules.Required(), rules.Required()})
		assert.Len(t, got, 2)
	})

	t.Run("skips nil entries", func(t *testing.T) {
		got := rules.Normalize([]*rules.Rule{nil, rules.Required()})
		assert.Len(t, got, 1)
	})
}

func TestDependencies(t *testing.T) {
	t.Parallel()

	list := []*rules.Rule{
		rules.Required(),
		rules.SameAs("password"),
		rules.RequiredIf("password", "x"),
		rules.SameAs("password"),
	}
	assert.Equal(t, []string{"password"}, rules.Dependencies(list))
}

func TestMetaResolve(t *testing.T) {
	t.Parallel()

	meta := rules.Meta{Field: fieldpath.MustParse("contacts.1.confirm")}

	t.Run("resolves sibling pattern", func(t *testing.T) {
		p, ok := meta.Resolve("contacts.*.email")
		require.True(t, ok)
		assert.Equal(t, "contacts.1.email", p.String())
	})

	t.Run("concrete path unchanged", func(t *testing.T) {
		p, ok := meta.Resolve("password")
		require.True(t, ok)
		assert.Equal(t, "password", p.String())
	})

	t.Run("malformed path", func(t *testing.T) {
		_, ok := meta.Resolve("")
		assert.False(t, ok)
	})
}

func TestMetaLookup(t *testing.T) {
	t.Parallel()

	all := rules.Values{
		"contacts": []any{
			map[string]any{"email": "a@example.com"},
			map[string]any{"email": "b@example.com"},
		},
	}
	meta := rules.Meta{Field: fieldpath.MustParse("contacts.1.confirm")}

	v, ok := meta.Lookup(all, "contacts.*.email")
	require.True(t, ok)
	assert.Equal(t, "b@example.com", v)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	errs := rules.Errors{
		{Field: "password", Message: "field is required"},
		{Field: "password", Message: "too short"},
	}
	assert.Equal(t, "validation failed: password: field is required; password: too short", errs.Error())
	assert.Equal(t, []string{"field is required", "too short"}, errs.Messages())
	assert.False(t, errs.IsEmpty())
	assert.True(t, rules.Errors{}.IsEmpty())
	assert.Nil(t, rules.Errors{}.Messages())
}
