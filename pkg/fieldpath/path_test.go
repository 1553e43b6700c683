package fieldpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses nested path", func(t *testing.T) {
		p, err := fieldpath.Parse("contacts.0.email")
		require.NoError(t, err)
		assert.Equal(t, fieldpath.Path{"contacts", "0", "email"}, p)
		assert.Equal(t, "contacts.0.email", p.String())
	})

	t.Run("parses single segment", func(t *testing.T) {
		p, err := fieldpath.Parse("password")
		require.NoError(t, err)
		assert.Equal(t, fieldpath.Path{"password"}, p)
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := fieldpath.Parse("")
		assert.ErrorIs(t, err, fieldpath.ErrEmptyPath)
	})

	t.Run("rejects empty segment", func(t *testing.T) {
		_, err := fieldpath.Parse("a..b")
		assert.ErrorIs(t, err, fieldpath.ErrEmptySegment)
	})

	t.Run("MustParse panics on invalid input", func(t *testing.T) {
		assert.Panics(t, func() { fieldpath.MustParse("") })
	})
}

func TestIsPattern(t *testing.T) {
	t.Parallel()

	assert.True(t, fieldpath.MustParse("contacts.*.email").IsPattern())
	assert.False(t, fieldpath.MustParse("contacts.0.email").IsPattern())
}

func TestHasPrefix(t *testing.T) {
	t.Parallel()

	p := fieldpath.MustParse("contacts.0.email")
	assert.True(t, p.HasPrefix(fieldpath.MustParse("contacts.0")))
	assert.True(t, p.HasPrefix(fieldpath.MustParse("contacts")))
	assert.False(t, p.HasPrefix(fieldpath.MustParse("contacts.1")))
	assert.False(t, p.HasPrefix(fieldpath.MustParse("contacts.0.email.x")))
}

func TestGet(t *testing.T) {
	t.Parallel()

	values := map[string]any{
		"password": "secret",
		"contacts": []any{
			map[string]any{"email": "a@example.com"},
			map[string]any{"email": "b@example.com"},
		},
	}

	t.Run("reads top-level value", func(t *testing.T) {
		v, ok := fieldpath.Get(values, fieldpath.MustParse("password"))
		require.True(t, ok)
		assert.Equal(t, "secret", v)
	})

	t.Run("reads through arrays", func(t *testing.T) {
		v, ok := fieldpath.Get(values, fieldpath.MustParse("contacts.1.email"))
		require.True(t, ok)
		assert.Equal(t, "b@example.com", v)
	})

	t.Run("misses absent key", func(t *testing.T) {
		_, ok := fieldpath.Get(values, fieldpath.MustParse("missing"))
		assert.False(t, ok)
	})

	t.Run("misses out-of-range index", func(t *testing.T) {
		_, ok := fieldpath.Get(values, fieldpath.MustParse("contacts.5.email"))
		assert.False(t, ok)
	})

	t.Run("misses through scalar", func(t *testing.T) {
		_, ok := fieldpath.Get(values, fieldpath.MustParse("password.x"))
		assert.False(t, ok)
	})

	t.Run("misses on wildcard", func(t *testing.T) {
		_, ok := fieldpath.Get(values, fieldpath.MustParse("contacts.*.email"))
		assert.False(t, ok)
	})
}

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("writes top-level value", func(t *testing.T) {
		values := map[string]any{}
		err := fieldpath.Set(values, fieldpath.MustParse("password"), "abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", values["password"])
	})

	t.Run("creates intermediate objects", func(t *testing.T) {
		values := map[string]any{}
		err := fieldpath.Set(values, fieldpath.MustParse("profile.name"), "Alex")
		require.NoError(t, err)
		v, ok := fieldpath.Get(values, fieldpath.MustParse("profile.name"))
		require.True(t, ok)
		assert.Equal(t, "Alex", v)
	})

	t.Run("writes into existing array index", func(t *testing.T) {
		values := map[string]any{"items": []any{"a", "b"}}
		err := fieldpath.Set(values, fieldpath.MustParse("items.1"), "c")
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "c"}, values["items"])
	})

	t.Run("rejects out-of-range index", func(t *testing.T) {
		values := map[string]any{"items": []any{"a"}}
		err := fieldpath.Set(values, fieldpath.MustParse("items.3"), "x")
		assert.ErrorIs(t, err, fieldpath.ErrIndexOutOfRange)
	})

	t.Run("rejects wildcard target", func(t *testing.T) {
		values := map[string]any{}
		err := fieldpath.Set(values, fieldpath.MustParse("items.*"), "x")
		assert.ErrorIs(t, err, fieldpath.ErrWildcardWrite)
	})

	t.Run("rejects writing through scalar", func(t *testing.T) {
		values := map[string]any{"a": "scalar"}
		err := fieldpath.Set(values, fieldpath.MustParse("a.b"), "x")
		assert.ErrorIs(t, err, fieldpath.ErrNotContainer)
	})
}

func TestArrayLen(t *testing.T) {
	t.Parallel()

	values := map[string]any{
		"items": []any{1, 2, 3},
		"name":  "x",
	}

	n, ok := fieldpath.ArrayLen(values, fieldpath.MustParse("items"))
	require.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = fieldpath.ArrayLen(values, fieldpath.MustParse("name"))
	assert.False(t, ok)

	_, ok = fieldpath.ArrayLen(values, fieldpath.MustParse("missing"))
	assert.False(t, ok)
}
