package fieldpath_test

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern  string
		concrete string
		want     bool
	}{
		{"contacts.*.email", "contacts.0.email", true},
		{"contacts.*.email", "contacts.12.email", true},
		{"contacts.*.email", "contacts.x.email", false},
		{"contacts.*.email", "contacts.0.name", false},
		{"contacts.*.email", "contacts.0", false},
		{"contacts.*", "contacts.3", true},
		{"password", "password", true},
		{"password", "confirm", false},
		{"a.*.b.*", "a.1.b.2", true},
		{"a.*.b.*", "a.1.b.x", false},
	}

	for _, tc := range cases {
		t.Run(tc.pattern+" vs "+tc.concrete, func(t *testing.T) {
			got := fieldpath.Match(fieldpath.MustParse(tc.pattern), fieldpath.MustParse(tc.concrete))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolvePattern(t *testing.T) {
	t.Parallel()

	t.Run("borrows sibling index", func(t *testing.T) {
		got, ok := fieldpath.ResolvePattern(
			fieldpath.MustParse("contacts.*.confirmEmail"),
			fieldpath.MustParse("contacts.1.email"),
		)
		require.True(t, ok)
		assert.Equal(t, "contacts.1.confirmEmail", got.String())
	})

	t.Run("concrete pattern passes through", func(t *testing.T) {
		got, ok := fieldpath.ResolvePattern(
			fieldpath.MustParse("password"),
			fieldpath.MustParse("confirm"),
		)
		require.True(t, ok)
		assert.Equal(t, "password", got.String())
	})

	t.Run("reports unresolvable wildcard", func(t *testing.T) {
		got, ok := fieldpath.ResolvePattern(
			fieldpath.MustParse("contacts.*.email"),
			fieldpath.MustParse("password"),
		)
		assert.False(t, ok)
		assert.Equal(t, "contacts.*.email", got.String())
	})

	t.Run("does not mutate the pattern", func(t *testing.T) {
		pattern := fieldpath.MustParse("contacts.*.email")
		_, _ = fieldpath.ResolvePattern(pattern, fieldpath.MustParse("contacts.4.email"))
		assert.Equal(t, "contacts.*.email", pattern.String())
	})
}

func TestExpandPattern(t *testing.T) {
	t.Parallel()

	values := map[string]any{
		"contacts": []any{
			map[string]any{"email": "a"},
			map[string]any{"email": "b"},
			map[string]any{"email": "c"},
		},
		"matrix": []any{
			[]any{1, 2},
			[]any{3},
		},
		"name": "x",
	}

	t.Run("one entry per index", func(t *testing.T) {
		got := fieldpath.ExpandPattern(fieldpath.MustParse("contacts.*.email"), values)
		require.Len(t, got, 3)
		assert.Equal(t, "contacts.0.email", got[0].String())
		assert.Equal(t, "contacts.1.email", got[1].String())
		assert.Equal(t, "contacts.2.email", got[2].String())
	})

	t.Run("nested wildcards expand per inner array length", func(t *testing.T) {
		got := fieldpath.ExpandPattern(fieldpath.MustParse("matrix.*.*"), values)
		paths := make([]string, len(got))
		for i, p := range got {
			paths[i] = p.String()
		}
		assert.Equal(t, []string{"matrix.0.0", "matrix.0.1", "matrix.1.0"}, paths)
	})

	t.Run("absent array expands to nothing", func(t *testing.T) {
		got := fieldpath.ExpandPattern(fieldpath.MustParse("missing.*.email"), values)
		assert.Empty(t, got)
	})

	t.Run("non-array prefix expands to nothing", func(t *testing.T) {
		got := fieldpath.ExpandPattern(fieldpath.MustParse("name.*"), values)
		assert.Empty(t, got)
	})

	t.Run("concrete path expands to itself", func(t *testing.T) {
		got := fieldpath.ExpandPattern(fieldpath.MustParse("name"), values)
		require.Len(t, got, 1)
		assert.Equal(t, "name", got[0].String())
	})
}

// Property: replacing every wildcard of a pattern with any non-negative
// indices yields a concrete path the pattern matches, and any change to
// a literal segment breaks the match.
func TestMatchProperties(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	genSegments := gen.SliceOfN(4, gen.OneConstOf("alpha", "beta", "*", "gamma"))
	genIndices := gen.SliceOfN(4, gen.IntRange(0, 99))

	properties.Property("wildcard substitution always matches", prop.ForAll(
		func(segments []string, indices []int) bool {
			pattern := fieldpath.Path(segments)
			concrete := pattern.Clone()
			for i, seg := range concrete {
				if seg == fieldpath.Wildcard {
					concrete[i] = strconv.Itoa(indices[i])
				}
			}
			return fieldpath.Match(pattern, concrete)
		},
		genSegments, genIndices,
	))

	properties.Property("literal mismatch never matches", prop.ForAll(
		func(segments []string, indices []int, pos int) bool {
			pattern := fieldpath.Path(segments)
			concrete := pattern.Clone()
			for i, seg := range concrete {
				if seg == fieldpath.Wildcard {
					concrete[i] = strconv.Itoa(indices[i])
				}
			}
			i := pos % len(concrete)
			if pattern[i] == fieldpath.Wildcard {
				return true // substituted index always matches
			}
			concrete[i] = concrete[i] + "x"
			return !fieldpath.Match(pattern, concrete)
		},
		genSegments, genIndices, gen.IntRange(0, 3),
	))

	properties.Property("pattern never matches different length", prop.ForAll(
		func(segments []string) bool {
			pattern := fieldpath.Path(segments)
			shorter := pattern[:len(pattern)-1]
			return !fieldpath.Match(pattern, shorter)
		},
		genSegments,
	))

	properties.TestingRun(t)
}
