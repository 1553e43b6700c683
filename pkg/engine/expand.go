package engine

import (
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// expansion is one materialization of the rule table against a value
// tree: every pattern key replaced by one concrete entry per current
// array index. lengths records the array length observed at each
// pattern prefix (-1 for absent or non-array), so the memo can tell
// when structure changed under it.
type expansion struct {
	table   map[string][]*rules.Rule
	lengths map[string]int
}

// validFor reports whether the expansion still describes values: every
// array it observed must still have the length it observed. A changed
// length, a removed array, or one that has since appeared all
// invalidate it.
func (x *expansion) validFor(values map[string]any) bool {
	for prefix, want := range x.lengths {
		p, err := fieldpath.Parse(prefix)
		if err != nil {
			return false
		}
		got, ok := fieldpath.ArrayLen(values, p)
		if !ok {
			got = -1
		}
		if got != want {
			return false
		}
	}
	return true
}

// expand materializes a normalized rule table against the current
// values. Literal keys pass through first; pattern keys then
// contribute one entry per index of the array found at each wildcard
// prefix, reusing the same rule list reference. When a concrete path
// is covered both literally and via a pattern, the literal rules run
// first and duplicates are dropped by pointer identity.
func expand(ruleSet map[string][]*rules.Rule, keys map[string]fieldpath.Path, values map[string]any) *expansion {
	x := &expansion{
		table:   make(map[string][]*rules.Rule, len(ruleSet)),
		lengths: make(map[string]int),
	}

	for key, path := range keys {
		if !path.IsPattern() {
			x.add(key, ruleSet[key])
		}
	}
	for key, path := range keys {
		if !path.IsPattern() {
			continue
		}
		for _, concrete := range x.expandPattern(path, values) {
			x.add(concrete.String(), ruleSet[key])
		}
	}
	return x
}

// expandPattern is the recording variant of fieldpath.ExpandPattern:
// identical traversal, but it notes the length observed at every
// wildcard prefix so validFor can compare later. An absent or
// non-array prefix is recorded as -1 and contributes no entries.
func (x *expansion) expandPattern(pattern fieldpath.Path, values map[string]any) []fieldpath.Path {
	star := -1
	for i, seg := range pattern {
		if seg == fieldpath.Wildcard {
			star = i
			break
		}
	}
	if star < 0 {
		return []fieldpath.Path{pattern}
	}

	prefix := pattern[:star]
	length, ok := fieldpath.ArrayLen(values, prefix)
	if !ok {
		x.lengths[prefix.String()] = -1
		return nil
	}
	x.lengths[prefix.String()] = length

	var out []fieldpath.Path
	for i := 0; i < length; i++ {
		next := pattern.Clone()
		next[star] = strconv.Itoa(i)
		out = append(out, x.expandPattern(next, values)...)
	}
	return out
}

func (x *expansion) add(path string, list []*rules.Rule) {
	existing, ok := x.table[path]
	if !ok {
		x.table[path] = list
		return
	}
	seen := make(map[*rules.Rule]bool, len(existing))
	merged := append([]*rules.Rule(nil), existing...)
	for _, r := range existing {
		seen[r] = true
	}
	for _, r := range list {
		if !seen[r] {
			merged = append(merged, r)
		}
	}
	x.table[path] = merged
}
