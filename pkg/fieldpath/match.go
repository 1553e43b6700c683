package fieldpath

import "strconv"

// Match reports whether a pattern matches a concrete path.
// Paths match segment by segment: literal segments must be equal, a
// wildcard segment matches any integer index. Lengths must be equal.
// A pattern without wildcards matches only its exact self.
func Match(pattern, concrete Path) bool {
	if len(pattern) != len(concrete) {
		return false
	}
	for i, seg := range pattern {
		if seg == Wildcard {
			if !isIndex(concrete[i]) {
				return false
			}
			continue
		}
		if seg != concrete[i] {
			return false
		}
	}
	return true
}

// ResolvePattern replaces each wildcard in pattern with the index found
// at the same position in ref. This is how a rule attached to
// "contacts.*.email" resolves a sibling pattern "contacts.*.confirm"
// to the array index it is currently evaluating. The second return
// value is false when some wildcard has no index to borrow, in which
// case the returned path still contains that wildcard.
func ResolvePattern(pattern, ref Path) (Path, bool) {
	if !pattern.IsPattern() {
		return pattern, true
	}
	out := pattern.Clone()
	resolved := true
	for i, seg := range out {
		if seg != Wildcard {
			continue
		}
		if i < len(ref) && isIndex(ref[i]) {
			out[i] = ref[i]
		} else {
			resolved = false
		}
	}
	return out, resolved
}

// ExpandPattern materializes a pattern against a value tree: every
// wildcard is replaced by each valid index of the array found at the
// prefix before it. A prefix that is absent or not an array contributes
// nothing. A pattern without wildcards expands to itself.
func ExpandPattern(pattern Path, values map[string]any) []Path {
	star := -1
	for i, seg := range pattern {
		if seg == Wildcard {
			star = i
			break
		}
	}
	if star < 0 {
		return []Path{pattern.Clone()}
	}

	length, ok := ArrayLen(values, pattern[:star])
	if !ok {
		return nil
	}

	var out []Path
	for i := 0; i < length; i++ {
		next := pattern.Clone()
		next[star] = strconv.Itoa(i)
		out = append(out, ExpandPattern(next, values)...)
	}
	return out
}
