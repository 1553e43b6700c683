package fieldpath

// Get reads the value at path p in a value tree built from
// map[string]any objects and []any arrays. The second return value is
// false when any intermediate segment is absent, addresses a
// non-container value, or is a wildcard.
func Get(values map[string]any, p Path) (any, bool) {
	var current any = values
	for _, seg := range p {
		if seg == Wildcard {
			return nil, false
		}
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, ok := indexOf(seg)
			if !ok || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// Set writes value at path p, creating intermediate objects as needed.
// Array segments must address an existing index; growing an array is
// done by replacing the array value at its own path. Patterns cannot
// be written to.
func Set(values map[string]any, p Path, value any) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	if p.IsPattern() {
		return ErrWildcardWrite
	}

	var current any = values
	for _, seg := range p[:len(p)-1] {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				child := make(map[string]any)
				node[seg] = child
				current = child
				continue
			}
			current = next
		case []any:
			idx, ok := indexOf(seg)
			if !ok {
				return ErrNotContainer
			}
			if idx >= len(node) {
				return ErrIndexOutOfRange
			}
			current = node[idx]
		default:
			return ErrNotContainer
		}
	}

	last := p[len(p)-1]
	switch node := current.(type) {
	case map[string]any:
		node[last] = value
		return nil
	case []any:
		idx, ok := indexOf(last)
		if !ok {
			return ErrNotContainer
		}
		if idx >= len(node) {
			return ErrIndexOutOfRange
		}
		node[idx] = value
		return nil
	default:
		return ErrNotContainer
	}
}

// ArrayLen returns the length of the array at path p.
// The second return value is false when the value is absent or not an array.
func ArrayLen(values map[string]any, p Path) (int, bool) {
	v, ok := Get(values, p)
	if !ok {
		return 0, false
	}
	arr, ok := v.([]any)
	if !ok {
		return 0, false
	}
	return len(arr), true
}
