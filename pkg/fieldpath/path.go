package fieldpath

import (
	"strconv"
	"strings"
)

// Wildcard is the pattern segment standing for any array index.
const Wildcard = "*"

// Path is a parsed field path: an ordered sequence of segments, each a
// property name, a non-negative integer index, or (in patterns only) the
// wildcard segment.
type Path []string

// Parse splits a dot-separated field path into segments.
// It rejects empty paths and paths with empty segments ("a..b").
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, ErrEmptyPath
	}
	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, ErrEmptySegment
		}
	}
	return Path(segments), nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for path literals in tests and rule tables.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the dot-joined form used as external identity.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// IsPattern reports whether the path contains at least one wildcard segment.
func (p Path) IsPattern() bool {
	for _, seg := range p {
		if seg == Wildcard {
			return true
		}
	}
	return false
}

// HasPrefix reports whether p starts with all segments of prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i, seg := range prefix {
		if p[i] != seg {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// isIndex reports whether a segment is a non-negative integer index.
// Leading zeros are accepted ("03" addresses index 3), matching the
// behavior of numeric map keys being normalized on parse.
func isIndex(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func indexOf(seg string) (int, bool) {
	if !isIndex(seg) {
		return 0, false
	}
	n, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return n, true
}
