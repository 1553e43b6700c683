package fieldpath

import "errors"

var (
	// ErrEmptyPath is returned when parsing or writing an empty path.
	ErrEmptyPath = errors.New("fieldpath: path is empty")

	// ErrEmptySegment is returned when a path contains an empty segment ("a..b").
	ErrEmptySegment = errors.New("fieldpath: path contains an empty segment")

	// ErrWildcardWrite is returned when a pattern is used as a write target.
	ErrWildcardWrite = errors.New("fieldpath: cannot write through a wildcard segment")

	// ErrNotContainer is returned when a segment addresses into a scalar value.
	ErrNotContainer = errors.New("fieldpath: segment does not address an object or array")

	// ErrIndexOutOfRange is returned when an array segment is past the array's end.
	ErrIndexOutOfRange = errors.New("fieldpath: array index out of range")
)
