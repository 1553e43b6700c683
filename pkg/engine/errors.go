package engine

import "errors"

var (
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("engine: engine is closed")

	// ErrNilState is returned by New when no state collaborator is given.
	ErrNilState = errors.New("engine: state collaborator is nil")

	// ErrPatternPath is returned when a pattern is passed where a
	// concrete field path is required.
	ErrPatternPath = errors.New("engine: field path must be concrete, not a pattern")

	// ErrInvalidRuleKey is returned by SetRules when a rule-table key
	// is not a parseable field path or pattern.
	ErrInvalidRuleKey = errors.New("engine: invalid rule table key")
)
