package rules

import "errors"

var (
	// ErrUnknownRule is returned when an expression names a rule that is not registered.
	ErrUnknownRule = errors.New("rules: unknown rule")

	// ErrInvalidRuleArgs is returned when an expression passes malformed arguments to a rule.
	ErrInvalidRuleArgs = errors.New("rules: invalid rule arguments")

	// ErrInvalidManifest is returned when a YAML rule manifest cannot be parsed.
	ErrInvalidManifest = errors.New("rules: invalid manifest")
)
