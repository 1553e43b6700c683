package engine

import "github.com/dmitrymomot/formkit/pkg/rules"

// State is the externally-owned observable form state the engine
// collaborates with. The engine reads values and touched/inactive
// flags from it and writes error lists and validating flags back; it
// never owns or stores any of this itself.
//
// All methods are called from the goroutine driving a validation run,
// possibly several at once during a form-wide pass, so implementations
// must be safe for concurrent use. Error and validating writes arrive
// while the engine holds its internal lock, so implementations must
// not call back into the engine from these methods and must not block
// in them.
type State interface {
	// Values returns the current value tree: map[string]any objects,
	// []any arrays, scalar leaves.
	Values() map[string]any

	// SetErrors replaces the error list of a concrete field path.
	SetErrors(path string, errs rules.Errors)

	// ClearErrors removes the error entry of a concrete field path.
	ClearErrors(path string)

	// ErrorPaths lists every field path that currently has an error entry.
	ErrorPaths() []string

	// SetValidating flips the "an async check is running" flag of a field.
	SetValidating(path string, validating bool)

	// Touched reports whether the user has interacted with a field.
	Touched(path string) bool

	// MarkTouched marks a field as interacted with.
	MarkTouched(path string)

	// Inactive reports whether a field is conditionally inactive, such
	// as a requiredIf field whose condition does not currently hold.
	// Inactive fields never block form-level validity.
	Inactive(path string) bool
}
