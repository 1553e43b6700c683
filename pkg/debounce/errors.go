package debounce

import "errors"

var (
	// ErrSuperseded is returned by a call that was displaced by a newer
	// call before its debounce window elapsed. It is a cancellation
	// signal, not a verdict on the value.
	ErrSuperseded = errors.New("debounce: call superseded by a newer call")
)
