// Package debounce wraps an asynchronous check so that only the most
// recent call in a time window executes.
//
// A remote validation rule calls the wrapped check on every keystroke;
// the Caller makes sure the underlying lookup runs at most once per
// burst, with the last value typed. Superseded calls fail with
// ErrSuperseded, which callers are expected to swallow: a displaced
// call has no verdict, it is neither valid nor invalid.
//
//	caller := debounce.New(checkUsernameFree, 300*time.Millisecond)
//	ok, err := caller.Call(ctx, "alice")
//	if errors.Is(err, debounce.ErrSuperseded) {
//		// a newer keystroke took over, nothing to report
//	}
package debounce
