package debounce

import (
	"context"
	"sync"
	"time"
)

// CheckFunc is the asynchronous check a Caller wraps, typically a
// remote lookup answering "is this value acceptable".
type CheckFunc func(ctx context.Context, value any) (bool, error)

// Caller coalesces a rapid burst of calls into a single execution of
// the wrapped check with the arguments of the last call. Every call
// supersedes the previous still-waiting one, which fails with
// ErrSuperseded so its caller can treat it as "no verdict yet" instead
// of a validation failure.
type Caller struct {
	check CheckFunc
	delay time.Duration

	mu      sync.Mutex
	waiting chan struct{} // closed to supersede the call currently waiting out the delay
}

// New wraps check with a debounce window of delay.
func New(check CheckFunc, delay time.Duration) *Caller {
	return &Caller{
		check: check,
		delay: delay,
	}
}

// Call waits out the debounce window and then invokes the wrapped
// check with value. If another Call arrives during the window, this
// call returns ErrSuperseded and the check is not invoked for it. A
// canceled context aborts the wait with the context error.
//
// Supersession applies only to calls still waiting out the window.
// Once the window has elapsed and the check has started, a later Call
// no longer affects this one and its verdict is still returned to its
// caller; discarding an outdated verdict at that point is the job of
// the validation run's own supersession token.
func (c *Caller) Call(ctx context.Context, value any) (bool, error) {
	c.mu.Lock()
	if c.waiting != nil {
		close(c.waiting)
	}
	waiting := make(chan struct{})
	c.waiting = waiting
	c.mu.Unlock()

	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-waiting:
		return false, ErrSuperseded
	case <-ctx.Done():
		c.mu.Lock()
		if c.waiting == waiting {
			c.waiting = nil
		}
		c.mu.Unlock()
		return false, ctx.Err()
	case <-timer.C:
	}

	// The timer and a supersession can fire together; the registration
	// under lock decides the winner.
	c.mu.Lock()
	if c.waiting != waiting {
		c.mu.Unlock()
		return false, ErrSuperseded
	}
	c.waiting = nil
	c.mu.Unlock()

	return c.check(ctx, value)
}
