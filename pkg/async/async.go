package async

import (
	"context"
	"time"
)

// Future represents the eventual outcome of one validation task.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Await blocks until the task completes and returns its outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks until the task completes or the timeout
// elapses, in which case it returns ErrTimeout.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the task has completed, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Go runs fn in its own goroutine and returns a Future for its outcome.
// A context canceled before fn starts completes the Future with the
// context error without invoking fn.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Settle waits for every future to complete and returns all results and
// all errors by position. Unlike a fail-fast join, it never returns
// before the last future settles: a form-wide validation pass must
// observe the outcome of every field, failed or not.
func Settle[T any](futures ...*Future[T]) ([]T, []error) {
	results := make([]T, len(futures))
	errs := make([]error, len(futures))

	for i, future := range futures {
		results[i], errs[i] = future.Await()
	}

	return results, errs
}
