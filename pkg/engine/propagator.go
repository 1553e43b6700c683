package engine

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// OnFieldChanged is the propagation entry point the state layer calls
// after a value mutation has been observed. It invalidates the changed
// field's cache entry (the whole subtree when the value is a container,
// since index-keyed entries under a mutated array may now describe
// different elements), finds the touched dependents of the change
// through the dependency graph, invalidates their entries, and
// revalidates them concurrently.
//
// Untouched dependents are left alone: validating a field the user has
// not reached yet is surprising, not safer. The call blocks until the
// dependents have settled.
func (e *Engine) OnFieldChanged(ctx context.Context, path string) error {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return err
	}
	if p.IsPattern() {
		return ErrPatternPath
	}

	values := e.state.Values()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}

	if value, ok := fieldpath.Get(values, p); ok {
		switch value.(type) {
		case []any, map[string]any:
			e.cache.invalidateSubtree(path)
		default:
			e.cache.invalidate(path)
		}
	} else {
		e.cache.invalidateSubtree(path)
	}

	table := e.expandLocked(values)
	dependents := dependentsOf(e.graph, table, p)
	e.mu.Unlock()

	var kept []string
	for _, dep := range dependents {
		if e.state.Touched(dep) {
			kept = append(kept, dep)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	for _, dep := range kept {
		e.cache.invalidate(dep)
	}
	e.mu.Unlock()

	e.log.Debug("propagating field change",
		slog.String("engine_id", e.id.String()),
		slog.String("field", path),
		slog.Int("dependents", len(kept)),
	)

	// Revalidation starts on fresh goroutines, after the mutation has
	// fully settled in the state layer.
	futures := make([]*async.Future[rules.Errors], len(kept))
	for i, dep := range kept {
		futures[i] = async.Go(ctx, func(ctx context.Context) (rules.Errors, error) {
			return e.ValidateField(ctx, dep)
		})
	}
	_, errs := async.Settle(futures...)
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
