package engine

import (
	"context"
	"log/slog"
	"sort"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// ValidateField validates one concrete field and returns its error
// list, writing the same list to the state's error store.
//
// Starting a validation supersedes any in-flight run for the same
// path. A superseded run returns an empty list and performs no writes;
// its outcome must not be read as "valid" or "invalid", the newer
// run's outcome is the one that lands in the error store. Every error
// and validating write is made atomically with its supersession check,
// so a superseded run can never overwrite a newer run's outcome.
//
// Rules run strictly in declared order and short-circuit on the first
// failure. A cache hit returns the cached errors without invoking any
// rule. A field with no effective rules has its error entry cleared: a
// field that lost its rules is not still failing.
func (e *Engine) ValidateField(ctx context.Context, path string) (rules.Errors, error) {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return nil, err
	}
	if p.IsPattern() {
		return nil, ErrPatternPath
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, ErrClosed
	}
	e.tokens[path]++
	token := e.tokens[path]
	e.mu.Unlock()

	values := e.state.Values()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, ErrClosed
	}
	list := e.effectiveRulesLocked(path, values)
	if len(list) == 0 {
		e.cache.invalidate(path)
		if e.tokens[path] == token {
			e.state.ClearErrors(path)
		}
		e.mu.Unlock()
		return nil, nil
	}

	value, _ := fieldpath.Get(values, p)
	deps := e.dependencySnapshotLocked(p, values)

	if cached, ok := e.cache.hit(path, value, deps); ok {
		if e.tokens[path] != token {
			e.mu.Unlock()
			return nil, nil
		}
		e.state.SetErrors(path, cached)
		e.mu.Unlock()
		return cached, nil
	}
	e.mu.Unlock()

	meta := rules.Meta{Field: p}
	all := rules.Values(values)

	var final rules.Errors
	validating := false
	for _, r := range list {
		if r.Async && !validating {
			if !e.markValidating(path, token) {
				return nil, nil
			}
			validating = true
		}

		errs := e.runRule(ctx, r, value, all, meta)

		// An async rule is a suspension point; a superseded run aborts
		// here without side effects.
		if r.Async && !e.tokenCurrent(path, token) {
			return nil, nil
		}

		if len(errs) > 0 {
			final = errs
			break
		}
	}

	e.mu.Lock()
	if e.closed || e.tokens[path] != token {
		e.mu.Unlock()
		return nil, nil
	}
	e.cache.put(path, value, deps, final)
	// The state writes stay inside the critical section: a run
	// superseded after the token check must not land its outcome
	// after the newer run's.
	e.state.SetErrors(path, final)
	e.state.SetValidating(path, false)
	e.mu.Unlock()
	return final, nil
}

// runRule invokes one rule, converting a panic into a single generic
// error so one faulty rule fails its own field and nothing else.
func (e *Engine) runRule(ctx context.Context, r *rules.Rule, value any, all rules.Values, meta rules.Meta) (errs rules.Errors) {
	defer func() {
		if rec := recover(); rec != nil {
			e.log.Error("validation rule panicked",
				slog.String("engine_id", e.id.String()),
				slog.String("field", meta.Field.String()),
				slog.String("rule", r.Name),
				slog.Any("panic", rec),
			)
			errs = rules.Errors{{
				Field:          meta.Field.String(),
				Message:        "validation failed",
				TranslationKey: "validation.rule_error",
				TranslationValues: map[string]any{
					"field": meta.Field.String(),
					"rule":  r.Name,
				},
			}}
		}
	}()
	if r.Check == nil {
		return nil
	}
	return r.Check(ctx, value, all, meta)
}

func (e *Engine) tokenCurrent(path string, token uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.closed && e.tokens[path] == token
}

// markValidating flips the field's validating flag on before the run's
// first async rule, atomically with the supersession check.
func (e *Engine) markValidating(path string, token uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.tokens[path] != token {
		return false
	}
	e.state.SetValidating(path, true)
	return true
}

// ValidateForm validates every field the rule table currently covers:
// the wildcard expansion is recomputed, every concrete field is marked
// touched and validated concurrently, and leftover error entries for
// paths outside the active field set (an array that shrank since the
// last pass) are purged.
//
// It returns true when no active field has errors. Fields the state
// reports as conditionally inactive never block validity, even when a
// stale error list is still attached to them.
func (e *Engine) ValidateForm(ctx context.Context) (bool, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false, ErrClosed
	}
	e.mu.Unlock()

	values := e.state.Values()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false, ErrClosed
	}
	e.memo = nil
	table := e.expandLocked(values)
	fields := make([]string, 0, len(table))
	for field := range table {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	e.mu.Unlock()

	for _, field := range fields {
		e.state.MarkTouched(field)
	}

	futures := make([]*async.Future[rules.Errors], len(fields))
	for i, field := range fields {
		futures[i] = async.Go(ctx, func(ctx context.Context) (rules.Errors, error) {
			return e.ValidateField(ctx, field)
		})
	}
	results, errs := async.Settle(futures...)

	active := make(map[string]bool, len(fields))
	for _, field := range fields {
		active[field] = true
	}
	for _, path := range e.state.ErrorPaths() {
		if !active[path] {
			e.state.ClearErrors(path)
		}
	}

	valid := true
	var firstErr error
	for i, field := range fields {
		if errs[i] != nil && firstErr == nil {
			firstErr = errs[i]
		}
		if e.state.Inactive(field) {
			continue
		}
		if len(results[i]) > 0 {
			valid = false
		}
	}
	if firstErr != nil {
		return false, firstErr
	}

	e.log.Debug("form validated",
		slog.String("engine_id", e.id.String()),
		slog.Int("fields", len(fields)),
		slog.Bool("valid", valid),
	)
	return valid, nil
}
