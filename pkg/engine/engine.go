package engine

import (
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Engine is one form's validation instance: it owns the rule table,
// the wildcard expansion memo, the dependency graph, the validation
// cache, and the per-field supersession tokens. Engines hold no
// process-wide state; construct one per form and Close it when the
// form goes away.
type Engine struct {
	id    uuid.UUID
	state State
	log   *slog.Logger

	mu          sync.Mutex
	closed      bool
	ruleSet     map[string][]*rules.Rule
	ruleKeys    map[string]fieldpath.Path
	hasPatterns bool
	memo        *expansion
	graph       []edge
	cache       *validationCache
	tokens      map[string]uint64
}

// New creates a validation engine bound to an externally-owned state
// collaborator.
func New(state State, opts ...Option) (*Engine, error) {
	if state == nil {
		return nil, ErrNilState
	}

	e := &Engine{
		id:     uuid.New(),
		state:  state,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		cache:  newValidationCache(),
		tokens: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// SetRules replaces the rule table. Rule lists are normalized (chains
// flattened, duplicates dropped by identity) before anything else sees
// them. Assignment invalidates the expansion memo, rebuilds the
// dependency graph, drops the validation cache, and purges error
// entries of fields no longer covered exactly or via pattern, so
// errors from removed rules never linger.
func (e *Engine) SetRules(table map[string][]*rules.Rule) error {
	normalized := make(map[string][]*rules.Rule, len(table))
	keys := make(map[string]fieldpath.Path, len(table))
	hasPatterns := false
	for key, list := range table {
		p, err := fieldpath.Parse(key)
		if err != nil {
			return ErrInvalidRuleKey
		}
		canonical := rules.Normalize(list)
		if len(canonical) == 0 {
			continue
		}
		normalized[key] = canonical
		keys[key] = p
		if p.IsPattern() {
			hasPatterns = true
		}
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	e.ruleSet = normalized
	e.ruleKeys = keys
	e.hasPatterns = hasPatterns
	e.memo = nil
	e.graph = buildGraph(normalized, keys)
	// Cached outcomes were produced by the previous rules; none of
	// them can be trusted against the new table.
	e.cache.clear()
	e.mu.Unlock()

	// Stale errors of fields that lost their coverage.
	for _, path := range e.state.ErrorPaths() {
		if !e.covers(path) {
			e.state.ClearErrors(path)
		}
	}

	e.log.Debug("rule table assigned",
		slog.String("engine_id", e.id.String()),
		slog.Int("fields", len(normalized)),
	)
	return nil
}

// covers reports whether any rule-table key addresses path, exactly or
// via pattern match.
func (e *Engine) covers(path string) bool {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, key := range e.ruleKeys {
		if fieldpath.Match(key, p) {
			return true
		}
	}
	return false
}

// ClearCache drops every validation cache entry.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache.clear()
}

// ClearCacheEntry drops the cache entry for the exact path only.
func (e *Engine) ClearCacheEntry(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache.invalidate(path)
}

// InvalidateArraySubtree drops the cache entries for path and every
// path nested under it. Call it after mutating an array in place, when
// entries keyed by index may describe different elements than before.
func (e *Engine) InvalidateArraySubtree(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache.invalidateSubtree(path)
	e.memo = nil
}

// AbortAll supersedes every in-flight validation run. Superseded runs
// discard their results at their next token check and never touch the
// shared error or validating state.
func (e *Engine) AbortAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.abortAllLocked()
}

func (e *Engine) abortAllLocked() {
	for path := range e.tokens {
		e.tokens[path]++
	}
}

// Close aborts all in-flight runs and shuts the engine down. Every
// later operation fails with ErrClosed.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.abortAllLocked()
	e.cache.clear()
	e.memo = nil
	e.graph = nil
	e.ruleSet = nil
	e.ruleKeys = nil
}

// effectiveRules resolves the rule table entry for a concrete path,
// expanding patterns against values when the table has any. The memo
// is reused while rules and array structure are unchanged.
// Callers must hold e.mu.
func (e *Engine) effectiveRulesLocked(path string, values map[string]any) []*rules.Rule {
	return e.expandLocked(values)[path]
}

func (e *Engine) expandLocked(values map[string]any) map[string][]*rules.Rule {
	if !e.hasPatterns {
		return e.ruleSet
	}
	if e.memo == nil || !e.memo.validFor(values) {
		e.memo = expand(e.ruleSet, e.ruleKeys, values)
	}
	return e.memo.table
}

// dependencySnapshot resolves the dependency paths of a concrete field
// and reads their current values. Pattern dependencies borrow the
// field's own array indices. Callers must hold e.mu.
func (e *Engine) dependencySnapshotLocked(path fieldpath.Path, values map[string]any) map[string]any {
	snapshot := make(map[string]any)
	for _, ed := range e.graph {
		if !fieldpath.Match(ed.dependent, path) {
			continue
		}
		for _, dep := range ed.dependsOn {
			resolved, ok := fieldpath.ResolvePattern(dep, path)
			if !ok {
				continue
			}
			value, _ := fieldpath.Get(values, resolved)
			snapshot[resolved.String()] = value
		}
	}
	return snapshot
}
