package engine

import (
	"strings"

	"github.com/dmitrymomot/formkit/pkg/deepval"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// cacheEntry is the outcome of one completed validation run: the value
// snapshot it validated, the dependency values it saw, and the errors
// it produced. Snapshots are deep clones except file values, which are
// kept by reference.
type cacheEntry struct {
	value any
	deps  map[string]any
	errs  rules.Errors
}

// validationCache stores cache entries keyed by concrete field path.
// It is not safe for concurrent use on its own; the engine guards it
// with its own mutex.
type validationCache struct {
	entries map[string]cacheEntry
}

func newValidationCache() *validationCache {
	return &validationCache{entries: make(map[string]cacheEntry)}
}

// hit returns the cached errors for path when both the value and every
// dependency value are structurally unchanged since the entry was written.
func (c *validationCache) hit(path string, value any, deps map[string]any) (rules.Errors, bool) {
	entry, ok := c.entries[path]
	if !ok {
		return nil, false
	}
	if !deepval.Equal(entry.value, value) {
		return nil, false
	}
	if len(entry.deps) != len(deps) {
		return nil, false
	}
	for depPath, depValue := range entry.deps {
		current, ok := deps[depPath]
		if !ok || !deepval.Equal(depValue, current) {
			return nil, false
		}
	}
	return entry.errs, true
}

// put snapshots value and deps and stores the errors for path.
func (c *validationCache) put(path string, value any, deps map[string]any, errs rules.Errors) {
	snapshot := make(map[string]any, len(deps))
	for depPath, depValue := range deps {
		snapshot[depPath] = deepval.Clone(depValue)
	}
	c.entries[path] = cacheEntry{
		value: deepval.Clone(value),
		deps:  snapshot,
		errs:  errs,
	}
}

// invalidate drops the entry for the exact path only.
func (c *validationCache) invalidate(path string) {
	delete(c.entries, path)
}

// invalidateSubtree drops the entry for path and every entry nested
// under it, used when an array is mutated or a subtree is bulk-reset.
func (c *validationCache) invalidateSubtree(prefix string) {
	delete(c.entries, prefix)
	dotted := prefix + "."
	for path := range c.entries {
		if strings.HasPrefix(path, dotted) {
			delete(c.entries, path)
		}
	}
}

// clear drops every entry.
func (c *validationCache) clear() {
	c.entries = make(map[string]cacheEntry)
}
