package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
)

// Values is the whole form value tree a rule may read from.
type Values map[string]any

// Meta carries the evaluation context into a rule check: the concrete
// field path being validated. A rule attached to a pattern such as
// "contacts.*.email" uses it to resolve a sibling pattern like
// "contacts.*.confirmEmail" to the same array index.
type Meta struct {
	Field fieldpath.Path
}

// Resolve turns a dependency path-or-pattern into a concrete path by
// borrowing array indices from the field under evaluation. The second
// return value is false when the path is malformed or a wildcard has
// no index to borrow.
func (m Meta) Resolve(path string) (fieldpath.Path, bool) {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return nil, false
	}
	return fieldpath.ResolvePattern(p, m.Field)
}

// Lookup resolves path against the field under evaluation and reads
// the value at the result.
func (m Meta) Lookup(all Values, path string) (any, bool) {
	p, ok := m.Resolve(path)
	if !ok {
		return nil, false
	}
	return fieldpath.Get(all, p)
}

// CheckFunc evaluates one rule against a field value. A nil or empty
// result means the value passed.
type CheckFunc func(ctx context.Context, value any, all Values, meta Meta) Errors

// Rule is a single validation rule. Rules are identified by pointer:
// the same *Rule attached to several fields (or expanded across array
// indices) is one rule, and chains are deduplicated by pointer when
// normalized.
type Rule struct {
	// Name identifies the rule in expressions and manifests.
	Name string

	// Deps lists the other field paths or patterns the check reads,
	// used to build the cross-field dependency graph without invoking
	// the rule speculatively.
	Deps []string

	// Async marks rules that suspend on I/O. The executor flips the
	// field's validating flag before running the first async rule.
	Async bool

	// Check evaluates the rule. Nil for pure chain rules.
	Check CheckFunc

	chain []*Rule
}

// Chain groups rules under one name. The engine flattens chains at
// rule-set assignment; downstream code only ever sees the flat list.
func Chain(name string, rules ...*Rule) *Rule {
	return &Rule{Name: name, chain: rules}
}

// Normalize flattens nested chains into a single canonical ordered
// list, dropping duplicates by pointer identity. Order is the order of
// first appearance.
func Normalize(list []*Rule) []*Rule {
	seen := make(map[*Rule]bool)
	var out []*Rule

	var walk func(rules []*Rule)
	walk = func(rules []*Rule) {
		for _, r := range rules {
			if r == nil || seen[r] {
				continue
			}
			seen[r] = true
			if len(r.chain) > 0 {
				walk(r.chain)
				continue
			}
			out = append(out, r)
		}
	}
	walk(list)
	return out
}

// Dependencies returns the union of declared dependencies of the rules
// in a canonical list, deduplicated, in order of first appearance.
func Dependencies(list []*Rule) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range list {
		for _, dep := range r.Deps {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			out = append(out, dep)
		}
	}
	return out
}

// Error is a single validation error with translation support.
// Message resolution is left to the embedding application; the engine
// only carries the key and values through.
type Error struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Errors is the error list of one field.
type Errors []Error

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Messages returns just the message texts.
func (e Errors) Messages() []string {
	if len(e) == 0 {
		return nil
	}
	out := make([]string, len(e))
	for i, err := range e {
		out[i] = err.Message
	}
	return out
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}
