// Package engine is the reactive validation core: given a rule table
// and an externally-owned form state, it decides which fields are
// currently invalid and why, while never re-running validation work
// whose inputs have not changed.
//
// An Engine instance owns, per form:
//
//   - the normalized rule table and its wildcard expansion memo, which
//     turns pattern keys like "contacts.*.email" into one concrete
//     entry per current array index;
//   - the cross-field dependency graph derived from declared rule
//     dependencies, used forward to snapshot dependency values for
//     caching and in reverse to find which fields must revalidate when
//     a value changes;
//   - the validation cache, keyed by concrete path, valid while the
//     field's value and every dependency value are structurally
//     unchanged;
//   - per-field supersession tokens: starting a validation displaces
//     any in-flight run for the same path, and a displaced run
//     discards its result without touching shared state.
//
// The observable state itself (values, error lists, touched flags)
// lives behind the State interface and belongs to the caller; see
// pkg/formstate for an in-memory implementation.
//
//	store := formstate.New(values)
//	eng, _ := engine.New(store)
//	defer eng.Close()
//
//	_ = eng.SetRules(map[string][]*rules.Rule{
//		"password": {rules.Required(), rules.MinLength(8)},
//		"confirm":  {rules.SameAs("password")},
//	})
//
//	valid, _ := eng.ValidateForm(ctx)
//
// Value changes are reported through OnFieldChanged, which invalidates
// affected cache entries and revalidates touched dependents; wiring it
// into the state's setter gives fully reactive cross-field validation
// with no manual cache management.
package engine
