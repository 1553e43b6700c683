// Package rules defines the validation rule model and the built-in
// rule factories the engine executes.
//
// A Rule is a named check over one field value, optionally declaring
// the other fields it reads (Deps) so the engine can build its
// cross-field dependency graph without running the rule speculatively.
// Rules are identified by pointer; Chain groups rules under one name
// and Normalize flattens chains into the canonical ordered list every
// downstream component consumes.
//
// Errors carry a message plus a translation key and values, following
// the shape the embedding application's translator expects. The engine
// never resolves messages itself.
//
// Rule tables can be written programmatically:
//
//	table := map[string][]*rules.Rule{
//		"password": {rules.Required(), rules.MinLength(8)},
//		"confirm":  {rules.SameAs("password")},
//	}
//
// or declaratively, with expressions and YAML manifests:
//
//	list, _ := rules.Parse("required|minLength:8")
//	table, _ := rules.FromManifest(manifestYAML)
//
// Remote builds an asynchronous rule on top of pkg/debounce; it is the
// only built-in rule that suspends, and the only one not expressible
// in a manifest.
package rules
