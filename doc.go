// Package formkit is a reactive, incremental validation engine for
// form-shaped data in Go.
//
// Given a value tree, a table of per-field rules (including rules that
// read other fields, rules over dynamically-sized arrays, and rules
// backed by debounced asynchronous checks), it decides which fields
// are currently invalid and why, while never re-running validation
// work whose inputs have not changed.
//
// The toolkit is split into focused packages:
//
//   - pkg/fieldpath: dot-separated field paths, wildcard patterns,
//     and the matcher/expander over array-shaped data
//   - pkg/deepval: structural equality and snapshot cloning of field
//     values, the basis of the validation cache
//   - pkg/file: metadata for binary values inside a value tree
//   - pkg/rules: the rule model, built-in rule factories, rule
//     expressions, and YAML manifests
//   - pkg/debounce: the debounced cancellable caller behind remote
//     rules
//   - pkg/async: futures for concurrent per-field validation
//   - pkg/engine: the orchestrator, owning wildcard expansion, the
//     dependency graph, the validation cache, and supersession tokens
//   - pkg/formstate: an in-memory implementation of the engine's
//     state interface
//
// See pkg/engine for the end-to-end usage example.
package formkit
