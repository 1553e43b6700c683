// Package formstate provides an in-memory implementation of the
// engine's State interface: the value tree, error lists, validating
// flags, and touched/inactive bookkeeping for one form.
//
// The engine never requires this package; any observable state
// container satisfying engine.State works. This one exists so the
// engine is usable out of the box and testable end to end.
//
// Wiring the store's change hook to the engine closes the reactive
// loop: every Set propagates to dependent fields automatically.
//
//	store, _ := formstate.FromJSON(initial)
//	eng, _ := engine.New(store)
//	store.OnChange(func(path string) {
//		_ = eng.OnFieldChanged(context.Background(), path)
//	})
package formstate
