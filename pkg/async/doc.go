// Package async provides the generic Future used to run per-field
// validation tasks concurrently and join them.
//
// Go starts a task in its own goroutine and returns a *Future; Await
// blocks for its outcome. Settle joins a batch of futures and returns
// every outcome by position. It has no fail-fast mode, because a
// form-wide validation pass must wait for every field to settle before
// it can report overall validity.
package async
