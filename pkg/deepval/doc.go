// Package deepval provides structural equality and snapshot cloning for
// form field values: the two operations the validation cache is built on.
//
// A cache entry is valid only while the current value is Equal to the
// snapshot Clone taken when it was written, so the two functions must
// agree: anything Clone copies, Equal must compare structurally, and
// anything Clone keeps by reference (binary file values), Equal must
// compare by identity or metadata.
package deepval
