// Package fieldpath parses, reads, and writes dot-separated field paths
// over value trees built from map[string]any objects and []any arrays.
//
// A path like "contacts.0.email" addresses a concrete location; a
// pattern like "contacts.*.email" stands for that location at every
// current index of the contacts array. The package provides the
// matcher and expander used to turn patterns into concrete paths, and
// the sibling resolver that lets a rule written against one pattern
// address another pattern at the same array index.
//
// Matching is an explicit per-segment comparison, never string
// concatenation into a regular expression, so numeric-segment
// detection and wildcard placement stay testable in isolation.
//
//	p := fieldpath.MustParse("contacts.*.email")
//	fieldpath.Match(p, fieldpath.MustParse("contacts.2.email")) // true
//	fieldpath.ExpandPattern(p, values)                          // one path per contact
package fieldpath
