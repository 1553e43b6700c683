// Package file holds the metadata type for binary values inside a form
// value tree. The validation engine treats a *File as an opaque value
// with identity: snapshots reference it instead of cloning it, and two
// entries are equal when they point at the same File or carry the same
// filename, size, and MIME type.
//
// MIME-category helpers (IsImage, IsVideo, IsAudio, IsPDF) back the
// file rules in pkg/rules. They check the recorded MIME type first and
// fall back to the filename extension when none was recorded.
package file
