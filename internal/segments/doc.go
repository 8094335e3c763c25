// Package segments models labeled frame ranges and their structural checks.
//
// Segments live in effective-index space so edits elsewhere in the episode do
// not shift unrelated labels. Validate reports bounds and overlap problems as
// human-readable messages; it never mutates or resolves anything, since an
// overlapping or out-of-range segment may simply be mid-edit.
package segments
