// Package timeline maps between original and effective frame coordinates.
//
// The effective timeline is what consumers (player, labeling UI, exporters)
// see after removals and insertions are applied on top of the immutable
// source sequence. All functions are pure over an editlist.Set snapshot:
// they hold no state, perform no I/O, and are safe for concurrent readers
// as long as no writer mutates the set underneath them.
//
// Bounds are deliberately not enforced here. Callers bound their inputs by
// EffectiveLength; out-of-range queries are answered best-effort.
package timeline
