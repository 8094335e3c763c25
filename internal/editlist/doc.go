// Package editlist tracks non-destructive frame edits for one episode.
//
// A Set records which original frame indices are marked removed and which
// synthetic frames are inserted between original neighbours, without ever
// touching the underlying media. Mutators cover single-frame toggles as well
// as the bulk range and frequency operators the edit UI issues. The Set is
// the input snapshot for the timeline package, which maps between original
// and effective frame coordinates.
//
// Sets are not safe for concurrent mutation; each editing session owns its
// Set on a single logical thread of control.
package editlist
