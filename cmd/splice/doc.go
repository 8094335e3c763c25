// Command splice edits episode frame sequences non-destructively.
//
// Edits are stored as per-episode documents of removed and inserted frames,
// labeled segments, and opaque transform payloads; the underlying media is
// never touched. Commands operate on one episode's edit session under an
// advisory lock, or apply batch YAML scripts across many episodes.
package main
