// Package editscript parses and applies declarative batch edit scripts.
//
// A script is a YAML document describing removal, restore, insertion, and
// segment operations for one or more episodes of a dataset. The bulk-edit
// CLI replays each episode's operations onto its own edit session; episodes
// are independent, so callers may apply them concurrently.
//
// Decoding is strict: unknown fields fail the parse rather than being
// silently dropped, since a typoed operation in a batch script would
// otherwise edit nothing without a trace.
package editscript
