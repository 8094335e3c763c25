// Package session orchestrates one episode's edit state.
//
// A Session binds the edit set, subtask segments, transform payloads, and
// trajectory adjustments for a single episode, tracks dirtiness against a
// baseline snapshot captured at initialize/load/save time, and projects the
// whole state into an editops.Document for persistence. Segment validation
// runs after every mutation; violations are advisory warnings the UI
// renders, never errors that block further editing.
//
// Sessions are single-writer: one instance per open episode, owned by its
// caller. Independent sessions share nothing.
package session
