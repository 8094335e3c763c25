// Package store persists edit-operations documents in SQLite and guards
// each episode with an advisory session lock.
//
// Documents are keyed by (dataset_id, episode_index) and stored as their
// canonical JSON encoding alongside denormalized edit counts for listing.
// The store is the external persistence collaborator of the edit session:
// it never retries on the session's behalf and surfaces failures to the
// caller as wrapped errors.
//
// The session lock enforces the single-editing-session-per-episode rule via
// flock files under the configured lock directory; a second process asking
// for the same episode gets ErrSessionLocked.
package store
