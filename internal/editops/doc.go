// Package editops defines the serializable edit-operations document.
//
// The document is the projection of one episode's accumulated edits that
// crosses the persistence boundary: removed frames, inserted frames,
// subtask segments, and opaque transform and trajectory payloads the edit
// engine stores but never interprets. Collections are kept sorted and
// deduplicated on encode so equivalent sessions produce identical JSON, and
// empty collections are omitted to keep stored documents minimal.
package editops
