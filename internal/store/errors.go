package store

import "errors"

// ErrNotFound indicates no document exists for the requested episode.
var ErrNotFound = errors.New("edit document not found")

// ErrSessionLocked indicates another process holds the episode's session.
var ErrSessionLocked = errors.New("episode session is locked by another process")
