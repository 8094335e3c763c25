package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// SessionLock holds the advisory lock for one episode's editing session.
type SessionLock struct {
	lock *flock.Flock
	path string
}

// AcquireSession takes the per-episode session lock, enforcing the
// single-editing-session rule. Returns ErrSessionLocked when another process
// already holds it.
func (s *Store) AcquireSession(datasetID string, episodeIndex int) (*SessionLock, error) {
	if err := os.MkdirAll(s.lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}

	path := filepath.Join(s.lockDir, fmt.Sprintf("%s-ep%04d.lock", sanitizeDatasetID(datasetID), episodeIndex))
	lock := flock.New(path)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire session lock: %w", err)
	}
	if !ok {
		return nil, ErrSessionLocked
	}
	return &SessionLock{lock: lock, path: path}, nil
}

// Release frees the session lock. Safe to call on a nil lock.
func (l *SessionLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release session lock: %w", err)
	}
	return nil
}

// Path returns the lock file path.
func (l *SessionLock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

func sanitizeDatasetID(datasetID string) string {
	out := make([]rune, 0, len(datasetID))
	for _, r := range datasetID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "dataset"
	}
	return string(out)
}
