package session

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"

	"splice/internal/editlist"
	"splice/internal/editops"
	"splice/internal/segments"
	"splice/internal/timeline"
)

// Session holds the live edit state for one episode plus the baseline
// snapshot it is compared against for dirty tracking. The zero value is an
// uninitialized session; call Initialize or LoadOperations first.
type Session struct {
	datasetID      string
	episodeIndex   int
	originalLength int
	initialized    bool

	state    state
	baseline state
	warnings []string
}

// state is the set of tracked collections a snapshot covers.
type state struct {
	edits            *editlist.Set
	globalTransform  json.RawMessage
	cameraTransforms map[string]json.RawMessage
	segs             []segments.Segment
	trajectory       map[int]json.RawMessage
}

func newState() state {
	return state{
		edits:            editlist.NewSet(),
		cameraTransforms: make(map[string]json.RawMessage),
		trajectory:       make(map[int]json.RawMessage),
	}
}

func (s state) clone() state {
	out := state{
		edits:            s.edits.Clone(),
		globalTransform:  cloneRaw(s.globalTransform),
		cameraTransforms: make(map[string]json.RawMessage, len(s.cameraTransforms)),
		trajectory:       make(map[int]json.RawMessage, len(s.trajectory)),
		segs:             segments.Clone(s.segs),
	}
	for k, v := range s.cameraTransforms {
		out.cameraTransforms[k] = cloneRaw(v)
	}
	for k, v := range s.trajectory {
		out.trajectory[k] = cloneRaw(v)
	}
	return out
}

func (s state) equal(other state) bool {
	if !s.edits.Equal(other.edits) {
		return false
	}
	if !bytes.Equal(s.globalTransform, other.globalTransform) {
		return false
	}
	if len(s.cameraTransforms) != len(other.cameraTransforms) {
		return false
	}
	for k, v := range s.cameraTransforms {
		if !bytes.Equal(v, other.cameraTransforms[k]) {
			return false
		}
	}
	if len(s.trajectory) != len(other.trajectory) {
		return false
	}
	for k, v := range s.trajectory {
		if !bytes.Equal(v, other.trajectory[k]) {
			return false
		}
	}
	return segments.Equal(s.segs, other.segs)
}

// New returns an uninitialized session.
func New() *Session {
	return &Session{}
}

// Initialize resets the session to an empty, clean state bound to the given
// episode identity, capturing that empty state as the baseline.
func (s *Session) Initialize(datasetID string, episodeIndex, originalLength int) {
	s.datasetID = datasetID
	s.episodeIndex = episodeIndex
	s.originalLength = originalLength
	s.initialized = true
	s.state = newState()
	s.baseline = s.state.clone()
	s.revalidate()
}

// LoadOperations populates the session from a persisted document and
// captures the loaded state as the baseline, so a fresh load is clean.
func (s *Session) LoadOperations(doc editops.Document) {
	s.datasetID = doc.DatasetID
	s.episodeIndex = doc.EpisodeIndex
	s.originalLength = doc.OriginalLength
	s.initialized = true

	s.state = newState()
	s.state.edits.Replace(doc.RemovedFrames, doc.InsertedFrames)
	s.state.globalTransform = cloneRaw(doc.GlobalTransform)
	for name, payload := range doc.CameraTransforms {
		s.state.cameraTransforms[name] = cloneRaw(payload)
	}
	s.state.segs = segments.Clone(doc.Subtasks)
	for _, adj := range doc.TrajectoryAdjustments {
		s.state.trajectory[adj.FrameIndex] = cloneRaw(adj.Data)
	}

	s.baseline = s.state.clone()
	s.revalidate()
}

// Initialized reports whether the session is bound to an episode.
func (s *Session) Initialized() bool {
	return s.initialized
}

// DatasetID returns the bound dataset identity, empty when uninitialized.
func (s *Session) DatasetID() string { return s.datasetID }

// EpisodeIndex returns the bound episode index.
func (s *Session) EpisodeIndex() int { return s.episodeIndex }

// OriginalLength returns the source sequence length the session was bound
// with.
func (s *Session) OriginalLength() int { return s.originalLength }

// Dirty reports whether the current state differs structurally from the
// baseline. Mutate-then-revert sequences therefore read as clean.
func (s *Session) Dirty() bool {
	if !s.initialized {
		return false
	}
	return !s.state.equal(s.baseline)
}

// MarkSaved captures the current state as the new baseline.
func (s *Session) MarkSaved() {
	if !s.initialized {
		return
	}
	s.baseline = s.state.clone()
}

// Reset restores the baseline into the current state and re-runs segment
// validation against the restored segments.
func (s *Session) Reset() {
	if !s.initialized {
		return
	}
	s.state = s.baseline.clone()
	s.revalidate()
}

// Clear returns the session to the uninitialized state, discarding both the
// current state and the baseline.
func (s *Session) Clear() {
	*s = Session{}
}

// Warnings returns the segment-validation messages from the most recent
// mutation. Advisory only; the session stays fully usable with outstanding
// violations.
func (s *Session) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// EffectiveLength returns the edited sequence length for the current edits,
// zero when uninitialized.
func (s *Session) EffectiveLength() int {
	if !s.initialized {
		return 0
	}
	return timeline.EffectiveLength(s.originalLength, s.state.edits)
}

// ToEffective maps an original index into effective space for the current
// edits. An uninitialized session maps every index to itself.
func (s *Session) ToEffective(originalIndex int) int {
	if !s.initialized {
		return originalIndex
	}
	return timeline.ToEffective(originalIndex, s.state.edits)
}

// ToOriginal maps an effective index back to original space; ok is false for
// synthetic positions.
func (s *Session) ToOriginal(effectiveIndex int) (int, bool) {
	if !s.initialized {
		return effectiveIndex, true
	}
	return timeline.ToOriginal(effectiveIndex, s.originalLength, s.state.edits)
}

// Edits returns a snapshot copy of the current edit set, empty when
// uninitialized.
func (s *Session) Edits() *editlist.Set {
	if !s.initialized {
		return editlist.NewSet()
	}
	return s.state.edits.Clone()
}

func (s *Session) revalidate() {
	s.warnings = segments.Validate(s.state.segs, s.EffectiveLength())
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}

func newSegmentID() string {
	return uuid.NewString()
}
