package session

import (
	"encoding/json"

	"splice/internal/segments"
)

// Edit-set mutators. Each fully applies its change and re-runs segment
// validation before returning, since removals and insertions shift the
// effective length the segments are checked against.

// ToggleRemoval flips the removed mark on one original index.
func (s *Session) ToggleRemoval(index int) {
	if !s.initialized {
		return
	}
	s.state.edits.ToggleRemoval(index)
	s.revalidate()
}

// AddRemovalRange marks [start, end] inclusive as removed.
func (s *Session) AddRemovalRange(start, end int) {
	if !s.initialized {
		return
	}
	s.state.edits.AddRange(start, end)
	s.revalidate()
}

// AddRemovalEveryNth marks every step-th index in [start, end] as removed.
func (s *Session) AddRemovalEveryNth(start, end, step int) {
	if !s.initialized {
		return
	}
	s.state.edits.AddEveryNth(start, end, step)
	s.revalidate()
}

// RestoreRange clears removals in [start, end] inclusive.
func (s *Session) RestoreRange(start, end int) {
	if !s.initialized {
		return
	}
	s.state.edits.RemoveRange(start, end)
	s.revalidate()
}

// ClearRemovals drops every removal mark.
func (s *Session) ClearRemovals() {
	if !s.initialized {
		return
	}
	s.state.edits.ClearRemovals()
	s.revalidate()
}

// Insert upserts a synthetic frame after anchor with the given blend.
func (s *Session) Insert(anchor int, blend float64) {
	if !s.initialized {
		return
	}
	s.state.edits.Insert(anchor, blend)
	s.revalidate()
}

// RemoveInsertion drops the synthetic frame anchored at anchor, if any.
func (s *Session) RemoveInsertion(anchor int) {
	if !s.initialized {
		return
	}
	s.state.edits.RemoveInsertion(anchor)
	s.revalidate()
}

// ClearInsertions drops every insertion record.
func (s *Session) ClearInsertions() {
	if !s.initialized {
		return
	}
	s.state.edits.ClearInsertions()
	s.revalidate()
}

// Transform mutators. Payloads are opaque; the session only stores them for
// the document projection and dirty tracking.

// SetGlobalTransform replaces the episode-wide transform payload.
func (s *Session) SetGlobalTransform(payload json.RawMessage) {
	if !s.initialized {
		return
	}
	s.state.globalTransform = cloneRaw(payload)
}

// SetCameraTransform replaces one camera's transform payload. An empty
// payload removes the entry.
func (s *Session) SetCameraTransform(camera string, payload json.RawMessage) {
	if !s.initialized {
		return
	}
	if len(payload) == 0 {
		delete(s.state.cameraTransforms, camera)
		return
	}
	s.state.cameraTransforms[camera] = cloneRaw(payload)
}

// ClearTransforms drops the global and all per-camera transforms.
func (s *Session) ClearTransforms() {
	if !s.initialized {
		return
	}
	s.state.globalTransform = nil
	s.state.cameraTransforms = make(map[string]json.RawMessage)
}

// Segment mutators.

// AddSegment appends a new segment with a generated ID and returns it.
func (s *Session) AddSegment(label string, start, end int, color string, source segments.Source) segments.Segment {
	if !s.initialized {
		return segments.Segment{}
	}
	seg := segments.Segment{
		ID:     newSegmentID(),
		Label:  label,
		Start:  start,
		End:    end,
		Color:  color,
		Source: source,
	}
	s.state.segs = append(s.state.segs, seg)
	s.revalidate()
	return seg
}

// UpdateSegment replaces the segment with the matching ID. Unknown IDs are
// a no-op; the returned bool reports whether a segment was updated.
func (s *Session) UpdateSegment(seg segments.Segment) bool {
	if !s.initialized {
		return false
	}
	for i := range s.state.segs {
		if s.state.segs[i].ID == seg.ID {
			s.state.segs[i] = seg
			s.revalidate()
			return true
		}
	}
	return false
}

// RemoveSegment deletes the segment with the matching ID, if present.
func (s *Session) RemoveSegment(id string) bool {
	if !s.initialized {
		return false
	}
	for i := range s.state.segs {
		if s.state.segs[i].ID == id {
			s.state.segs = append(s.state.segs[:i], s.state.segs[i+1:]...)
			s.revalidate()
			return true
		}
	}
	return false
}

// MoveSegment repositions the segment with the matching ID to the given list
// position, clamped to the list bounds. Display order only; coordinates are
// untouched.
func (s *Session) MoveSegment(id string, position int) bool {
	if !s.initialized {
		return false
	}
	from := -1
	for i := range s.state.segs {
		if s.state.segs[i].ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return false
	}
	if position < 0 {
		position = 0
	}
	if position >= len(s.state.segs) {
		position = len(s.state.segs) - 1
	}
	seg := s.state.segs[from]
	s.state.segs = append(s.state.segs[:from], s.state.segs[from+1:]...)
	s.state.segs = append(s.state.segs[:position], append([]segments.Segment{seg}, s.state.segs[position:]...)...)
	s.revalidate()
	return true
}

// Segments returns a snapshot copy of the current segment list.
func (s *Session) Segments() []segments.Segment {
	return segments.Clone(s.state.segs)
}

// Trajectory mutators.

// SetTrajectoryAdjustment stores an opaque per-frame trajectory payload.
func (s *Session) SetTrajectoryAdjustment(frameIndex int, payload json.RawMessage) {
	if !s.initialized {
		return
	}
	s.state.trajectory[frameIndex] = cloneRaw(payload)
}

// RemoveTrajectoryAdjustment drops the payload for one frame, if present.
func (s *Session) RemoveTrajectoryAdjustment(frameIndex int) {
	if !s.initialized {
		return
	}
	delete(s.state.trajectory, frameIndex)
}
