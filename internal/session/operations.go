package session

import (
	"encoding/json"
	"sort"

	"splice/internal/editops"
	"splice/internal/segments"
)

// Operations projects the current state into a document for persistence.
// Returns nil when the session was never initialized. The document is a deep
// copy; callers may hold or mutate it without touching session internals.
func (s *Session) Operations() *editops.Document {
	if !s.initialized {
		return nil
	}

	doc := editops.Document{
		DatasetID:      s.datasetID,
		EpisodeIndex:   s.episodeIndex,
		OriginalLength: s.originalLength,
	}

	doc.GlobalTransform = cloneRaw(s.state.globalTransform)
	if len(s.state.cameraTransforms) > 0 {
		doc.CameraTransforms = make(map[string]json.RawMessage, len(s.state.cameraTransforms))
		for name, payload := range s.state.cameraTransforms {
			doc.CameraTransforms[name] = cloneRaw(payload)
		}
	}

	if removed := s.state.edits.RemovedIndices(); len(removed) > 0 {
		doc.RemovedFrames = removed
	}
	if inserted := s.state.edits.Insertions(); len(inserted) > 0 {
		doc.InsertedFrames = inserted
	}
	if len(s.state.segs) > 0 {
		doc.Subtasks = segments.Clone(s.state.segs)
	}
	if len(s.state.trajectory) > 0 {
		frames := make([]int, 0, len(s.state.trajectory))
		for frame := range s.state.trajectory {
			frames = append(frames, frame)
		}
		sort.Ints(frames)
		adjustments := make([]editops.TrajectoryAdjustment, 0, len(frames))
		for _, frame := range frames {
			adjustments = append(adjustments, editops.TrajectoryAdjustment{
				FrameIndex: frame,
				Data:       cloneRaw(s.state.trajectory[frame]),
			})
		}
		doc.TrajectoryAdjustments = adjustments
	}

	return &doc
}
