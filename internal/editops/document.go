package editops

import (
	"encoding/json"
	"sort"
	"strings"

	"splice/internal/editlist"
	"splice/internal/segments"
)

// TrajectoryAdjustment carries an opaque per-frame trajectory correction,
// keyed by original frame index. The payload passes through untouched.
type TrajectoryAdjustment struct {
	FrameIndex int             `json:"frameIndex"`
	Data       json.RawMessage `json:"data"`
}

// Document is the persisted form of one episode's edit session.
type Document struct {
	DatasetID      string `json:"datasetId"`
	EpisodeIndex   int    `json:"episodeIndex"`
	OriginalLength int    `json:"originalLength,omitempty"`

	// Transform payloads are opaque to the edit engine.
	GlobalTransform  json.RawMessage            `json:"globalTransform,omitempty"`
	CameraTransforms map[string]json.RawMessage `json:"cameraTransforms,omitempty"`

	RemovedFrames         []int                  `json:"removedFrames,omitempty"`
	InsertedFrames        []editlist.Insertion   `json:"insertedFrames,omitempty"`
	Subtasks              []segments.Segment     `json:"subtasks,omitempty"`
	TrajectoryAdjustments []TrajectoryAdjustment `json:"trajectoryAdjustments,omitempty"`
}

// Parse loads a document from JSON, returning an empty document on blank
// input. Collections are normalized so downstream comparisons see sorted,
// independent slices regardless of how the input was produced.
func Parse(raw string) (Document, error) {
	var doc Document
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return doc, nil
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return Document{}, err
	}
	doc.normalize()
	return doc, nil
}

// Encode serializes the document to JSON with deterministic collection order.
func (d Document) Encode() (string, error) {
	d.normalize()
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Empty reports whether the document carries no edits beyond its identity.
func (d Document) Empty() bool {
	return len(d.RemovedFrames) == 0 &&
		len(d.InsertedFrames) == 0 &&
		len(d.Subtasks) == 0 &&
		len(d.TrajectoryAdjustments) == 0 &&
		len(d.GlobalTransform) == 0 &&
		len(d.CameraTransforms) == 0
}

// Clone returns a deep, structurally independent copy of the document.
func (d Document) Clone() Document {
	out := d
	out.GlobalTransform = cloneRaw(d.GlobalTransform)
	out.CameraTransforms = cloneRawMap(d.CameraTransforms)
	out.RemovedFrames = cloneInts(d.RemovedFrames)
	out.InsertedFrames = cloneInsertions(d.InsertedFrames)
	out.Subtasks = segments.Clone(d.Subtasks)
	out.TrajectoryAdjustments = cloneAdjustments(d.TrajectoryAdjustments)
	return out
}

func (d *Document) normalize() {
	d.RemovedFrames = dedupeSorted(d.RemovedFrames)
	if len(d.InsertedFrames) > 0 {
		byAnchor := make(map[int]editlist.Insertion, len(d.InsertedFrames))
		for _, ins := range d.InsertedFrames {
			byAnchor[ins.Anchor] = ins
		}
		list := make([]editlist.Insertion, 0, len(byAnchor))
		for _, ins := range byAnchor {
			list = append(list, ins)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].Anchor < list[j].Anchor })
		d.InsertedFrames = list
	}
	if len(d.TrajectoryAdjustments) > 0 {
		sort.SliceStable(d.TrajectoryAdjustments, func(i, j int) bool {
			return d.TrajectoryAdjustments[i].FrameIndex < d.TrajectoryAdjustments[j].FrameIndex
		})
	}
}

func dedupeSorted(values []int) []int {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}

func cloneRawMap(input map[string]json.RawMessage) map[string]json.RawMessage {
	if len(input) == 0 {
		return nil
	}
	out := make(map[string]json.RawMessage, len(input))
	for k, v := range input {
		out[k] = cloneRaw(v)
	}
	return out
}

func cloneInts(values []int) []int {
	if len(values) == 0 {
		return nil
	}
	out := make([]int, len(values))
	copy(out, values)
	return out
}

func cloneInsertions(list []editlist.Insertion) []editlist.Insertion {
	if len(list) == 0 {
		return nil
	}
	out := make([]editlist.Insertion, len(list))
	copy(out, list)
	return out
}

func cloneAdjustments(list []TrajectoryAdjustment) []TrajectoryAdjustment {
	if len(list) == 0 {
		return nil
	}
	out := make([]TrajectoryAdjustment, len(list))
	for i, adj := range list {
		out[i] = TrajectoryAdjustment{FrameIndex: adj.FrameIndex, Data: cloneRaw(adj.Data)}
	}
	return out
}
