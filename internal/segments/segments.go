package segments

import (
	"fmt"
)

// Source identifies how a segment came to exist.
type Source string

const (
	// SourceManual marks segments drawn by a human annotator.
	SourceManual Source = "manual"
	// SourceDetection marks segments proposed by the detection pipeline.
	SourceDetection Source = "detection"
)

// Segment is one labeled range of the effective timeline, inclusive on both
// ends.
type Segment struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Color  string `json:"color,omitempty"`
	Source Source `json:"source,omitempty"`
}

// Overlaps reports whether two closed intervals share at least one index.
// Touching at a boundary counts.
func (s Segment) Overlaps(other Segment) bool {
	return max(s.Start, other.Start) <= min(s.End, other.End)
}

func (s Segment) describe() string {
	if s.Label != "" {
		return fmt.Sprintf("segment %q [%d, %d]", s.Label, s.Start, s.End)
	}
	return fmt.Sprintf("segment %s [%d, %d]", s.ID, s.Start, s.End)
}

// Clone returns an independent copy of a segment list.
func Clone(segs []Segment) []Segment {
	if len(segs) == 0 {
		return nil
	}
	out := make([]Segment, len(segs))
	copy(out, segs)
	return out
}

// Equal reports whether two segment lists match element by element.
func Equal(a, b []Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Validate checks every segment against the current effective length and
// every pair for overlap, accumulating all violations rather than stopping
// at the first. Resolution is left to the caller; the input is never
// modified.
func Validate(segs []Segment, effectiveLength int) []string {
	var violations []string
	for _, seg := range segs {
		if seg.Start < 0 {
			violations = append(violations, fmt.Sprintf("%s starts before frame 0", seg.describe()))
		}
		if seg.Start > seg.End {
			violations = append(violations, fmt.Sprintf("%s starts after it ends", seg.describe()))
		}
		if seg.End >= effectiveLength {
			violations = append(violations, fmt.Sprintf("%s ends past the last frame %d", seg.describe(), effectiveLength-1))
		}
	}
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if segs[i].Overlaps(segs[j]) {
				violations = append(violations, fmt.Sprintf("%s overlaps %s", segs[i].describe(), segs[j].describe()))
			}
		}
	}
	return violations
}
