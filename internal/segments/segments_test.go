package segments_test

import (
	"strings"
	"testing"

	"splice/internal/segments"
)

func TestValidateCleanSegments(t *testing.T) {
	segs := []segments.Segment{
		{ID: "a", Label: "approach", Start: 0, End: 9},
		{ID: "b", Label: "grasp", Start: 10, End: 20},
	}
	if violations := segments.Validate(segs, 100); len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestValidateSharedBoundaryCountsAsOverlap(t *testing.T) {
	segs := []segments.Segment{
		{ID: "a", Label: "approach", Start: 0, End: 10},
		{ID: "b", Label: "grasp", Start: 10, End: 20},
	}
	violations := segments.Validate(segs, 100)
	if len(violations) != 1 {
		t.Fatalf("expected exactly one overlap violation, got %v", violations)
	}
	if !strings.Contains(violations[0], "overlaps") {
		t.Fatalf("unexpected violation message: %s", violations[0])
	}
}

func TestValidateBounds(t *testing.T) {
	segs := []segments.Segment{
		{ID: "a", Start: -1, End: 5},
		{ID: "b", Start: 9, End: 7},
		{ID: "c", Start: 90, End: 100},
	}
	violations := segments.Validate(segs, 100)
	if len(violations) != 3 {
		t.Fatalf("expected three violations, got %d: %v", len(violations), violations)
	}
}

func TestValidateAccumulatesAcrossChecks(t *testing.T) {
	// One segment fails bounds while also overlapping another; both
	// findings must be reported in a single pass.
	segs := []segments.Segment{
		{ID: "a", Label: "lift", Start: 5, End: 120},
		{ID: "b", Label: "place", Start: 100, End: 110},
	}
	violations := segments.Validate(segs, 100)
	if len(violations) != 3 {
		t.Fatalf("expected three violations (two bounds, one overlap), got %v", violations)
	}
}

func TestValidateNeverMutates(t *testing.T) {
	segs := []segments.Segment{
		{ID: "a", Start: 0, End: 10},
		{ID: "b", Start: 10, End: 20},
	}
	before := segments.Clone(segs)
	_ = segments.Validate(segs, 15)
	if !segments.Equal(before, segs) {
		t.Fatal("Validate mutated its input")
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	a := segments.Segment{Start: 0, End: 9}
	b := segments.Segment{Start: 10, End: 20}
	if a.Overlaps(b) || b.Overlaps(a) {
		t.Fatal("adjacent non-touching segments must not overlap")
	}
	b.Start = 9
	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Fatal("segments sharing index 9 must overlap both ways")
	}
}
