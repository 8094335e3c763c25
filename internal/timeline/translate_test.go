package timeline_test

import (
	"reflect"
	"testing"

	"splice/internal/editlist"
	"splice/internal/timeline"
)

func TestNoEditsRoundTrip(t *testing.T) {
	const n = 50
	set := editlist.NewSet()

	if got := timeline.EffectiveLength(n, set); got != n {
		t.Fatalf("EffectiveLength = %d, want %d", got, n)
	}
	for i := 0; i < n; i++ {
		if got := timeline.ToEffective(i, set); got != i {
			t.Fatalf("ToEffective(%d) = %d, want identity", i, got)
		}
		orig, ok := timeline.ToOriginal(i, n, set)
		if !ok || orig != i {
			t.Fatalf("ToOriginal(%d) = (%d, %v), want identity", i, orig, ok)
		}
	}
}

func TestRemovalOnlyLengthLaw(t *testing.T) {
	const n = 100
	set := editlist.NewSet()
	set.AddEveryNth(0, 99, 7)

	want := n - set.RemovedCount()
	if got := timeline.EffectiveLength(n, set); got != want {
		t.Fatalf("EffectiveLength = %d, want %d", got, want)
	}
}

func TestInsertionOnlyLengthLaw(t *testing.T) {
	const n = 100
	set := editlist.NewSet()
	for _, anchor := range []int{0, 10, 50, 98} {
		set.InsertDefault(anchor)
	}
	if got := timeline.EffectiveLength(n, set); got != n+4 {
		t.Fatalf("EffectiveLength = %d, want %d", got, n+4)
	}
}

func TestInsertionAtFinalFrameDoesNotCount(t *testing.T) {
	const n = 100
	set := editlist.NewSet()
	set.InsertDefault(n - 1)
	if got := timeline.EffectiveLength(n, set); got != n {
		t.Fatalf("EffectiveLength = %d, want %d (trailing insertion must be inert)", got, n)
	}
	if positions := timeline.SyntheticPositions(n, set); len(positions) != 0 {
		t.Fatalf("expected no synthetic positions, got %v", positions)
	}
}

func TestInsertionAtRemovedAnchorIsInert(t *testing.T) {
	const n = 100
	set := editlist.NewSet()
	set.InsertDefault(42)
	set.ToggleRemoval(42)

	plain := editlist.NewSet()
	plain.ToggleRemoval(42)

	if got, want := timeline.EffectiveLength(n, set), timeline.EffectiveLength(n, plain); got != want {
		t.Fatalf("EffectiveLength = %d, want %d as if the insertion never happened", got, want)
	}
}

func TestScenarioRemovals(t *testing.T) {
	const n = 100
	set := editlist.NewSet()
	for _, idx := range []int{5, 10, 15} {
		set.ToggleRemoval(idx)
	}

	if got := timeline.EffectiveLength(n, set); got != 97 {
		t.Fatalf("EffectiveLength = %d, want 97", got)
	}
	if got := timeline.ToEffective(20, set); got != 17 {
		t.Fatalf("ToEffective(20) = %d, want 17", got)
	}
	orig, ok := timeline.ToOriginal(17, n, set)
	if !ok || orig != 20 {
		t.Fatalf("ToOriginal(17) = (%d, %v), want (20, true)", orig, ok)
	}
}

func TestScenarioInsertions(t *testing.T) {
	const n = 100
	set := editlist.NewSet()
	set.InsertDefault(5)
	set.InsertDefault(20)

	if got := timeline.EffectiveLength(n, set); got != 102 {
		t.Fatalf("EffectiveLength = %d, want 102", got)
	}
	if got := timeline.ToEffective(21, set); got != 23 {
		t.Fatalf("ToEffective(21) = %d, want 23", got)
	}
	// Anchor 5 maps to effective 5, so its synthetic frame sits at 6; the
	// one for anchor 20 lands at 22.
	if got := timeline.SyntheticPositions(n, set); !reflect.DeepEqual(got, []int{6, 22}) {
		t.Fatalf("SyntheticPositions = %v, want [6 22]", got)
	}
	if _, ok := timeline.ToOriginal(6, n, set); ok {
		t.Fatal("ToOriginal(6) should report a synthetic position")
	}
	if _, ok := timeline.ToOriginal(22, n, set); ok {
		t.Fatal("ToOriginal(22) should report a synthetic position")
	}
}

func TestInverseLawWithMixedEdits(t *testing.T) {
	const n = 60
	set := editlist.NewSet()
	set.AddRange(10, 14)
	set.ToggleRemoval(40)
	set.InsertDefault(5)
	set.InsertDefault(12) // removed anchor, inert
	set.InsertDefault(30)
	set.InsertDefault(58)
	set.InsertDefault(59) // trailing anchor, inert

	effective := timeline.EffectiveLength(n, set)
	for e := 0; e < effective; e++ {
		orig, ok := timeline.ToOriginal(e, n, set)
		if !ok {
			continue
		}
		if back := timeline.ToEffective(orig, set); back != e {
			t.Fatalf("ToEffective(ToOriginal(%d)=%d) = %d, want %d", e, orig, back, e)
		}
	}
}

func TestSyntheticPositionLaw(t *testing.T) {
	const n = 60
	set := editlist.NewSet()
	set.AddRange(20, 24)
	set.InsertDefault(3)
	set.InsertDefault(33)

	for _, ins := range set.Insertions() {
		pos := timeline.ToEffective(ins.Anchor, set) + 1
		if _, ok := timeline.ToOriginal(pos, n, set); ok {
			t.Fatalf("effective %d after anchor %d should be synthetic", pos, ins.Anchor)
		}
		got, ok := timeline.SyntheticAt(pos, n, set)
		if !ok || got.Anchor != ins.Anchor {
			t.Fatalf("SyntheticAt(%d) = (%+v, %v), want anchor %d", pos, got, ok, ins.Anchor)
		}
	}
}

func TestSyntheticCountMatchesLengthGrowth(t *testing.T) {
	const n = 40
	set := editlist.NewSet()
	set.AddRange(8, 11)
	set.InsertDefault(4)
	set.InsertDefault(9) // removed anchor
	set.InsertDefault(25)

	grown := timeline.EffectiveLength(n, set) - (n - set.RemovedCount())
	if positions := timeline.SyntheticPositions(n, set); len(positions) != grown {
		t.Fatalf("synthetic positions %v disagree with length growth %d", positions, grown)
	}
}
