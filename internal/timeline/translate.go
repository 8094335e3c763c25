package timeline

import (
	"sort"

	"splice/internal/editlist"
)

// countedInsertions returns the insertion anchors that actually expand the
// effective timeline, ascending. An insertion anchored at a removed frame has
// no left neighbour to interpolate from, and one anchored at or past the last
// original frame has no right neighbour; neither produces a synthetic frame.
func countedInsertions(originalLength int, set *editlist.Set) []int {
	anchors := make([]int, 0, set.InsertionCount())
	for _, ins := range set.Insertions() {
		if ins.Anchor >= originalLength-1 {
			continue
		}
		if set.IsRemoved(ins.Anchor) {
			continue
		}
		anchors = append(anchors, ins.Anchor)
	}
	return anchors
}

// EffectiveLength returns the length of the edited sequence: the original
// length minus removed frames plus counted insertions. Removal wins over
// insertion at the same anchor.
func EffectiveLength(originalLength int, set *editlist.Set) int {
	return originalLength - set.RemovedCount() + len(countedInsertions(originalLength, set))
}

// ToEffective maps an original index into effective space. The offset adds
// one position per non-removed insertion anchored strictly before
// originalIndex and subtracts one per removed index strictly before it.
// No bounds validation is performed; callers pass indices that are
// meaningful in context.
func ToEffective(originalIndex int, set *editlist.Set) int {
	offset := 0
	for _, ins := range set.Insertions() {
		if ins.Anchor < originalIndex && !set.IsRemoved(ins.Anchor) {
			offset++
		}
	}
	for _, removed := range set.RemovedIndices() {
		if removed < originalIndex {
			offset--
		}
	}
	return originalIndex + offset
}

// SyntheticPositions returns the effective positions occupied by synthetic
// frames, ascending. Each counted insertion lands at ToEffective(anchor)+1,
// immediately after its anchor frame.
func SyntheticPositions(originalLength int, set *editlist.Set) []int {
	anchors := countedInsertions(originalLength, set)
	positions := make([]int, 0, len(anchors))
	for _, anchor := range anchors {
		positions = append(positions, ToEffective(anchor, set)+1)
	}
	sort.Ints(positions)
	return positions
}

// ToOriginal maps an effective index back to its original index. The second
// return is false when the position holds a synthetic frame, which has no
// original counterpart; the renderer synthesizes it from the insertion's
// anchor neighbours instead.
//
// Restricted to non-synthetic positions this is the inverse of ToEffective.
func ToOriginal(effectiveIndex, originalLength int, set *editlist.Set) (int, bool) {
	synthetic := SyntheticPositions(originalLength, set)

	insertionsBefore := 0
	for _, pos := range synthetic {
		if pos == effectiveIndex {
			return 0, false
		}
		if pos < effectiveIndex {
			insertionsBefore++
		}
	}

	// Walk the removed indices in ascending order, shifting the candidate
	// right past each removal that precedes it in original space.
	candidate := effectiveIndex - insertionsBefore
	removedBefore := 0
	for _, removed := range set.RemovedIndices() {
		if removed <= candidate+removedBefore {
			removedBefore++
		}
	}
	return candidate + removedBefore, true
}

// SyntheticAt returns the insertion occupying the given effective position,
// if that position is synthetic.
func SyntheticAt(effectiveIndex, originalLength int, set *editlist.Set) (editlist.Insertion, bool) {
	for _, anchor := range countedInsertions(originalLength, set) {
		if ToEffective(anchor, set)+1 == effectiveIndex {
			return mustInsertion(set, anchor), true
		}
	}
	return editlist.Insertion{}, false
}

func mustInsertion(set *editlist.Set, anchor int) editlist.Insertion {
	ins, _ := set.InsertionAt(anchor)
	return ins
}
