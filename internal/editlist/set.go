package editlist

import (
	"sort"
)

// DefaultBlend is the interpolation weight used when an insertion does not
// specify one.
const DefaultBlend = 0.5

// Insertion describes one synthetic frame interpolated between the original
// frames at Anchor and Anchor+1. Blend is payload for the rendering
// collaborator; the edit engine stores it but never interprets it.
type Insertion struct {
	Anchor int     `json:"anchorIndex"`
	Blend  float64 `json:"blendFactor"`
}

// Set holds the accumulated edits for one episode: original indices marked
// removed, and synthetic-frame insertions keyed by anchor. The zero value is
// not usable; construct with NewSet.
type Set struct {
	removed    map[int]struct{}
	insertions map[int]Insertion
}

// NewSet returns an empty edit set.
func NewSet() *Set {
	return &Set{
		removed:    make(map[int]struct{}),
		insertions: make(map[int]Insertion),
	}
}

// ToggleRemoval marks index removed if it is not, and restores it if it is.
func (s *Set) ToggleRemoval(index int) {
	if _, ok := s.removed[index]; ok {
		delete(s.removed, index)
		return
	}
	s.removed[index] = struct{}{}
}

// IsRemoved reports whether index is currently marked removed.
func (s *Set) IsRemoved(index int) bool {
	_, ok := s.removed[index]
	return ok
}

// AddRange marks every index in [start, end] inclusive as removed.
// A range with start > end is a documented no-op; no partial application.
func (s *Set) AddRange(start, end int) {
	if start > end {
		return
	}
	for i := start; i <= end; i++ {
		s.removed[i] = struct{}{}
	}
}

// AddEveryNth marks start, start+step, start+2*step, ... up to end inclusive
// as removed. A step below 1 or a range with start > end is a no-op.
func (s *Set) AddEveryNth(start, end, step int) {
	if step < 1 || start > end {
		return
	}
	for i := start; i <= end; i += step {
		s.removed[i] = struct{}{}
	}
}

// RemoveRange clears [start, end] inclusive from the removed set. Clearing
// indices that were never removed is a no-op, as is start > end.
func (s *Set) RemoveRange(start, end int) {
	if start > end {
		return
	}
	for i := start; i <= end; i++ {
		delete(s.removed, i)
	}
}

// ClearRemovals empties the removed set.
func (s *Set) ClearRemovals() {
	s.removed = make(map[int]struct{})
}

// Insert upserts the synthetic frame anchored after anchor. Only one
// insertion per anchor is supported; inserting again replaces the prior
// record rather than stacking.
func (s *Set) Insert(anchor int, blend float64) {
	s.insertions[anchor] = Insertion{Anchor: anchor, Blend: blend}
}

// InsertDefault upserts an insertion at anchor with the default blend.
func (s *Set) InsertDefault(anchor int) {
	s.Insert(anchor, DefaultBlend)
}

// InsertionAt returns the insertion anchored at anchor, if any.
func (s *Set) InsertionAt(anchor int) (Insertion, bool) {
	ins, ok := s.insertions[anchor]
	return ins, ok
}

// RemoveInsertion deletes the insertion anchored at anchor; no-op when absent.
func (s *Set) RemoveInsertion(anchor int) {
	delete(s.insertions, anchor)
}

// ClearInsertions empties the insertion map.
func (s *Set) ClearInsertions() {
	s.insertions = make(map[int]Insertion)
}

// RemovedCount returns the number of removed indices.
func (s *Set) RemovedCount() int {
	return len(s.removed)
}

// InsertionCount returns the number of recorded insertions, counted or not.
func (s *Set) InsertionCount() int {
	return len(s.insertions)
}

// Empty reports whether the set carries no edits at all.
func (s *Set) Empty() bool {
	return len(s.removed) == 0 && len(s.insertions) == 0
}

// RemovedIndices returns the removed original indices in ascending order.
// Offset computations in the timeline package depend on this ordering.
func (s *Set) RemovedIndices() []int {
	out := make([]int, 0, len(s.removed))
	for idx := range s.removed {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Insertions returns the recorded insertions ascending by anchor.
func (s *Set) Insertions() []Insertion {
	out := make([]Insertion, 0, len(s.insertions))
	for _, ins := range s.insertions {
		out = append(out, ins)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Anchor < out[j].Anchor })
	return out
}

// Replace swaps the set contents for the supplied removed indices and
// insertions. Duplicate anchors keep the last record, matching Insert.
func (s *Set) Replace(removed []int, insertions []Insertion) {
	s.removed = make(map[int]struct{}, len(removed))
	for _, idx := range removed {
		s.removed[idx] = struct{}{}
	}
	s.insertions = make(map[int]Insertion, len(insertions))
	for _, ins := range insertions {
		s.insertions[ins.Anchor] = ins
	}
}

// Clone returns a structurally independent copy of the set.
func (s *Set) Clone() *Set {
	out := &Set{
		removed:    make(map[int]struct{}, len(s.removed)),
		insertions: make(map[int]Insertion, len(s.insertions)),
	}
	for idx := range s.removed {
		out.removed[idx] = struct{}{}
	}
	for anchor, ins := range s.insertions {
		out.insertions[anchor] = ins
	}
	return out
}

// Equal reports whether two sets hold the same removals and insertions,
// comparing membership and per-anchor records rather than identity.
func (s *Set) Equal(other *Set) bool {
	if other == nil {
		return s == nil
	}
	if len(s.removed) != len(other.removed) || len(s.insertions) != len(other.insertions) {
		return false
	}
	for idx := range s.removed {
		if _, ok := other.removed[idx]; !ok {
			return false
		}
	}
	for anchor, ins := range s.insertions {
		theirs, ok := other.insertions[anchor]
		if !ok || theirs != ins {
			return false
		}
	}
	return true
}
