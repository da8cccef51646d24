package sparse

import (
	"iter"
	"maps"
)

// MaxInitialCapacity caps the capacity hint passed to the heatmap constructors.
//
// Decoders derive their hint from the bounding box volume, which can be far
// larger than the number of occupied cells, so the cap stays small and larger
// heatmaps grow on demand.
const MaxInitialCapacity = 1 << 12

// store is the sparse cell -> strength mapping shared by all heatmap variants.
//
// Every stored strength is non-zero: an accumulation that brings a cell back to
// zero removes the entry.
type store[C comparable] struct {
	strengths map[C]int64
	hint      int
}

func newStore[C comparable](capacity int) store[C] {
	capacity = min(max(capacity, 0), MaxInitialCapacity)

	return store[C]{
		strengths: make(map[C]int64, capacity),
		hint:      capacity,
	}
}

// Len returns the number of cells holding a non-zero strength.
func (s *store[C]) Len() int {
	return len(s.strengths)
}

// Get returns the strength at cell, or 0 if the cell is empty.
func (s *store[C]) Get(cell C) int64 {
	return s.strengths[cell]
}

// Add accumulates delta into cell and returns the resulting strength.
//
// The entry is created if absent and removed when the result is zero. Adding
// zero to an empty cell leaves it empty.
func (s *store[C]) Add(cell C, delta int64) int64 {
	if delta == 0 {
		return s.strengths[cell]
	}

	v := s.strengths[cell] + delta
	if v == 0 {
		delete(s.strengths, cell)
	} else {
		s.strengths[cell] = v
	}

	return v
}

// Set overwrites the strength at cell. Setting zero removes the entry.
func (s *store[C]) Set(cell C, strength int64) {
	if strength == 0 {
		delete(s.strengths, cell)
		return
	}
	s.strengths[cell] = strength
}

// All iterates over every (cell, strength) pair in unspecified order.
//
// The heatmap must not be mutated during iteration.
func (s *store[C]) All() iter.Seq2[C, int64] {
	return maps.All(s.strengths)
}

// Keys iterates over every occupied cell in unspecified order.
func (s *store[C]) Keys() iter.Seq[C] {
	return maps.Keys(s.strengths)
}

// Trim releases capacity reserved beyond the current number of entries.
func (s *store[C]) Trim() {
	if s.hint <= len(s.strengths) {
		return
	}

	trimmed := make(map[C]int64, len(s.strengths))
	maps.Copy(trimmed, s.strengths)
	s.strengths = trimmed
	s.hint = len(trimmed)
}

func (s *store[C]) equal(o *store[C]) bool {
	return maps.Equal(s.strengths, o.strengths)
}

func (s *store[C]) clone() store[C] {
	return store[C]{strengths: maps.Clone(s.strengths), hint: len(s.strengths)}
}
