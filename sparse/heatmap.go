// Package sparse implements the sparse heatmap containers.
//
// A heatmap maps integer lattice cells to non-zero accumulated strengths and
// carries an affine transform from lattice space to continuous space. Three
// variants exist:
//
//   - Heatmap2: 2D cells with a 2x3 transform
//   - Heatmap3: 3D cells with a 4x4 transform
//   - Heatmap3to2: 3D cells projected onto 2D keys through a Swizzle, with a 4x4
//     transform. Distinct 3D cells that share a projected key are summed.
//
// # Zero Removal
//
// Heatmaps behave like counters. Add creates an entry when needed and deletes
// it as soon as the running total returns to zero, so Len always equals the
// number of non-zero cells.
//
// # Thread Safety
//
// Heatmaps are NOT safe for concurrent use. Mutating a heatmap while it is being
// iterated or encoded is undefined behavior and must be prevented by the caller.
package sparse

import (
	"slices"

	"github.com/arloliu/heatmap/lattice"
)

// Heatmap2 is a sparse 2D heatmap.
type Heatmap2 struct {
	store[lattice.Cell2]
	transform Matrix2x3
}

// New2 creates an empty 2D heatmap.
//
// Parameters:
//   - capacity: Expected number of occupied cells (a hint, capped at MaxInitialCapacity)
//   - transform: Lattice to continuous space transform
func New2(capacity int, transform Matrix2x3) *Heatmap2 {
	return &Heatmap2{
		store:     newStore[lattice.Cell2](capacity),
		transform: transform,
	}
}

// Transform returns the lattice to continuous space transform.
func (h *Heatmap2) Transform() Matrix2x3 {
	return h.transform
}

// SetTransform replaces the transform.
func (h *Heatmap2) SetTransform(m Matrix2x3) {
	h.transform = m
}

// Position maps a cell into continuous space.
func (h *Heatmap2) Position(c lattice.Cell2) Vec2 {
	return h.transform.Apply(c)
}

// Bounds returns the tightest rect enclosing every occupied cell.
func (h *Heatmap2) Bounds() lattice.Rect {
	return lattice.BoundingRect(h.Keys())
}

// Cells returns the occupied cells in canonical (Y, X) order.
func (h *Heatmap2) Cells() []lattice.Cell2 {
	return slices.SortedFunc(h.Keys(), lattice.Compare2)
}

// Equal reports whether h and o have the same transform and strengths.
func (h *Heatmap2) Equal(o *Heatmap2) bool {
	if h == nil || o == nil {
		return h == o
	}

	return h.transform == o.transform && h.equal(&o.store)
}

// Clone returns a deep copy of h.
func (h *Heatmap2) Clone() *Heatmap2 {
	return &Heatmap2{store: h.clone(), transform: h.transform}
}

// Heatmap3 is a sparse 3D heatmap.
type Heatmap3 struct {
	store[lattice.Cell3]
	transform Matrix4x4
}

// New3 creates an empty 3D heatmap.
func New3(capacity int, transform Matrix4x4) *Heatmap3 {
	return &Heatmap3{
		store:     newStore[lattice.Cell3](capacity),
		transform: transform,
	}
}

// Transform returns the lattice to continuous space transform.
func (h *Heatmap3) Transform() Matrix4x4 {
	return h.transform
}

// SetTransform replaces the transform.
func (h *Heatmap3) SetTransform(m Matrix4x4) {
	h.transform = m
}

// Position maps a cell into continuous space.
func (h *Heatmap3) Position(c lattice.Cell3) Vec3 {
	return h.transform.Apply(c)
}

// Bounds returns the tightest box enclosing every occupied cell.
func (h *Heatmap3) Bounds() lattice.Box {
	return lattice.BoundingBox(h.Keys())
}

// Cells returns the occupied cells in canonical (Z, Y, X) order.
func (h *Heatmap3) Cells() []lattice.Cell3 {
	return slices.SortedFunc(h.Keys(), lattice.Compare3)
}

// Equal reports whether h and o have the same transform and strengths.
func (h *Heatmap3) Equal(o *Heatmap3) bool {
	if h == nil || o == nil {
		return h == o
	}

	return h.transform == o.transform && h.equal(&o.store)
}

// Clone returns a deep copy of h.
func (h *Heatmap3) Clone() *Heatmap3 {
	return &Heatmap3{store: h.clone(), transform: h.transform}
}

// Project folds h along the axis discarded by s, summing strengths that land on
// the same 2D key. The transform is carried over unchanged.
func (h *Heatmap3) Project(s lattice.Swizzle) *Heatmap3to2 {
	out := New3to2(h.Len(), h.transform, s)
	for c, v := range h.All() {
		out.Add3(c, v)
	}

	return out
}

// Heatmap3to2 is a sparse heatmap of 3D cells projected onto 2D keys.
type Heatmap3to2 struct {
	store[lattice.Cell2]
	transform Matrix4x4
	swizzle   lattice.Swizzle
}

// New3to2 creates an empty projected heatmap. The swizzle is expected to be
// valid; the codec rejects invalid tags on both encode and decode.
func New3to2(capacity int, transform Matrix4x4, swizzle lattice.Swizzle) *Heatmap3to2 {
	return &Heatmap3to2{
		store:     newStore[lattice.Cell2](capacity),
		transform: transform,
		swizzle:   swizzle,
	}
}

// Transform returns the lattice to continuous space transform.
func (h *Heatmap3to2) Transform() Matrix4x4 {
	return h.transform
}

// SetTransform replaces the transform.
func (h *Heatmap3to2) SetTransform(m Matrix4x4) {
	h.transform = m
}

// Swizzle returns the axis selection used to project 3D cells.
func (h *Heatmap3to2) Swizzle() lattice.Swizzle {
	return h.swizzle
}

// Add3 projects a 3D cell through the swizzle and accumulates delta at the
// resulting key.
func (h *Heatmap3to2) Add3(c lattice.Cell3, delta int64) int64 {
	return h.Add(h.swizzle.Project(c), delta)
}

// Get3 returns the strength at the projected key of c.
func (h *Heatmap3to2) Get3(c lattice.Cell3) int64 {
	return h.Get(h.swizzle.Project(c))
}

// Bounds returns the tightest rect enclosing every occupied key.
func (h *Heatmap3to2) Bounds() lattice.Rect {
	return lattice.BoundingRect(h.Keys())
}

// Cells returns the occupied keys in canonical (Y, X) order.
func (h *Heatmap3to2) Cells() []lattice.Cell2 {
	return slices.SortedFunc(h.Keys(), lattice.Compare2)
}

// Equal reports whether h and o have the same transform, swizzle and strengths.
func (h *Heatmap3to2) Equal(o *Heatmap3to2) bool {
	if h == nil || o == nil {
		return h == o
	}

	return h.transform == o.transform && h.swizzle == o.swizzle && h.equal(&o.store)
}

// Clone returns a deep copy of h.
func (h *Heatmap3to2) Clone() *Heatmap3to2 {
	return &Heatmap3to2{store: h.clone(), transform: h.transform, swizzle: h.swizzle}
}
