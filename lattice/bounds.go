package lattice

import (
	"fmt"
	"iter"
)

// Rect is an axis-aligned 2D box given by its minimum corner and its extent.
//
// Width and Height are exclusive extents: a rect enclosing a single cell has
// size 1x1. They are int64 because max - min + 1 over int32 coordinates can
// exceed the int32 range.
type Rect struct {
	X      int32
	Y      int32
	Width  int64
	Height int64
}

// Box is an axis-aligned 3D box given by its minimum corner and its extent.
type Box struct {
	X      int32
	Y      int32
	Z      int32
	Width  int64
	Height int64
	Depth  int64
}

// Position returns the minimum corner of r.
func (r Rect) Position() Cell2 {
	return Cell2{X: r.X, Y: r.Y}
}

// Empty reports whether r encloses no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Cell2) bool {
	return inside(c.X, r.X, r.Width) && inside(c.Y, r.Y, r.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.Width, r.Height)
}

// Position returns the minimum corner of b.
func (b Box) Position() Cell3 {
	return Cell3{X: b.X, Y: b.Y, Z: b.Z}
}

// Empty reports whether b encloses no cells.
func (b Box) Empty() bool {
	return b.Width <= 0 || b.Height <= 0 || b.Depth <= 0
}

// Contains reports whether c lies inside b.
func (b Box) Contains(c Cell3) bool {
	return inside(c.X, b.X, b.Width) && inside(c.Y, b.Y, b.Height) && inside(c.Z, b.Z, b.Depth)
}

func (b Box) String() string {
	return fmt.Sprintf("[%d,%d,%d %dx%dx%d]", b.X, b.Y, b.Z, b.Width, b.Height, b.Depth)
}

func inside(v, lo int32, size int64) bool {
	d := int64(v) - int64(lo)
	return d >= 0 && d < size
}

// BoundingRect returns the tightest rect enclosing every cell in cells.
//
// The size on each axis is max - min + 1. For an empty sequence the result is
// the zero Rect: position (0,0) and zero size.
func BoundingRect(cells iter.Seq[Cell2]) Rect {
	var lo, hi Cell2
	first := true
	for c := range cells {
		if first {
			lo, hi = c, c
			first = false

			continue
		}
		lo.X, hi.X = min(lo.X, c.X), max(hi.X, c.X)
		lo.Y, hi.Y = min(lo.Y, c.Y), max(hi.Y, c.Y)
	}

	if first {
		return Rect{}
	}

	return Rect{
		X:      lo.X,
		Y:      lo.Y,
		Width:  extent(lo.X, hi.X),
		Height: extent(lo.Y, hi.Y),
	}
}

// BoundingBox returns the tightest box enclosing every cell in cells.
//
// For an empty sequence the result is the zero Box.
func BoundingBox(cells iter.Seq[Cell3]) Box {
	var lo, hi Cell3
	first := true
	for c := range cells {
		if first {
			lo, hi = c, c
			first = false

			continue
		}
		lo.X, hi.X = min(lo.X, c.X), max(hi.X, c.X)
		lo.Y, hi.Y = min(lo.Y, c.Y), max(hi.Y, c.Y)
		lo.Z, hi.Z = min(lo.Z, c.Z), max(hi.Z, c.Z)
	}

	if first {
		return Box{}
	}

	return Box{
		X:      lo.X,
		Y:      lo.Y,
		Z:      lo.Z,
		Width:  extent(lo.X, hi.X),
		Height: extent(lo.Y, hi.Y),
		Depth:  extent(lo.Z, hi.Z),
	}
}

func extent(lo, hi int32) int64 {
	return int64(hi) - int64(lo) + 1
}
