// Package lattice provides the integer lattice primitives shared by the heatmap
// containers and codecs.
//
// # Cells
//
// A cell is an integer coordinate tuple used as a sparse map key. Cell2 and Cell3
// are comparable value types, so equality and hashing are component-wise and they
// can be used directly as Go map keys.
//
// # Canonical Order
//
// Cells are ordered most-significant-axis-first: Y then X for Cell2, and Z then Y
// then X for Cell3. The same order drives bounding box discovery and run-length
// emission, so a scan over a bounding box visits cells in exactly this order,
// with X advancing fastest.
//
// # Bounds and Capacity
//
// BoundingRect and BoundingBox fold over a set of occupied cells and return the
// tightest enclosing box whose size is max - min + 1 per axis. Capacity2 and
// Capacity3 turn a box size into a map pre-sizing hint using overflow-checked
// multiplication and fall back to math.MaxInt when the volume does not fit.
package lattice

import "fmt"

// Cell2 is a 2D integer lattice coordinate.
type Cell2 struct {
	X int32
	Y int32
}

// Cell3 is a 3D integer lattice coordinate.
type Cell3 struct {
	X int32
	Y int32
	Z int32
}

// C2 is a shorthand constructor for Cell2.
func C2(x, y int32) Cell2 {
	return Cell2{X: x, Y: y}
}

// C3 is a shorthand constructor for Cell3.
func C3(x, y, z int32) Cell3 {
	return Cell3{X: x, Y: y, Z: z}
}

// String returns the cell as "(x,y)".
func (c Cell2) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// String returns the cell as "(x,y,z)".
func (c Cell3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}
