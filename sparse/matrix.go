package sparse

import (
	"math"

	"github.com/arloliu/heatmap/lattice"
)

// Vec2 is a point in continuous 2D space.
type Vec2 struct {
	X float64
	Y float64
}

// Vec3 is a point in continuous 3D space.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Matrix2x3 is a 2D affine transform stored as M11, M12, M21, M22, M31, M32.
//
// Points are row vectors: [x y 1] * M, so M31 and M32 hold the translation.
type Matrix2x3 [6]float64

// Matrix4x4 is a 3D affine transform stored row-major as M11..M44.
//
// Points are row vectors: [x y z 1] * M, so M41..M43 hold the translation.
type Matrix4x4 [16]float64

// Identity2x3 returns the identity transform.
func Identity2x3() Matrix2x3 {
	return Matrix2x3{1, 0, 0, 1, 0, 0}
}

// Identity4x4 returns the identity transform.
func Identity4x4() Matrix4x4 {
	return Matrix4x4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale2x3 returns a transform scaling each lattice cell to sx by sy units,
// then translating by (tx, ty).
func Scale2x3(sx, sy, tx, ty float64) Matrix2x3 {
	return Matrix2x3{sx, 0, 0, sy, tx, ty}
}

// Apply maps a lattice cell into continuous space.
func (m Matrix2x3) Apply(c lattice.Cell2) Vec2 {
	x, y := float64(c.X), float64(c.Y)

	return Vec2{
		X: x*m[0] + y*m[2] + m[4],
		Y: x*m[1] + y*m[3] + m[5],
	}
}

// IsFinite reports whether every element of m is neither NaN nor infinite.
func (m Matrix2x3) IsFinite() bool {
	return finite(m[:])
}

// Apply maps a lattice cell into continuous space.
func (m Matrix4x4) Apply(c lattice.Cell3) Vec3 {
	x, y, z := float64(c.X), float64(c.Y), float64(c.Z)

	return Vec3{
		X: x*m[0] + y*m[4] + z*m[8] + m[12],
		Y: x*m[1] + y*m[5] + z*m[9] + m[13],
		Z: x*m[2] + y*m[6] + z*m[10] + m[14],
	}
}

// IsFinite reports whether every element of m is neither NaN nor infinite.
func (m Matrix4x4) IsFinite() bool {
	return finite(m[:])
}

func finite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
