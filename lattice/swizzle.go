package lattice

import (
	"fmt"
	"strings"

	"github.com/arloliu/heatmap/errs"
)

// Swizzle selects which two of the three lattice axes are kept when a 3D cell
// is projected onto a 2D key. The remaining axis is folded away.
type Swizzle uint8

const (
	SwizzleXY Swizzle = 0 // SwizzleXY keeps X and Y, folding Z.
	SwizzleXZ Swizzle = 1 // SwizzleXZ keeps X and Z, folding Y.
	SwizzleYZ Swizzle = 2 // SwizzleYZ keeps Y and Z, folding X.
)

// IsValid reports whether s is one of the three defined axis selections.
func (s Swizzle) IsValid() bool {
	return s <= SwizzleYZ
}

func (s Swizzle) String() string {
	switch s {
	case SwizzleXY:
		return "XY"
	case SwizzleXZ:
		return "XZ"
	case SwizzleYZ:
		return "YZ"
	default:
		return "Unknown"
	}
}

// Project maps a 3D cell onto its 2D key under s.
//
// The first kept axis becomes X and the second becomes Y, e.g. SwizzleYZ maps
// (x, y, z) to (y, z). Project returns the zero cell for an invalid swizzle.
func (s Swizzle) Project(c Cell3) Cell2 {
	switch s {
	case SwizzleXY:
		return Cell2{X: c.X, Y: c.Y}
	case SwizzleXZ:
		return Cell2{X: c.X, Y: c.Z}
	case SwizzleYZ:
		return Cell2{X: c.Y, Y: c.Z}
	default:
		return Cell2{}
	}
}

// FoldedAxis returns the index (0=X, 1=Y, 2=Z) of the axis discarded by s.
func (s Swizzle) FoldedAxis() int {
	switch s {
	case SwizzleXZ:
		return 1
	case SwizzleYZ:
		return 0
	default:
		return 2
	}
}

// ParseSwizzle parses "xy", "xz" or "yz" (case-insensitive).
func ParseSwizzle(name string) (Swizzle, error) {
	switch strings.ToUpper(name) {
	case "XY":
		return SwizzleXY, nil
	case "XZ":
		return SwizzleXZ, nil
	case "YZ":
		return SwizzleYZ, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidSwizzle, name)
	}
}
