package lattice

import "cmp"

// Compare2 orders 2D cells by Y, then X.
//
// Returns -1 if a sorts before b, +1 if after, 0 if equal. It is suitable for
// slices.SortFunc and defines the canonical scan order of the 2D codecs.
func Compare2(a, b Cell2) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}

	return cmp.Compare(a.X, b.X)
}

// Compare3 orders 3D cells by Z, then Y, then X.
func Compare3(a, b Cell3) int {
	if c := cmp.Compare(a.Z, b.Z); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}

	return cmp.Compare(a.X, b.X)
}
