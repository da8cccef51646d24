package lattice

import "math"

// MulChecked returns a*b and whether the product fits in an int64.
func MulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}

	c := a * b
	if c/b != a {
		return 0, false
	}

	return c, true
}

// Volume2 returns Width*Height of r and whether it fits in an int64.
func Volume2(r Rect) (int64, bool) {
	return MulChecked(r.Width, r.Height)
}

// Volume3 returns Width*Height*Depth of b and whether it fits in an int64.
func Volume3(b Box) (int64, bool) {
	area, ok := MulChecked(b.Width, b.Height)
	if !ok {
		return 0, false
	}

	return MulChecked(area, b.Depth)
}

// Capacity2 returns the number of cells in r as a pre-sizing hint.
//
// When the volume overflows it returns math.MaxInt instead of failing; the
// value is only ever used as a capacity hint.
func Capacity2(r Rect) int {
	v, ok := Volume2(r)
	return capacity(v, ok)
}

// Capacity3 returns the number of cells in b as a pre-sizing hint, falling back
// to math.MaxInt on overflow.
func Capacity3(b Box) int {
	v, ok := Volume3(b)
	return capacity(v, ok)
}

func capacity(v int64, ok bool) int {
	if !ok || v > int64(math.MaxInt) {
		return math.MaxInt
	}
	if v < 0 {
		return 0
	}

	return int(v)
}
