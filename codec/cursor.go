package codec

import "github.com/arloliu/heatmap/lattice"

// cursor2 is a scan position inside a rect. Coordinates are int64 so that the
// exclusive upper bound of an int32 box is representable.
type cursor2 struct {
	x int64
	y int64
}

func cursorAt2(r lattice.Rect) cursor2 {
	return cursor2{x: int64(r.X), y: int64(r.Y)}
}

func cursorOf2(c lattice.Cell2) cursor2 {
	return cursor2{x: int64(c.X), y: int64(c.Y)}
}

func (c cursor2) inside(r lattice.Rect) bool {
	return c.x >= int64(r.X) && c.x < int64(r.X)+r.Width &&
		c.y >= int64(r.Y) && c.y < int64(r.Y)+r.Height
}

func (c cursor2) cell() lattice.Cell2 {
	return lattice.Cell2{X: int32(c.x), Y: int32(c.y)}
}

// step advances by one cell in scan order, X wrapping into Y at the rect width.
func (c *cursor2) step(r lattice.Rect) {
	c.x++
	if c.x >= int64(r.X)+r.Width {
		c.x = int64(r.X)
		c.y++
	}
}

// skip advances over n empty cells by decomposing n into row and column
// increments. It reports false if the cursor would move past the position
// directly after the last cell of the rect.
func (c *cursor2) skip(n int64, r lattice.Rect) bool {
	if n < 0 || r.Width <= 0 {
		return false
	}

	dy, dx := n/r.Width, n%r.Width
	c.x += dx
	if c.x >= int64(r.X)+r.Width {
		c.x -= r.Width
		dy++
	}
	end := int64(r.Y) + r.Height
	if dy > end-c.y {
		return false
	}
	c.y += dy

	return c.y < end || c.x == int64(r.X)
}

// cursor3 is a scan position inside a box.
type cursor3 struct {
	x int64
	y int64
	z int64
}

func cursorAt3(b lattice.Box) cursor3 {
	return cursor3{x: int64(b.X), y: int64(b.Y), z: int64(b.Z)}
}

func cursorOf3(c lattice.Cell3) cursor3 {
	return cursor3{x: int64(c.X), y: int64(c.Y), z: int64(c.Z)}
}

func (c cursor3) inside(b lattice.Box) bool {
	return c.x >= int64(b.X) && c.x < int64(b.X)+b.Width &&
		c.y >= int64(b.Y) && c.y < int64(b.Y)+b.Height &&
		c.z >= int64(b.Z) && c.z < int64(b.Z)+b.Depth
}

func (c cursor3) cell() lattice.Cell3 {
	return lattice.Cell3{X: int32(c.x), Y: int32(c.y), Z: int32(c.z)}
}

// step advances by one cell in scan order: X wraps into Y at the width, Y wraps
// into Z at the height.
func (c *cursor3) step(b lattice.Box) {
	c.x++
	if c.x < int64(b.X)+b.Width {
		return
	}
	c.x = int64(b.X)
	c.y++
	if c.y >= int64(b.Y)+b.Height {
		c.y = int64(b.Y)
		c.z++
	}
}

// skip advances over n empty cells, decomposing n against the width and then
// the height. It reports false if the cursor would leave the box.
func (c *cursor3) skip(n int64, b lattice.Box) bool {
	if n < 0 || b.Width <= 0 || b.Height <= 0 {
		return false
	}

	rows := n / b.Width
	dx := n % b.Width
	dz, dy := rows/b.Height, rows%b.Height

	c.x += dx
	if c.x >= int64(b.X)+b.Width {
		c.x -= b.Width
		dy++
	}
	c.y += dy
	if c.y >= int64(b.Y)+b.Height {
		c.y -= b.Height
		dz++
	}
	end := int64(b.Z) + b.Depth
	if dz > end-c.z {
		return false
	}
	c.z += dz

	return c.z < end || (c.x == int64(b.X) && c.y == int64(b.Y))
}
