package codec

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/arloliu/heatmap/errs"
	"github.com/arloliu/heatmap/internal/jsontoken"
	"github.com/arloliu/heatmap/lattice"
	"github.com/arloliu/heatmap/sparse"
)

// Fixed-length array sub-codecs. Each reads or writes exactly N consecutive
// numbers wrapped in a JSON array.

func writeFloats(tw *jsontoken.Writer, values []float64) {
	tw.BeginArray()
	for _, v := range values {
		tw.Float(v)
	}
	tw.EndArray()
}

func readFloats(tr *jsontoken.Reader, dst []float64) error {
	if err := tr.ExpectDelim('['); err != nil {
		return err
	}
	for i := range dst {
		if err := expectElement(tr, i, len(dst)); err != nil {
			return err
		}
		v, err := tr.Float64()
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return expectArrayEnd(tr, len(dst))
}

func readInts(tr *jsontoken.Reader, dst []int64) error {
	if err := tr.ExpectDelim('['); err != nil {
		return err
	}
	for i := range dst {
		if err := expectElement(tr, i, len(dst)); err != nil {
			return err
		}
		v, err := tr.Int64()
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return expectArrayEnd(tr, len(dst))
}

func expectElement(tr *jsontoken.Reader, i, n int) error {
	end, err := tr.AtDelim(json.Delim(']'))
	if err != nil {
		return err
	}
	if end {
		return fmt.Errorf("%w: %w: expected %d elements, got %d",
			errs.ErrInvalidFormat, errs.ErrInvalidArrayLength, n, i)
	}

	return nil
}

func expectArrayEnd(tr *jsontoken.Reader, n int) error {
	end, err := tr.AtDelim(json.Delim(']'))
	if err != nil {
		return err
	}
	if !end {
		return fmt.Errorf("%w: %w: expected %d elements, got more",
			errs.ErrInvalidFormat, errs.ErrInvalidArrayLength, n)
	}

	return tr.ExpectDelim(']')
}

func writeMatrix2x3(tw *jsontoken.Writer, m sparse.Matrix2x3) error {
	if !m.IsFinite() {
		return errs.ErrNonFiniteMatrix
	}
	writeFloats(tw, m[:])

	return nil
}

func readMatrix2x3(tr *jsontoken.Reader) (sparse.Matrix2x3, error) {
	var m sparse.Matrix2x3
	err := readFloats(tr, m[:])

	return m, err
}

func writeMatrix4x4(tw *jsontoken.Writer, m sparse.Matrix4x4) error {
	if !m.IsFinite() {
		return errs.ErrNonFiniteMatrix
	}
	writeFloats(tw, m[:])

	return nil
}

func readMatrix4x4(tr *jsontoken.Reader) (sparse.Matrix4x4, error) {
	var m sparse.Matrix4x4
	err := readFloats(tr, m[:])

	return m, err
}

// writeRect writes [x, y, width, height].
func writeRect(tw *jsontoken.Writer, r lattice.Rect) {
	tw.BeginArray()
	tw.Int(int64(r.X))
	tw.Int(int64(r.Y))
	tw.Int(r.Width)
	tw.Int(r.Height)
	tw.EndArray()
}

func readRect(tr *jsontoken.Reader) (lattice.Rect, error) {
	var v [4]int64
	if err := readInts(tr, v[:]); err != nil {
		return lattice.Rect{}, err
	}

	x, err := axis(v[0], v[2])
	if err != nil {
		return lattice.Rect{}, err
	}
	y, err := axis(v[1], v[3])
	if err != nil {
		return lattice.Rect{}, err
	}

	return lattice.Rect{X: x, Y: y, Width: v[2], Height: v[3]}, nil
}

// writeBox writes [x, y, z, width, height, depth].
func writeBox(tw *jsontoken.Writer, b lattice.Box) {
	tw.BeginArray()
	tw.Int(int64(b.X))
	tw.Int(int64(b.Y))
	tw.Int(int64(b.Z))
	tw.Int(b.Width)
	tw.Int(b.Height)
	tw.Int(b.Depth)
	tw.EndArray()
}

func readBox(tr *jsontoken.Reader) (lattice.Box, error) {
	var v [6]int64
	if err := readInts(tr, v[:]); err != nil {
		return lattice.Box{}, err
	}

	var pos [3]int32
	for i := range pos {
		p, err := axis(v[i], v[i+3])
		if err != nil {
			return lattice.Box{}, err
		}
		pos[i] = p
	}

	return lattice.Box{
		X: pos[0], Y: pos[1], Z: pos[2],
		Width: v[3], Height: v[4], Depth: v[5],
	}, nil
}

// axis validates one bounds axis: the position must be an int32, the size must
// be non-negative, and every cell of the extent must be addressable as int32.
func axis(pos, size int64) (int32, error) {
	if pos < math.MinInt32 || pos > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %w: position %d out of int32 range",
			errs.ErrInvalidFormat, errs.ErrInvalidBounds, pos)
	}
	if size < 0 {
		return 0, fmt.Errorf("%w: %w: negative size %d",
			errs.ErrInvalidFormat, errs.ErrInvalidBounds, size)
	}
	if size > math.MaxInt32-pos+1 {
		return 0, fmt.Errorf("%w: %w: extent %d from %d exceeds int32 range",
			errs.ErrInvalidFormat, errs.ErrInvalidBounds, size, pos)
	}

	return int32(pos), nil
}
