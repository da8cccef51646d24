package codec

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/arloliu/heatmap/errs"
	"github.com/arloliu/heatmap/internal/jsontoken"
	"github.com/arloliu/heatmap/lattice"
	"github.com/arloliu/heatmap/sparse"
)

// Codec3to2 encodes and decodes projected 3D heatmaps.
//
// The wire form carries the 4x4 transform, the swizzle tag and the 2D bounds of
// the projected keys. Strengths of distinct 3D cells that share a key are
// already summed in the container, and decoding accumulates into the key.
type Codec3to2 struct{}

// NewCodec3to2 creates a projected heatmap codec.
func NewCodec3to2() Codec3to2 {
	return Codec3to2{}
}

// Encode writes h to w. In addition to the Codec2.Encode error conditions it
// returns errs.ErrInvalidSwizzle if the heatmap holds an undefined swizzle.
func (c Codec3to2) Encode(ctx context.Context, w io.Writer, h *sparse.Heatmap3to2) error {
	if h == nil {
		return errs.ErrNilHeatmap
	}
	if !h.Swizzle().IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidSwizzle, h.Swizzle())
	}

	return encodeTo(ctx, w, h, c.encode)
}

// Decode reads a projected heatmap from r.
func (c Codec3to2) Decode(ctx context.Context, r io.Reader) (*sparse.Heatmap3to2, error) {
	return decodeFrom(ctx, r, c.decode)
}

func (c Codec3to2) encode(ctx context.Context, tw *jsontoken.Writer, h *sparse.Heatmap3to2) error {
	cells := h.Cells()
	bounds := lattice.BoundingRect(slices.Values(cells))
	if _, ok := lattice.Volume2(bounds); !ok {
		return fmt.Errorf("%w: %v", errs.ErrBoundsTooLarge, bounds)
	}

	tw.BeginObject()
	if err := writeField(ctx, tw, FieldMatrix); err != nil {
		return err
	}
	if err := writeMatrix4x4(tw, h.Transform()); err != nil {
		return err
	}
	if err := writeField(ctx, tw, FieldSwizzle); err != nil {
		return err
	}
	tw.Int(int64(h.Swizzle()))
	if err := writeField(ctx, tw, FieldBounds); err != nil {
		return err
	}
	writeRect(tw, bounds)
	if err := writeField(ctx, tw, FieldStrengths); err != nil {
		return err
	}

	tw.BeginArray()
	// The cursor points at the next cell the scan expects; after an emission it
	// moves one past the emitted cell without wrapping.
	offset := cursorAt2(bounds)
	for i, cell := range cells {
		if i&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		v := h.Get(cell)
		if err := checkStrength(cell, v); err != nil {
			return err
		}

		pos := cursorOf2(cell)
		if next := gapSwizzle(offset, pos, bounds.Width); next < 0 {
			tw.Int(next)
		}
		tw.Int(v)
		offset = pos
		offset.x++
	}
	tw.EndArray()
	tw.EndObject()

	return tw.Err()
}

// gapSwizzle returns minus the number of empty cells between the expected cell
// and cell.
func gapSwizzle(expected, cell cursor2, width int64) int64 {
	return (expected.y-cell.y)*width + (expected.x - cell.x)
}

func (c Codec3to2) decode(ctx context.Context, tr *jsontoken.Reader) (*sparse.Heatmap3to2, error) {
	if err := tr.ExpectDelim('{'); err != nil {
		return nil, err
	}

	if err := expectField(ctx, tr, FieldMatrix); err != nil {
		return nil, err
	}
	m, err := readMatrix4x4(tr)
	if err != nil {
		return nil, err
	}

	if err := expectField(ctx, tr, FieldSwizzle); err != nil {
		return nil, err
	}
	tag, err := tr.Int64()
	if err != nil {
		return nil, err
	}
	if tag < 0 || tag > int64(lattice.SwizzleYZ) {
		return nil, fmt.Errorf("%w: %w: %d", errs.ErrInvalidFormat, errs.ErrInvalidSwizzle, tag)
	}
	swizzle := lattice.Swizzle(tag)

	if err := expectField(ctx, tr, FieldBounds); err != nil {
		return nil, err
	}
	bounds, err := readRect(tr)
	if err != nil {
		return nil, err
	}

	if err := expectField(ctx, tr, FieldStrengths); err != nil {
		return nil, err
	}
	if err := tr.ExpectDelim('['); err != nil {
		return nil, err
	}

	h := sparse.New3to2(lattice.Capacity2(bounds), m, swizzle)
	offset := cursorAt2(bounds)
	err = strengths(ctx, tr, func(v int64) error {
		if v < 0 {
			if !offset.skip(negate(v), bounds) {
				return outOfBounds(fmt.Sprintf("gap %d", v), bounds)
			}

			return nil
		}

		if !offset.inside(bounds) {
			return outOfBounds("strength", bounds)
		}
		h.Add(offset.cell(), v)
		offset.step(bounds)

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := tr.ExpectDelim('}'); err != nil {
		return nil, err
	}
	h.Trim()

	return h, nil
}
