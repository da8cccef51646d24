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

// Codec2 encodes and decodes 2D heatmaps.
type Codec2 struct{}

// NewCodec2 creates a 2D heatmap codec.
func NewCodec2() Codec2 {
	return Codec2{}
}

// Encode writes h to w.
//
// Returns:
//   - errs.ErrNilHeatmap if h is nil
//   - errs.ErrNonFiniteMatrix if the transform holds NaN or Inf
//   - errs.ErrNegativeStrength if any cell holds a negative strength
//   - errs.ErrBoundsTooLarge if the bounding rect volume overflows int64
//   - any error from w or ctx
func (c Codec2) Encode(ctx context.Context, w io.Writer, h *sparse.Heatmap2) error {
	if h == nil {
		return errs.ErrNilHeatmap
	}

	return encodeTo(ctx, w, h, c.encode)
}

// Decode reads a 2D heatmap from r.
func (c Codec2) Decode(ctx context.Context, r io.Reader) (*sparse.Heatmap2, error) {
	return decodeFrom(ctx, r, c.decode)
}

func (c Codec2) encode(ctx context.Context, tw *jsontoken.Writer, h *sparse.Heatmap2) error {
	cells := h.Cells()
	bounds := lattice.BoundingRect(slices.Values(cells))
	if _, ok := lattice.Volume2(bounds); !ok {
		return fmt.Errorf("%w: %v", errs.ErrBoundsTooLarge, bounds)
	}

	tw.BeginObject()
	if err := writeField(ctx, tw, FieldMatrix); err != nil {
		return err
	}
	if err := writeMatrix2x3(tw, h.Transform()); err != nil {
		return err
	}
	if err := writeField(ctx, tw, FieldBounds); err != nil {
		return err
	}
	writeRect(tw, bounds)
	if err := writeField(ctx, tw, FieldStrengths); err != nil {
		return err
	}

	tw.BeginArray()
	// The cursor tracks the last emitted cell; it starts one cell before the
	// rect so the first gap is counted from the rect origin.
	offset := cursor2{x: int64(bounds.X) - 1, y: int64(bounds.Y)}
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
		if next := gap2(offset, pos, bounds.Width); next < 0 {
			tw.Int(next)
		}
		tw.Int(v)
		offset = pos
	}
	tw.EndArray()
	tw.EndObject()

	return tw.Err()
}

// gap2 returns minus the number of empty cells strictly between the previously
// emitted cell and cell, or zero when they are adjacent in scan order.
func gap2(prev, cell cursor2, width int64) int64 {
	return (prev.y-cell.y)*width + (prev.x - cell.x) + 1
}

func (c Codec2) decode(ctx context.Context, tr *jsontoken.Reader) (*sparse.Heatmap2, error) {
	if err := tr.ExpectDelim('{'); err != nil {
		return nil, err
	}

	if err := expectField(ctx, tr, FieldMatrix); err != nil {
		return nil, err
	}
	m, err := readMatrix2x3(tr)
	if err != nil {
		return nil, err
	}

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

	h := sparse.New2(lattice.Capacity2(bounds), m)
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
