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

// Codec3 encodes and decodes 3D heatmaps.
type Codec3 struct{}

// NewCodec3 creates a 3D heatmap codec.
func NewCodec3() Codec3 {
	return Codec3{}
}

// Encode writes h to w. See Codec2.Encode for the error conditions.
func (c Codec3) Encode(ctx context.Context, w io.Writer, h *sparse.Heatmap3) error {
	if h == nil {
		return errs.ErrNilHeatmap
	}

	return encodeTo(ctx, w, h, c.encode)
}

// Decode reads a 3D heatmap from r.
func (c Codec3) Decode(ctx context.Context, r io.Reader) (*sparse.Heatmap3, error) {
	return decodeFrom(ctx, r, c.decode)
}

func (c Codec3) encode(ctx context.Context, tw *jsontoken.Writer, h *sparse.Heatmap3) error {
	cells := h.Cells()
	bounds := lattice.BoundingBox(slices.Values(cells))
	if _, ok := lattice.Volume3(bounds); !ok {
		return fmt.Errorf("%w: %v", errs.ErrBoundsTooLarge, bounds)
	}

	tw.BeginObject()
	if err := writeField(ctx, tw, FieldMatrix); err != nil {
		return err
	}
	if err := writeMatrix4x4(tw, h.Transform()); err != nil {
		return err
	}
	if err := writeField(ctx, tw, FieldBounds); err != nil {
		return err
	}
	writeBox(tw, bounds)
	if err := writeField(ctx, tw, FieldStrengths); err != nil {
		return err
	}

	tw.BeginArray()
	offset := cursor3{x: int64(bounds.X) - 1, y: int64(bounds.Y), z: int64(bounds.Z)}
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

		pos := cursorOf3(cell)
		if next := gap3(offset, pos, bounds.Width, bounds.Height); next < 0 {
			tw.Int(next)
		}
		tw.Int(v)
		offset = pos
	}
	tw.EndArray()
	tw.EndObject()

	return tw.Err()
}

// gap3 is the 3D counterpart of gap2: layers are height*width cells apart.
func gap3(prev, cell cursor3, width, height int64) int64 {
	return (prev.z-cell.z)*height*width + (prev.y-cell.y)*width + (prev.x - cell.x) + 1
}

func (c Codec3) decode(ctx context.Context, tr *jsontoken.Reader) (*sparse.Heatmap3, error) {
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

	if err := expectField(ctx, tr, FieldBounds); err != nil {
		return nil, err
	}
	bounds, err := readBox(tr)
	if err != nil {
		return nil, err
	}

	if err := expectField(ctx, tr, FieldStrengths); err != nil {
		return nil, err
	}
	if err := tr.ExpectDelim('['); err != nil {
		return nil, err
	}

	h := sparse.New3(lattice.Capacity3(bounds), m)
	offset := cursorAt3(bounds)
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
