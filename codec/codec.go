// Package codec implements the canonical run-length codec for sparse heatmaps.
//
// A heatmap is written as a JSON object with fields in fixed order:
//
//	2D:    {"Matrix":[6 numbers],"Bounds":[x,y,w,h],"Strengths":[...]}
//	3D:    {"Matrix":[16 numbers],"Bounds":[x,y,z,w,h,d],"Strengths":[...]}
//	3to2:  {"Matrix":[16 numbers],"Swizzle":0|1|2,"Bounds":[x,y,w,h],"Strengths":[...]}
//
// Bounds is the tightest box around the occupied cells. Strengths is a dense scan
// of that box in canonical order (X fastest, then Y, then Z) where every run of
// empty cells is collapsed into a single negative number whose magnitude is the
// run length, and every occupied cell contributes its strength. The empty tail
// after the last occupied cell is never written.
//
// For example, a 7x7 box with occupied corners and edge midpoints:
//
//	{"Matrix":[11,12,21,22,31,32],"Bounds":[-3,-3,7,7],
//	 "Strengths":[7,-2,6,-2,8,-14,5,-5,2,-14,9,-2,3,-2,4]}
//
// # Variants
//
// Codec2, Codec3 and Codec3to2 share the protocol and implement the Codec
// interface for their container type. They differ in dimensionality and in the
// gap arithmetic: the 2D and 3D encoders compare against the previously emitted
// cell and add one, while the projected variant keeps its cursor one cell past
// the previous emission and adds nothing. Both produce the same gap lengths.
//
// # Errors
//
// Any structural mismatch while decoding wraps errs.ErrInvalidFormat and no
// heatmap is returned. Encoding a heatmap that holds a negative strength fails
// with errs.ErrNegativeStrength, since negative numbers denote gaps.
//
// # Concurrency
//
// Codecs are stateless and safe for concurrent use, but the heatmap passed to
// Encode must not be mutated until Encode returns. Cancellation through the
// context is honored before each top-level field and between array elements.
package codec

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/arloliu/heatmap/errs"
	"github.com/arloliu/heatmap/internal/jsontoken"
	"github.com/arloliu/heatmap/sparse"
)

// Field names of the wire format.
const (
	FieldMatrix    = "Matrix"
	FieldSwizzle   = "Swizzle"
	FieldBounds    = "Bounds"
	FieldStrengths = "Strengths"
)

// cancelCheckMask controls how often the context is polled inside the
// Strengths array: once every cancelCheckMask+1 elements.
const cancelCheckMask = 1023

// Codec encodes and decodes one heatmap variant.
type Codec[H any] interface {
	// Encode writes h to w as a single JSON document.
	Encode(ctx context.Context, w io.Writer, h H) error
	// Decode reads one JSON document from r and returns a newly built heatmap.
	// On error no heatmap is returned.
	Decode(ctx context.Context, r io.Reader) (H, error)
}

var (
	_ Codec[*sparse.Heatmap2]    = Codec2{}
	_ Codec[*sparse.Heatmap3]    = Codec3{}
	_ Codec[*sparse.Heatmap3to2] = Codec3to2{}
)

// encodeFunc writes a heatmap body to the token writer.
type encodeFunc[H any] func(ctx context.Context, tw *jsontoken.Writer, h H) error

// decodeFunc reads a heatmap body from the token reader.
type decodeFunc[H any] func(ctx context.Context, tr *jsontoken.Reader) (H, error)

func encodeTo[H any](ctx context.Context, w io.Writer, h H, enc encodeFunc[H]) error {
	tw := jsontoken.NewWriter(w)
	defer tw.Release()

	if err := enc(ctx, tw, h); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write heatmap: %w", err)
	}

	return nil
}

func decodeFrom[H any](ctx context.Context, r io.Reader, dec decodeFunc[H]) (H, error) {
	var zero H

	tr := jsontoken.NewReader(r)
	h, err := dec(ctx, tr)
	if err != nil {
		return zero, err
	}
	if err := tr.ExpectEOF(); err != nil {
		return zero, err
	}

	return h, nil
}

// expectField checks for cancellation, then consumes the named field key.
func expectField(ctx context.Context, tr *jsontoken.Reader, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return tr.ExpectField(name)
}

// writeField checks for cancellation, then writes the named field key.
func writeField(ctx context.Context, tw *jsontoken.Writer, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tw.Field(name)

	return tw.Err()
}

// strengths iterates over the Strengths array, calling fn for every element.
// The opening bracket must already be consumed; the closing bracket is consumed
// before returning.
func strengths(ctx context.Context, tr *jsontoken.Reader, fn func(v int64) error) error {
	for i := 0; ; i++ {
		if i&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		end, err := tr.AtDelim(json.Delim(']'))
		if err != nil {
			return err
		}
		if end {
			return tr.ExpectDelim(']')
		}

		v, err := tr.Int64()
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}

// checkStrength rejects strengths that cannot be told apart from gap markers.
func checkStrength[C fmt.Stringer](cell C, v int64) error {
	if v < 0 {
		return fmt.Errorf("%w: %d at %v", errs.ErrNegativeStrength, v, cell)
	}

	return nil
}

func outOfBounds(what string, bounds fmt.Stringer) error {
	return fmt.Errorf("%w: %w: %s outside %v", errs.ErrInvalidFormat, errs.ErrCellOutOfBounds, what, bounds)
}

func negate(v int64) int64 {
	// -MinInt64 overflows back to MinInt64; the cursor rejects negative runs.
	return -v
}
