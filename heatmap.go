// Package heatmap stores strength values on a sparse integer lattice and
// serializes them with a canonical run-length JSON codec.
//
// A heatmap maps lattice cells to integer strengths. Only non-zero cells are
// stored, and an affine transform relates lattice cells to continuous space.
// Three variants are supported:
//
//   - 2D heatmaps (sparse.Heatmap2) with a 2x3 transform
//   - 3D heatmaps (sparse.Heatmap3) with a 4x4 transform
//   - projected heatmaps (sparse.Heatmap3to2) that collect 3D cells onto two
//     axes selected by a swizzle, summing along the folded axis
//
// # Basic Usage
//
// Building and encoding a 2D heatmap:
//
//	import "github.com/arloliu/heatmap"
//
//	h := sparse.New2(0, sparse.Identity2x3())
//	h.Add(lattice.C2(-3, -3), 7)
//	h.Add(lattice.C2(3, 3), 4)
//
//	var buf bytes.Buffer
//	if err := heatmap.Encode2(ctx, &buf, h); err != nil {
//	    return err
//	}
//	// {"Matrix":[1,0,0,1,0,0],"Bounds":[-3,-3,7,7],"Strengths":[7,-47,4]}
//
// Decoding it back:
//
//	h, err := heatmap.Decode2(ctx, &buf)
//
// Saving with a binary header, compression and a checksum:
//
//	err := heatmap.Save(ctx, f, h, heatmap.WithCompression(format.CompressionZstd))
//	...
//	h, err := heatmap.Load2(ctx, f)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec,
// sparse, lattice and section packages. For fine-grained control, use those
// packages directly.
package heatmap

import (
	"context"
	"io"

	"github.com/arloliu/heatmap/codec"
	"github.com/arloliu/heatmap/sparse"
)

// Heatmap is the set of container types the facade can encode and save.
type Heatmap interface {
	*sparse.Heatmap2 | *sparse.Heatmap3 | *sparse.Heatmap3to2
}

// Encode2 writes h to w as a run-length JSON document.
//
// Returns errs.ErrNilHeatmap, errs.ErrNegativeStrength, errs.ErrNonFiniteMatrix
// or errs.ErrBoundsTooLarge for heatmaps that cannot be represented, and any
// error from w or ctx.
func Encode2(ctx context.Context, w io.Writer, h *sparse.Heatmap2) error {
	return codec.NewCodec2().Encode(ctx, w, h)
}

// Decode2 reads a 2D heatmap document from r. Malformed input yields an error
// wrapping errs.ErrInvalidFormat.
func Decode2(ctx context.Context, r io.Reader) (*sparse.Heatmap2, error) {
	return codec.NewCodec2().Decode(ctx, r)
}

// Encode3 writes h to w as a run-length JSON document.
func Encode3(ctx context.Context, w io.Writer, h *sparse.Heatmap3) error {
	return codec.NewCodec3().Encode(ctx, w, h)
}

// Decode3 reads a 3D heatmap document from r.
func Decode3(ctx context.Context, r io.Reader) (*sparse.Heatmap3, error) {
	return codec.NewCodec3().Decode(ctx, r)
}

// Encode3to2 writes h to w as a run-length JSON document including its swizzle.
func Encode3to2(ctx context.Context, w io.Writer, h *sparse.Heatmap3to2) error {
	return codec.NewCodec3to2().Encode(ctx, w, h)
}

// Decode3to2 reads a projected heatmap document from r.
func Decode3to2(ctx context.Context, r io.Reader) (*sparse.Heatmap3to2, error) {
	return codec.NewCodec3to2().Decode(ctx, r)
}
