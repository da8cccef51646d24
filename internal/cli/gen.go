package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/arloliu/heatmap"
	"github.com/arloliu/heatmap/format"
	"github.com/arloliu/heatmap/lattice"
	"github.com/arloliu/heatmap/section"
	"github.com/arloliu/heatmap/sparse"
)

const (
	defaultCells  = 64 // number of random hits
	defaultExtent = 16 // edge length of the sampled cube
	defaultSeed   = 42 // seed for reproducible output
	maxStrength   = 9  // hits add a strength in [1, maxStrength]
)

// genOpts holds the command-line flags for the gen command.
type genOpts struct {
	kind    string // heatmap kind: 2d, 3d or 3to2
	swizzle string // projection of 3to2 heatmaps: xy, xz or yz
	cells   int    // number of random hits
	extent  int    // hits are sampled from [-extent/2, extent/2) on every axis
	seed    int64  // random seed
	output  string // output path, "-" for stdout
	json    bool   // write a raw JSON document
	save    saveFlags
}

// newGenCmd creates the gen command, which fills a heatmap with random hits
// centered on the origin and writes it out.
func newGenCmd() *cobra.Command {
	opts := genOpts{
		kind:    "2d",
		swizzle: "xy",
		cells:   defaultCells,
		extent:  defaultExtent,
		seed:    defaultSeed,
	}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random heatmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				return errors.New("missing --output")
			}

			return runGen(cmd.Context(), cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", opts.kind, "heatmap kind: 2d, 3d, 3to2")
	cmd.Flags().StringVar(&opts.swizzle, "swizzle", opts.swizzle, "projection of 3to2 heatmaps: xy, xz, yz")
	cmd.Flags().IntVarP(&opts.cells, "cells", "n", opts.cells, "number of random hits")
	cmd.Flags().IntVar(&opts.extent, "extent", opts.extent, "edge length of the sampled region")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write a raw JSON document instead of a saved file")
	addSaveFlags(cmd, &opts.save)

	return cmd
}

func addSaveFlags(cmd *cobra.Command, f *saveFlags) {
	cmd.Flags().StringVarP(&f.compression, "compression", "c", "", "payload compression: none, zstd, s2, lz4")
	cmd.Flags().BoolVar(&f.bigEndian, "big-endian", false, "write big-endian header fields")
	cmd.Flags().BoolVar(&f.noChecksum, "no-checksum", false, "omit the payload checksum")
}

func runGen(ctx context.Context, cmd *cobra.Command, opts *genOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	kind, err := format.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	swizzle, err := lattice.ParseSwizzle(opts.swizzle)
	if err != nil {
		return err
	}

	s, err := generate(kind, swizzle, opts.cells, opts.extent, opts.seed)
	if err != nil {
		return err
	}
	logger.Debug("Generated heatmap", "kind", kind, "hits", opts.cells, "cells", s.Len(), "seed", opts.seed)

	saveOpts, err := configFromContext(ctx).saveOptions(opts.save)
	if err != nil {
		return err
	}

	dst := sink{path: opts.output, out: cmd.OutOrStdout(), json: opts.json, opts: saveOpts}
	if err := writeHeatmap(ctx, dst, s); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Generated %s heatmap with %d cells", kind, s.Len()))
	if opts.output != stdioPath {
		printSuccess(cmd.OutOrStdout(), "Generated %s heatmap", kind)
		printFile(cmd.OutOrStdout(), opts.output)
	}

	return nil
}

// generate builds a heatmap from n random hits. The same seed always yields
// the same heatmap.
func generate(kind format.Kind, swizzle lattice.Swizzle, n, extent int, seed int64) (*heatmap.Saved, error) {
	if n < 0 {
		return nil, fmt.Errorf("cells must not be negative, got %d", n)
	}
	if extent <= 0 {
		return nil, fmt.Errorf("extent must be positive, got %d", extent)
	}

	rng := rand.New(rand.NewSource(seed)) //nolint: gosec
	coord := func() int32 {
		return int32(rng.Intn(extent) - extent/2)
	}
	strength := func() int64 {
		return rng.Int63n(maxStrength) + 1
	}

	// Lattice cells are mapped onto the unit square or cube.
	scale := 1 / float64(extent)
	s := &heatmap.Saved{Header: *section.NewHeader(kind)}

	switch kind {
	case format.Kind2D:
		h := sparse.New2(n, sparse.Scale2x3(scale, scale, 0.5, 0.5))
		for range n {
			h.Add(lattice.C2(coord(), coord()), strength())
		}
		s.Heatmap2 = h
	case format.Kind3D, format.Kind3to2:
		m := sparse.Identity4x4()
		m[0], m[5], m[10] = scale, scale, scale
		m[12], m[13], m[14] = 0.5, 0.5, 0.5
		h := sparse.New3(n, m)
		for range n {
			h.Add(lattice.C3(coord(), coord(), coord()), strength())
		}
		if kind == format.Kind3D {
			s.Heatmap3 = h
		} else {
			s.Heatmap3to2 = h.Project(swizzle)
		}
	default:
		return nil, fmt.Errorf("unsupported kind %s", kind)
	}

	return s, nil
}
