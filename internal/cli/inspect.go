package cli

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/spf13/cobra"

	"github.com/arloliu/heatmap"
	"github.com/arloliu/heatmap/endian"
	"github.com/arloliu/heatmap/format"
)

// newInspectCmd creates the inspect command, which prints the header and
// summary statistics of a heatmap file.
func newInspectCmd() *cobra.Command {
	var raw string

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the header and statistics of a heatmap file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := source{path: args[0], in: cmd.InOrStdin(), raw: raw}
			return runInspect(cmd.Context(), cmd.OutOrStdout(), src)
		},
	}

	cmd.Flags().StringVar(&raw, "raw", "", "read a raw JSON document of the given kind: 2d, 3d, 3to2")

	return cmd
}

func runInspect(ctx context.Context, w io.Writer, src source) error {
	logger := loggerFromContext(ctx)

	s, err := readHeatmap(ctx, src)
	if err != nil {
		return err
	}
	logger.Debug("Loaded heatmap", "path", src.path, "kind", s.Header.Flag.Kind, "cells", s.Len())

	hdr := s.Header
	printTitle(w, src.path)
	printKeyValue(w, "kind", hdr.Flag.Kind.String())
	if src.raw != "" {
		printKeyValue(w, "format", "raw json")
	} else {
		printKeyValue(w, "format", fmt.Sprintf("saved v%d", hdr.Version))
		printKeyValue(w, "compression", hdr.Flag.Compression.String())
		printKeyValue(w, "endian", endian.Name(hdr.Flag.GetEndianEngine()))
		printKeyNumber(w, "payload", int64(hdr.PayloadSize)) //nolint:gosec
		if hdr.Flag.HasChecksum() {
			printKeyValue(w, "checksum", fmt.Sprintf("%016x", hdr.Checksum))
		} else {
			printKeyValue(w, "checksum", "off")
		}
	}

	st := summarize(s)
	printKeyNumber(w, "cells", int64(st.cells))
	printKeyValue(w, "bounds", st.bounds)
	if hdr.Flag.Kind == format.Kind3to2 {
		printKeyValue(w, "swizzle", s.Heatmap3to2.Swizzle().String())
	}
	printKeyValue(w, "transform", st.transform)
	if st.cells > 0 {
		printKeyNumber(w, "total", st.total)
		printKeyNumber(w, "min", st.min)
		printKeyNumber(w, "max", st.max)
	}

	return nil
}

// summary holds the statistics printed by inspect.
type summary struct {
	cells     int
	bounds    string
	transform string
	total     int64
	min       int64
	max       int64
}

func summarize(s *heatmap.Saved) summary {
	var st summary
	switch {
	case s.Heatmap2 != nil:
		st = strengthSummary(s.Heatmap2.All())
		st.bounds = s.Heatmap2.Bounds().String()
		st.transform = fmt.Sprint(s.Heatmap2.Transform())
	case s.Heatmap3 != nil:
		st = strengthSummary(s.Heatmap3.All())
		st.bounds = s.Heatmap3.Bounds().String()
		st.transform = fmt.Sprint(s.Heatmap3.Transform())
	case s.Heatmap3to2 != nil:
		st = strengthSummary(s.Heatmap3to2.All())
		st.bounds = s.Heatmap3to2.Bounds().String()
		st.transform = fmt.Sprint(s.Heatmap3to2.Transform())
	}

	return st
}

func strengthSummary[C comparable](all iter.Seq2[C, int64]) summary {
	var st summary
	for _, v := range all {
		if st.cells == 0 {
			st.min, st.max = v, v
		}
		st.cells++
		st.total += v
		st.min = min(st.min, v)
		st.max = max(st.max, v)
	}

	return st
}
