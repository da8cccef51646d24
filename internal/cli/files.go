package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/heatmap"
	"github.com/arloliu/heatmap/format"
	"github.com/arloliu/heatmap/section"
)

// stdioPath selects stdin or stdout instead of a file.
const stdioPath = "-"

// source describes how an input file is read.
type source struct {
	path string
	in   io.Reader // used when path is stdioPath
	raw  string    // kind of a raw JSON document, empty for saved files
}

// readHeatmap loads a heatmap from src. Saved files carry their own header; raw
// JSON documents get a synthesized uncompressed header of the requested kind.
func readHeatmap(ctx context.Context, src source) (*heatmap.Saved, error) {
	r, closeFn, err := openInput(src)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	if src.raw == "" {
		s, err := heatmap.Load(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", src.path, err)
		}

		return s, nil
	}

	kind, err := format.ParseKind(src.raw)
	if err != nil {
		return nil, err
	}

	s := &heatmap.Saved{Header: *section.NewHeader(kind)}
	switch kind {
	case format.Kind2D:
		s.Heatmap2, err = heatmap.Decode2(ctx, r)
	case format.Kind3D:
		s.Heatmap3, err = heatmap.Decode3(ctx, r)
	case format.Kind3to2:
		s.Heatmap3to2, err = heatmap.Decode3to2(ctx, r)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", src.path, err)
	}

	return s, nil
}

func openInput(src source) (io.Reader, func(), error) {
	if src.path == stdioPath {
		return bufio.NewReader(src.in), func() {}, nil
	}

	f, err := os.Open(src.path)
	if err != nil {
		return nil, nil, err
	}

	return bufio.NewReader(f), func() { _ = f.Close() }, nil
}

// sink describes how an output file is written.
type sink struct {
	path string
	out  io.Writer // used when path is stdioPath
	json bool      // write a raw JSON document instead of a saved file
	opts []heatmap.SaveOption
}

// writeHeatmap writes s to dst. The file is only kept when writing succeeds.
func writeHeatmap(ctx context.Context, dst sink, s *heatmap.Saved) (err error) {
	if dst.path == stdioPath {
		return encodeHeatmap(ctx, dst.out, s, dst)
	}

	f, err := os.Create(dst.path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dst.path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := encodeHeatmap(ctx, w, s, dst); err != nil {
		return err
	}

	return w.Flush()
}

func encodeHeatmap(ctx context.Context, w io.Writer, s *heatmap.Saved, dst sink) error {
	if !dst.json {
		return s.Save(ctx, w, dst.opts...)
	}

	switch {
	case s.Heatmap2 != nil:
		return heatmap.Encode2(ctx, w, s.Heatmap2)
	case s.Heatmap3 != nil:
		return heatmap.Encode3(ctx, w, s.Heatmap3)
	case s.Heatmap3to2 != nil:
		return heatmap.Encode3to2(ctx, w, s.Heatmap3to2)
	default:
		return errors.New("nothing to write")
	}
}
