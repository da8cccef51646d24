package heatmap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/heatmap/codec"
	"github.com/arloliu/heatmap/compress"
	"github.com/arloliu/heatmap/errs"
	"github.com/arloliu/heatmap/format"
	"github.com/arloliu/heatmap/internal/hash"
	"github.com/arloliu/heatmap/internal/options"
	"github.com/arloliu/heatmap/internal/pool"
	"github.com/arloliu/heatmap/section"
	"github.com/arloliu/heatmap/sparse"
)

// SaveConfig holds the settings applied by SaveOption values.
type SaveConfig struct {
	compression format.CompressionType
	bigEndian   bool
	checksum    bool
}

func defaultSaveConfig() *SaveConfig {
	return &SaveConfig{
		compression: format.CompressionNone,
		checksum:    true,
	}
}

// SaveOption represents a functional option for configuring Save.
type SaveOption = options.Option[*SaveConfig]

// WithCompression sets the payload compression. The default is
// format.CompressionNone.
func WithCompression(comp format.CompressionType) SaveOption {
	return options.New(func(c *SaveConfig) error {
		if !comp.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, comp)
		}
		c.compression = comp

		return nil
	})
}

// WithLittleEndian writes the numeric header fields little-endian.
// It is the default option.
func WithLittleEndian() SaveOption {
	return options.NoError(func(c *SaveConfig) {
		c.bigEndian = false
	})
}

// WithBigEndian writes the numeric header fields big-endian.
func WithBigEndian() SaveOption {
	return options.NoError(func(c *SaveConfig) {
		c.bigEndian = true
	})
}

// WithChecksum enables or disables the xxHash64 payload checksum. It is
// enabled by default.
func WithChecksum(enabled bool) SaveOption {
	return options.NoError(func(c *SaveConfig) {
		c.checksum = enabled
	})
}

// Save writes h to w as a section.Header followed by the run-length JSON
// document, compressed as configured.
//
// Parameters:
//   - ctx: cancels the encoding
//   - w: destination
//   - h: heatmap to save
//   - opts: WithCompression, WithBigEndian, WithLittleEndian, WithChecksum
//
// Returns the encoding errors of the codec package, errs.ErrInvalidCompression
// for an unknown compression type, and any error from w.
func Save[H Heatmap](ctx context.Context, w io.Writer, h H, opts ...SaveOption) error {
	cfg := defaultSaveConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	payload := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(payload)

	var kind format.Kind
	var err error
	switch v := any(h).(type) {
	case *sparse.Heatmap2:
		kind, err = format.Kind2D, codec.NewCodec2().Encode(ctx, payload, v)
	case *sparse.Heatmap3:
		kind, err = format.Kind3D, codec.NewCodec3().Encode(ctx, payload, v)
	case *sparse.Heatmap3to2:
		kind, err = format.Kind3to2, codec.NewCodec3to2().Encode(ctx, payload, v)
	}
	if err != nil {
		return err
	}

	return writeEnvelope(w, kind, payload.Bytes(), cfg)
}

func writeEnvelope(w io.Writer, kind format.Kind, payload []byte, cfg *SaveConfig) error {
	comp, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}
	stored, err := comp.Compress(payload)
	if err != nil {
		return fmt.Errorf("failed to compress payload: %w", err)
	}

	hdr := section.NewHeader(kind)
	hdr.Flag.Compression = cfg.compression
	if cfg.bigEndian {
		hdr.Flag.WithBigEndian()
	}
	hdr.Flag.SetChecksum(cfg.checksum)
	if cfg.checksum {
		hdr.Checksum = hash.Checksum(payload)
	}
	hdr.PayloadSize = uint64(len(stored))

	if _, err := w.Write(hdr.Bytes()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	return nil
}

// Peek reads and validates the header of a saved heatmap, consuming exactly
// section.HeaderSize bytes from r.
func Peek(r io.Reader) (section.Header, error) {
	buf := make([]byte, section.HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return section.Header{}, fmt.Errorf("%w: %w", errs.ErrInvalidHeaderSize, err)
		}

		return section.Header{}, fmt.Errorf("failed to read header: %w", err)
	}

	return section.ParseHeader(buf)
}

// Saved is a heatmap of any kind read by Load. Exactly one of the heatmap
// fields is set, matching Header.Flag.Kind.
type Saved struct {
	Header      section.Header
	Heatmap2    *sparse.Heatmap2
	Heatmap3    *sparse.Heatmap3
	Heatmap3to2 *sparse.Heatmap3to2
}

// Len returns the number of stored cells of the loaded heatmap.
func (s *Saved) Len() int {
	switch {
	case s.Heatmap2 != nil:
		return s.Heatmap2.Len()
	case s.Heatmap3 != nil:
		return s.Heatmap3.Len()
	case s.Heatmap3to2 != nil:
		return s.Heatmap3to2.Len()
	default:
		return 0
	}
}

// Save writes the loaded heatmap to w with new options.
func (s *Saved) Save(ctx context.Context, w io.Writer, opts ...SaveOption) error {
	switch {
	case s.Heatmap2 != nil:
		return Save(ctx, w, s.Heatmap2, opts...)
	case s.Heatmap3 != nil:
		return Save(ctx, w, s.Heatmap3, opts...)
	case s.Heatmap3to2 != nil:
		return Save(ctx, w, s.Heatmap3to2, opts...)
	default:
		return errs.ErrNilHeatmap
	}
}

// Load reads a saved heatmap of any kind.
func Load(ctx context.Context, r io.Reader) (*Saved, error) {
	hdr, payload, err := readEnvelope(r, 0)
	if err != nil {
		return nil, err
	}

	s := &Saved{Header: hdr}
	src := bytes.NewReader(payload)
	switch hdr.Flag.Kind {
	case format.Kind2D:
		s.Heatmap2, err = codec.NewCodec2().Decode(ctx, src)
	case format.Kind3D:
		s.Heatmap3, err = codec.NewCodec3().Decode(ctx, src)
	case format.Kind3to2:
		s.Heatmap3to2, err = codec.NewCodec3to2().Decode(ctx, src)
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Load2 reads a saved 2D heatmap. It returns errs.ErrKindMismatch if the
// header records another kind.
func Load2(ctx context.Context, r io.Reader) (*sparse.Heatmap2, error) {
	_, payload, err := readEnvelope(r, format.Kind2D)
	if err != nil {
		return nil, err
	}

	return codec.NewCodec2().Decode(ctx, bytes.NewReader(payload))
}

// Load3 reads a saved 3D heatmap.
func Load3(ctx context.Context, r io.Reader) (*sparse.Heatmap3, error) {
	_, payload, err := readEnvelope(r, format.Kind3D)
	if err != nil {
		return nil, err
	}

	return codec.NewCodec3().Decode(ctx, bytes.NewReader(payload))
}

// Load3to2 reads a saved projected heatmap.
func Load3to2(ctx context.Context, r io.Reader) (*sparse.Heatmap3to2, error) {
	_, payload, err := readEnvelope(r, format.Kind3to2)
	if err != nil {
		return nil, err
	}

	return codec.NewCodec3to2().Decode(ctx, bytes.NewReader(payload))
}

// readEnvelope reads the header and the decompressed, verified payload. A zero
// want accepts any kind.
func readEnvelope(r io.Reader, want format.Kind) (section.Header, []byte, error) {
	hdr, err := Peek(r)
	if err != nil {
		return section.Header{}, nil, err
	}
	if want != 0 && hdr.Flag.Kind != want {
		return section.Header{}, nil, fmt.Errorf("%w: stored %s, requested %s", errs.ErrKindMismatch, hdr.Flag.Kind, want)
	}

	// LimitReader keeps a corrupted size from forcing a huge allocation upfront.
	stored, err := io.ReadAll(io.LimitReader(r, int64(min(hdr.PayloadSize, uint64(1)<<62))))
	if err != nil {
		return section.Header{}, nil, fmt.Errorf("failed to read payload: %w", err)
	}
	if uint64(len(stored)) != hdr.PayloadSize {
		return section.Header{}, nil, fmt.Errorf("%w: got %d of %d bytes", errs.ErrPayloadTruncated, len(stored), hdr.PayloadSize)
	}

	comp, err := compress.GetCodec(hdr.Flag.Compression)
	if err != nil {
		return section.Header{}, nil, err
	}
	payload, err := comp.Decompress(stored)
	if err != nil {
		return section.Header{}, nil, fmt.Errorf("%w: %w", errs.ErrInvalidFormat, err)
	}

	if hdr.Flag.HasChecksum() {
		if sum := hash.Checksum(payload); sum != hdr.Checksum {
			return section.Header{}, nil, fmt.Errorf("%w: stored %016x, computed %016x", errs.ErrChecksumMismatch, hdr.Checksum, sum)
		}
	}

	return hdr, payload, nil
}
