package section

import (
	"fmt"

	"github.com/arloliu/heatmap/errs"
	"github.com/arloliu/heatmap/format"
)

// Header is the fixed-size header in front of a saved heatmap payload.
type Header struct {
	// Flag is a packed field for options, magic number, kind and compression.
	Flag Flag // byte offset 0-1 (options), 3 (kind), 4 (compression)
	// Version is the envelope version.
	Version uint8 // byte offset 2
	// PayloadSize is the number of stored, possibly compressed, payload bytes
	// that follow the header.
	PayloadSize uint64 // byte offset 8-15
	// Checksum is the xxHash64 of the uncompressed payload, or zero when the
	// checksum flag is not set.
	Checksum uint64 // byte offset 16-23
}

// NewHeader creates a version 1 Header for the given kind.
// The payload size and checksum are set once the payload is known.
func NewHeader(kind format.Kind) *Header {
	return &Header{
		Flag:    NewFlag(kind),
		Version: VersionV1,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not HeaderSize bytes, version or
//     flag validation errors otherwise
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// The options field is always little-endian since it holds the endianness bit.
	h.Flag.Options = uint16(data[optionsOffset]) | (uint16(data[optionsOffset+1]) << 8)
	h.Version = data[versionOffset]
	h.Flag.Kind = format.Kind(data[kindOffset])
	h.Flag.Compression = format.CompressionType(data[compressionOffset])

	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if h.Version != VersionV1 {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	engine := h.Flag.GetEndianEngine()
	h.PayloadSize = engine.Uint64(data[payloadSizeOffset : payloadSizeOffset+8])
	h.Checksum = engine.Uint64(data[checksumOffset : checksumOffset+8])

	return nil
}

// Bytes serializes the Header into a new HeaderSize byte slice. Reserved bytes
// are written as zero.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[optionsOffset] = byte(h.Flag.Options)
	b[optionsOffset+1] = byte(h.Flag.Options >> 8)
	b[versionOffset] = h.Version
	b[kindOffset] = uint8(h.Flag.Kind)
	b[compressionOffset] = uint8(h.Flag.Compression)
	engine.PutUint64(b[payloadSizeOffset:payloadSizeOffset+8], h.PayloadSize)
	engine.PutUint64(b[checksumOffset:checksumOffset+8], h.Checksum)

	return b
}

// ParseHeader parses a Header from the first HeaderSize bytes of data.
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
