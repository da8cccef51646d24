package section

import (
	"fmt"

	"github.com/arloliu/heatmap/endian"
	"github.com/arloliu/heatmap/errs"
	"github.com/arloliu/heatmap/format"
)

// Flag represents the packed option bits and enums at the start of the header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the checksum flag, 1 means the header carries a payload checksum.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number, 0x4D50 for saved heatmaps.
	Options uint16

	// Kind is the heatmap variant stored in the payload.
	Kind format.Kind
	// Compression is the algorithm applied to the payload.
	Compression format.CompressionType
}

// NewFlag creates a little-endian Flag with checksum enabled and no compression.
func NewFlag(kind format.Kind) Flag {
	flag := Flag{
		Options:     MagicHeatmapOpt,
		Kind:        kind,
		Compression: format.CompressionNone,
	}
	flag.SetChecksum(true)
	flag.WithLittleEndian()

	return flag
}

// HasChecksum returns whether the header carries a payload checksum.
func (f Flag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the payload checksum.
func (f *Flag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsLittleEndian returns whether the numeric header fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the numeric header fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	return endian.ForFlag(f.IsBigEndian())
}

// IsValidMagicNumber reports whether the magic bits identify a saved heatmap.
func (f Flag) IsValidMagicNumber() bool {
	return (f.Options & MagicNumberMask) == MagicHeatmapOpt
}

// Validate checks the magic number, the reserved bits and both enums.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.Options&MagicNumberMask)
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set in 0x%04X", errs.ErrInvalidMagicNumber, f.Options)
	}
	if !f.Kind.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidKind, f.Kind)
	}
	if !f.Compression.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, f.Compression)
	}

	return nil
}
