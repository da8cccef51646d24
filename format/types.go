// Package format defines the small enums stored in a saved heatmap header.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/heatmap/errs"
)

type (
	Kind            uint8
	CompressionType uint8
)

const (
	Kind2D   Kind = 0x1 // Kind2D represents a 2D heatmap with a 2x3 transform.
	Kind3D   Kind = 0x2 // Kind3D represents a 3D heatmap with a 4x4 transform.
	Kind3to2 Kind = 0x3 // Kind3to2 represents a 3D heatmap projected onto two axes.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case Kind2D:
		return "2D"
	case Kind3D:
		return "3D"
	case Kind3to2:
		return "3to2"
	default:
		return "Unknown"
	}
}

// IsValid reports whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	return k >= Kind2D && k <= Kind3to2
}

// ParseKind parses a case-insensitive kind name: "2d", "3d" or "3to2".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "2d":
		return Kind2D, nil
	case "3d":
		return Kind3D, nil
	case "3to2":
		return Kind3to2, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidKind, name)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompressionType parses a case-insensitive compression name: "none",
// "zstd", "s2" or "lz4".
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}
