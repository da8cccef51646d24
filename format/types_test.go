package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/heatmap/errs"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
	}{
		{"2d", Kind2D},
		{"3D", Kind3D},
		{"3to2", Kind3to2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseKind(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.kind, k)
			require.True(t, k.IsValid())
		})
	}

	_, err := ParseKind("4d")
	require.ErrorIs(t, err, errs.ErrInvalidKind)
	require.False(t, Kind(0).IsValid())
	require.Equal(t, "Unknown", Kind(9).String())
	require.Equal(t, "3to2", Kind3to2.String())
}

func TestCompressionType(t *testing.T) {
	tests := []struct {
		name string
		want CompressionType
	}{
		{"none", CompressionNone},
		{"", CompressionNone},
		{"ZSTD", CompressionZstd},
		{"s2", CompressionS2},
		{"lz4", CompressionLZ4},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			c, err := ParseCompressionType(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, c)
			require.True(t, c.IsValid())
		})
	}

	_, err := ParseCompressionType("gzip")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
	require.False(t, CompressionType(0).IsValid())
	require.False(t, CompressionType(5).IsValid())
}
