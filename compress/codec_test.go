package compress

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/heatmap/errs"
	"github.com/arloliu/heatmap/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// heatmapPayload builds a run-length document shaped like real codec output.
func heatmapPayload(cells int) []byte {
	var sb strings.Builder
	sb.WriteString(`{"Matrix":[1,0,0,1,0,0],"Bounds":[-40,-40,81,81],"Strengths":[`)
	for i := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		if i%3 == 0 {
			fmt.Fprintf(&sb, "-%d,", i%17+1)
		}
		fmt.Fprintf(&sb, "%d", i%250+1)
	}
	sb.WriteString("]}")

	return []byte(sb.String())
}

func TestGetCodec(t *testing.T) {
	tests := []struct {
		ct   format.CompressionType
		want Codec
	}{
		{format.CompressionNone, NewNoOpCompressor()},
		{format.CompressionZstd, NewZstdCompressor()},
		{format.CompressionS2, NewS2Compressor()},
		{format.CompressionLZ4, NewLZ4Compressor()},
	}

	for _, tt := range tests {
		t.Run(tt.ct.String(), func(t *testing.T) {
			codec, err := GetCodec(tt.ct)
			require.NoError(t, err)
			require.IsType(t, tt.want, codec)
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := GetCodec(format.CompressionType(0x7))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}

func TestCompressionStats(t *testing.T) {
	t.Run("Ratio and savings", func(t *testing.T) {
		s := CompressionStats{OriginalSize: 1000, CompressedSize: 250}
		require.InDelta(t, 0.25, s.CompressionRatio(), 1e-9)
		require.InDelta(t, 75.0, s.SpaceSavings(), 1e-9)
	})

	t.Run("Zero original size", func(t *testing.T) {
		s := CompressionStats{}
		require.Zero(t, s.CompressionRatio())
	})

	t.Run("Measure", func(t *testing.T) {
		payload := heatmapPayload(2000)
		s, err := Measure(format.CompressionZstd, payload)
		require.NoError(t, err)
		require.Equal(t, format.CompressionZstd, s.Algorithm)
		require.Equal(t, int64(len(payload)), s.OriginalSize)
		require.Less(t, s.CompressedSize, s.OriginalSize)

		_, err = Measure(format.CompressionType(0), payload)
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	data := []byte("payload")
	c := NewNoOpCompressor()

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &data[0], &decompressed[0])
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed)

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)
			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"single_byte", []byte{0x42}},
		{"empty_heatmap", []byte(`{"Matrix":[1,0,0,1,0,0],"Bounds":[0,0,0,0],"Strengths":[]}`)},
		{"small_heatmap", heatmapPayload(10)},
		{"medium_heatmap", heatmapPayload(5000)},
		{"large_heatmap", heatmapPayload(200_000)},
		{"binary_data", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC}},
		{"highly_compressible", make([]byte, 1024*1024)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotEmpty(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.True(t, bytes.Equal(tc.data, decompressed))
				})
			}
		})
	}
}

func TestAllCodecs_CompressHeatmapPayload(t *testing.T) {
	payload := heatmapPayload(20_000)

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}

		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload)/2)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{"random_bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"text_as_compressed", []byte("this is not compressed data")},
	}

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}

		t.Run(codecName, func(t *testing.T) {
			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	payload := heatmapPayload(1000)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			done := make(chan error, numGoroutines*2)
			for range numGoroutines {
				go func() {
					_, err := codec.Compress(payload)
					done <- err
				}()
				go func() {
					decompressed, err := codec.Decompress(compressed)
					if err != nil {
						done <- err
						return
					}
					if !bytes.Equal(payload, decompressed) {
						done <- fmt.Errorf("decompressed data mismatch")
						return
					}
					done <- nil
				}()
			}

			for range numGoroutines * 2 {
				require.NoError(t, <-done)
			}
		})
	}
}
