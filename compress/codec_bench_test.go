package compress

import (
	"fmt"
	"testing"
)

func formatSize(size int) string {
	if size >= 1024*1024 {
		return fmt.Sprintf("%dMB", size/(1024*1024))
	}

	return fmt.Sprintf("%dKB", size/1024)
}

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for _, cells := range []int{1000, 10_000, 100_000} {
		payload := heatmapPayload(cells)
		for name, codec := range getAllCodecs() {
			b.Run(fmt.Sprintf("%s/%s", name, formatSize(len(payload))), func(b *testing.B) {
				b.SetBytes(int64(len(payload)))
				b.ReportAllocs()
				for b.Loop() {
					if _, err := codec.Compress(payload); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for _, cells := range []int{1000, 10_000, 100_000} {
		payload := heatmapPayload(cells)
		for name, codec := range getAllCodecs() {
			compressed, err := codec.Compress(payload)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/%s", name, formatSize(len(payload))), func(b *testing.B) {
				b.SetBytes(int64(len(payload)))
				b.ReportAllocs()
				for b.Loop() {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkAllCodecs_CompressionRatio(b *testing.B) {
	payload := heatmapPayload(50_000)
	for name, codec := range getAllCodecs() {
		b.Run(name, func(b *testing.B) {
			var size int
			for b.Loop() {
				compressed, err := codec.Compress(payload)
				if err != nil {
					b.Fatal(err)
				}
				size = len(compressed)
			}
			b.ReportMetric(float64(size)/float64(len(payload)), "ratio")
		})
	}
}

func BenchmarkZstdDecompress_Parallel(b *testing.B) {
	codec := NewZstdCompressor()
	payload := heatmapPayload(10_000)
	compressed, err := codec.Compress(payload)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(payload)))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := codec.Decompress(compressed); err != nil {
				b.Fatal(err)
			}
		}
	})
}
