// Package compress provides compression codecs for saved heatmap payloads.
//
// A saved heatmap is the compact JSON document produced by the codec package,
// optionally compressed before it is written after the envelope header. JSON
// run-length output is highly repetitive (field names, small integers, commas),
// so general purpose compressors shrink it well.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and may be shared
// across goroutines.
package compress
