// Package section defines the binary header written in front of a saved heatmap.
//
// A saved heatmap is a fixed 24-byte header followed by the run-length JSON
// document produced by the codec package, optionally compressed:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Options (2 bytes, always little-endian)                  │
//	│  - bit 0: checksum present                               │
//	│  - bit 1: 0 = little-endian, 1 = big-endian              │
//	│  - bits 2-3: reserved, must be 0                         │
//	│  - bits 4-15: magic number 0x4D5                         │
//	├──────────────────────────────────────────────────────────┤
//	│ Version (1 byte)                                         │
//	│ Kind (1 byte): 2D, 3D or 3to2                            │
//	│ Compression (1 byte): None, Zstd, S2 or LZ4              │
//	│ Reserved (3 bytes)                                       │
//	├──────────────────────────────────────────────────────────┤
//	│ PayloadSize (8 bytes): stored payload length             │
//	│ Checksum (8 bytes): xxHash64 of the uncompressed payload │
//	├──────────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                              │
//	└──────────────────────────────────────────────────────────┘
//
// PayloadSize and Checksum use the byte order selected by the endianness bit.
//
// # Usage
//
//	hdr := section.NewHeader(format.Kind2D)
//	hdr.Flag.Compression = format.CompressionZstd
//	hdr.PayloadSize = uint64(len(stored))
//	hdr.Checksum = hash.Checksum(payload)
//	w.Write(hdr.Bytes())
//
//	parsed, err := section.ParseHeader(data)
//	if err != nil {
//	    return err // errs.ErrInvalidMagicNumber, errs.ErrUnsupportedVersion, ...
//	}
package section
