// Package endian provides the byte order engines used by the saved heatmap
// header.
//
// The header records its byte order in a flag bit, so writers pick an engine
// once and readers resolve it from the flag:
//
//	engine := endian.ForFlag(hdr.IsBigEndian())
//	n := engine.Uint64(data[8:16])
//
// All functions are safe for concurrent use. The returned engines are the
// immutable binary.LittleEndian and binary.BigEndian values.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary into
// a single interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default for saved
// heatmaps.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForFlag returns the big-endian engine if bigEndian is set, otherwise the
// little-endian engine.
func ForFlag(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// Name returns "little" or "big" for the given engine.
func Name(engine EndianEngine) string {
	if engine == GetBigEndianEngine() {
		return "big"
	}

	return "little"
}
