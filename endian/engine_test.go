package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForFlag(t *testing.T) {
	require.Equal(t, binary.LittleEndian, ForFlag(false))
	require.Equal(t, binary.BigEndian, ForFlag(true))
	require.Equal(t, "little", Name(ForFlag(false)))
	require.Equal(t, "big", Name(ForFlag(true)))
}

func TestEndianEngines(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{"little", GetLittleEndianEngine(), []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
		{"big", GetBigEndianEngine(), []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const v = uint64(0x0102030405060708)

			buf := make([]byte, 8)
			tt.engine.PutUint64(buf, v)
			require.Equal(t, tt.want, buf)
			require.Equal(t, v, tt.engine.Uint64(buf))

			appended := tt.engine.AppendUint64([]byte{0xAA}, v)
			require.Equal(t, append([]byte{0xAA}, tt.want...), appended)
		})
	}
}
