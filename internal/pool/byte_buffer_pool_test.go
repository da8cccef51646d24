package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_Appends(t *testing.T) {
	bb := NewByteBuffer(16)

	_ = bb.WriteByte('[')
	bb.AppendInt(-14)
	_ = bb.WriteByte(',')
	bb.AppendFloat(0.1)
	_ = bb.WriteByte(',')
	bb.AppendFloat(31)
	_, _ = bb.WriteString("]")

	assert.Equal(t, "[-14,0.1,31]", string(bb.Bytes()))
}

func TestByteBuffer_AppendFloatFormat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{-1.25, "-1.25"},
		{100000000, "100000000"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-2.5e-10, "-2.5e-10"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			bb := NewByteBuffer(32)
			bb.AppendFloat(tt.v)
			assert.Equal(t, tt.want, string(bb.Bytes()))
		})
	}
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(TokenBufferDefaultSize)
	_, _ = bb.Write([]byte("some data"))
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("Sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(TokenBufferDefaultSize)
		bb.Grow(100)
		assert.Equal(t, TokenBufferDefaultSize, cap(bb.B))
	})

	t.Run("Small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(TokenBufferDefaultSize)
		bb.B = append(bb.B, make([]byte, TokenBufferDefaultSize)...)
		bb.Grow(1)
		assert.GreaterOrEqual(t, cap(bb.B), 2*TokenBufferDefaultSize)
		assert.Equal(t, TokenBufferDefaultSize, bb.Len())
	})

	t.Run("Large request", func(t *testing.T) {
		bb := NewByteBuffer(TokenBufferDefaultSize)
		bb.Grow(TokenBufferDefaultSize * 10)
		assert.GreaterOrEqual(t, cap(bb.B), TokenBufferDefaultSize*10)
	})

	t.Run("Preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		_, _ = bb.Write([]byte("keep"))
		bb.Grow(TokenBufferDefaultSize * 2)
		assert.Equal(t, []byte("keep"), bb.B)
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(TokenBufferDefaultSize)
	_, _ = bb.WriteString("test data")

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())

	_, err = bb.WriteTo(&errorWriter{err: io.ErrShortWrite})
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestByteBufferPool(t *testing.T) {
	t.Run("Pooled buffers are empty", func(t *testing.T) {
		bb := GetTokenBuffer()
		_, _ = bb.WriteString("dirty")
		PutTokenBuffer(bb)

		bb = GetTokenBuffer()
		assert.Equal(t, 0, bb.Len())
		PutTokenBuffer(bb)
	})

	t.Run("Nil put", func(t *testing.T) {
		assert.NotPanics(t, func() {
			PutTokenBuffer(nil)
			PutPayloadBuffer(nil)
		})
	})

	t.Run("Max threshold discards", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)
		bb := p.Get()
		bb.Grow(1024)
		p.Put(bb)

		got := p.Get()
		assert.LessOrEqual(t, cap(got.B), 16)
	})

	t.Run("Payload buffer default size", func(t *testing.T) {
		bb := GetPayloadBuffer()
		assert.GreaterOrEqual(t, cap(bb.B), PayloadBufferDefaultSize)
		PutPayloadBuffer(bb)
	})

	t.Run("Concurrent access", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					bb := GetTokenBuffer()
					bb.AppendInt(42)
					PutTokenBuffer(bb)
				}
			}()
		}
		wg.Wait()
	})
}

type errorWriter struct {
	err error
}

func (w *errorWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}
