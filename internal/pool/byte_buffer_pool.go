package pool

import (
	"io"
	"math"
	"strconv"
	"sync"
)

// Default sizes of the pooled buffers.
const (
	TokenBufferDefaultSize     = 1024 * 4        // 4KiB
	TokenBufferMaxThreshold    = 1024 * 64       // 64KiB
	PayloadBufferDefaultSize   = 1024 * 64       // 64KiB
	PayloadBufferMaxThreshold  = 1024 * 1024 * 4 // 4MiB
	smallBufferGrowthThreshold = 4
)

// ByteBuffer is an append-only byte buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by TokenBufferDefaultSize, larger ones by 25% of their
// current capacity, and never by less than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := TokenBufferDefaultSize
	if cap(bb.B) > smallBufferGrowthThreshold*TokenBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte appends a single byte.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteString appends s.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.B = append(bb.B, s...)
	return len(s), nil
}

// AppendInt appends the decimal form of v.
func (bb *ByteBuffer) AppendInt(v int64) {
	bb.B = strconv.AppendInt(bb.B, v, 10)
}

// AppendFloat appends the shortest representation of v that round-trips,
// formatted the way encoding/json formats float64 values.
func (bb *ByteBuffer) AppendFloat(v float64) {
	format := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	bb.B = strconv.AppendFloat(bb.B, v, format, -1, 64)

	if format == 'e' {
		// e-09 becomes e-9
		n := len(bb.B)
		if n >= 4 && bb.B[n-4] == 'e' && bb.B[n-3] == '-' && bb.B[n-2] == '0' {
			bb.B[n-2] = bb.B[n-1]
			bb.B = bb.B[:n-1]
		}
	}
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers grown beyond maxThreshold are dropped instead of being returned to
// the pool, so a single huge heatmap does not pin its memory forever.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	tokenDefaultPool   = NewByteBufferPool(TokenBufferDefaultSize, TokenBufferMaxThreshold)
	payloadDefaultPool = NewByteBufferPool(PayloadBufferDefaultSize, PayloadBufferMaxThreshold)
)

// GetTokenBuffer retrieves a buffer used to stage encoded tokens before they
// are flushed to the output stream.
func GetTokenBuffer() *ByteBuffer {
	return tokenDefaultPool.Get()
}

// PutTokenBuffer returns a token buffer to the pool.
func PutTokenBuffer(bb *ByteBuffer) {
	tokenDefaultPool.Put(bb)
}

// GetPayloadBuffer retrieves a buffer holding a whole encoded heatmap payload.
func GetPayloadBuffer() *ByteBuffer {
	return payloadDefaultPool.Get()
}

// PutPayloadBuffer returns a payload buffer to the pool.
func PutPayloadBuffer(bb *ByteBuffer) {
	payloadDefaultPool.Put(bb)
}
