package jsontoken

import (
	"io"

	"github.com/arloliu/heatmap/internal/pool"
)

// flushThreshold is the staged byte count above which the Writer flushes to
// the destination stream.
const flushThreshold = pool.TokenBufferDefaultSize - 64

// Writer emits compact JSON tokens to an output stream.
//
// Write errors are sticky: after the first failure every call is a no-op and
// Flush returns the error. Field names are written verbatim and must not need
// escaping.
//
// Note: Writer is NOT thread-safe. Call Release when done to return the staging
// buffer to the pool.
type Writer struct {
	w     io.Writer
	buf   *pool.ByteBuffer
	first []bool // one entry per open container: true until the first element is written
	field bool   // a field name was just written; the next value needs no separator
	err   error
}

// NewWriter creates a Writer that flushes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		buf:   pool.GetTokenBuffer(),
		first: make([]bool, 0, 4),
	}
}

// BeginObject writes '{'.
func (w *Writer) BeginObject() {
	w.open('{')
}

// EndObject writes '}'.
func (w *Writer) EndObject() {
	w.close('}')
}

// BeginArray writes '['.
func (w *Writer) BeginArray() {
	w.open('[')
}

// EndArray writes ']'.
func (w *Writer) EndArray() {
	w.close(']')
}

// Field writes an object key followed by ':'.
func (w *Writer) Field(name string) {
	if w.err != nil {
		return
	}
	w.separator()
	_ = w.buf.WriteByte('"')
	_, _ = w.buf.WriteString(name)
	_, _ = w.buf.WriteString(`":`)
	w.field = true
}

// Int writes an integer value.
func (w *Writer) Int(v int64) {
	if w.err != nil {
		return
	}
	w.separator()
	w.buf.AppendInt(v)
	w.maybeFlush()
}

// Float writes a floating point value using the shortest representation that
// round-trips. The caller must reject NaN and Inf beforehand.
func (w *Writer) Float(v float64) {
	if w.err != nil {
		return
	}
	w.separator()
	w.buf.AppendFloat(v)
	w.maybeFlush()
}

// Flush writes any staged bytes to the destination and returns the first error
// encountered by the Writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.buf.Len() > 0 {
		if _, err := w.buf.WriteTo(w.w); err != nil {
			w.err = err
			return err
		}
		w.buf.Reset()
	}

	return nil
}

// Err returns the first error encountered by the Writer.
func (w *Writer) Err() error {
	return w.err
}

// Release returns the staging buffer to the pool. The Writer must not be used
// afterwards.
func (w *Writer) Release() {
	pool.PutTokenBuffer(w.buf)
	w.buf = nil
}

func (w *Writer) open(d byte) {
	if w.err != nil {
		return
	}
	w.separator()
	_ = w.buf.WriteByte(d)
	w.first = append(w.first, true)
}

func (w *Writer) close(d byte) {
	if w.err != nil {
		return
	}
	if n := len(w.first); n > 0 {
		w.first = w.first[:n-1]
	}
	_ = w.buf.WriteByte(d)
	w.maybeFlush()
}

// separator writes ',' between container elements.
func (w *Writer) separator() {
	if w.field {
		w.field = false
		return
	}

	n := len(w.first)
	if n == 0 {
		return
	}
	if w.first[n-1] {
		w.first[n-1] = false
		return
	}
	_ = w.buf.WriteByte(',')
}

func (w *Writer) maybeFlush() {
	if w.buf.Len() >= flushThreshold {
		_ = w.Flush()
	}
}
