// Package jsontoken provides the forward-only token cursor used by the heatmap
// codecs.
//
// Reader wraps encoding/json's streaming Decoder and adds peek/expect
// operations that fail hard on mismatch. Writer emits compact JSON tokens into
// a pooled buffer and flushes it to the destination stream in chunks. Neither
// type ever rewinds: every token is visited exactly once, in order.
package jsontoken

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/heatmap/errs"
)

// Reader is a forward-only cursor over the JSON tokens of an input stream.
//
// Note: Reader is NOT thread-safe.
type Reader struct {
	dec     *json.Decoder
	peeked  json.Token
	hasPeek bool
}

// NewReader creates a Reader over r. Numbers are kept as json.Number so that
// integers are parsed exactly.
func NewReader(r io.Reader) *Reader {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	return &Reader{dec: dec}
}

// Offset returns the input byte offset of the cursor.
func (r *Reader) Offset() int64 {
	return r.dec.InputOffset()
}

// Peek returns the next token without consuming it.
func (r *Reader) Peek() (json.Token, error) {
	if r.hasPeek {
		return r.peeked, nil
	}

	t, err := r.dec.Token()
	if err != nil {
		return nil, r.wrapReadErr(err)
	}
	r.peeked, r.hasPeek = t, true

	return t, nil
}

// Next consumes and returns the next token.
func (r *Reader) Next() (json.Token, error) {
	t, err := r.Peek()
	if err != nil {
		return nil, err
	}
	r.peeked, r.hasPeek = nil, false

	return t, nil
}

// ExpectDelim consumes the next token and fails unless it is d.
func (r *Reader) ExpectDelim(d json.Delim) error {
	t, err := r.Next()
	if err != nil {
		return err
	}
	if t != d {
		return r.unexpected(fmt.Sprintf("'%v'", d), t)
	}

	return nil
}

// ExpectField consumes the next token and fails unless it is the object key name.
func (r *Reader) ExpectField(name string) error {
	t, err := r.Next()
	if err != nil {
		return err
	}

	key, ok := t.(string)
	if !ok {
		return r.unexpected(fmt.Sprintf("field %q", name), t)
	}
	if key != name {
		return fmt.Errorf("%w: %w: expected field %q, got %q at offset %d",
			errs.ErrInvalidFormat, errs.ErrUnexpectedField, name, key, r.Offset())
	}

	return nil
}

// AtDelim reports whether the next token is d, without consuming it.
func (r *Reader) AtDelim(d json.Delim) (bool, error) {
	t, err := r.Peek()
	if err != nil {
		return false, err
	}

	return t == d, nil
}

// Int64 consumes the next token and returns it as an integer.
func (r *Reader) Int64() (int64, error) {
	t, err := r.Next()
	if err != nil {
		return 0, err
	}

	num, ok := t.(json.Number)
	if !ok {
		return 0, r.unexpected("integer", t)
	}

	v, err := strconv.ParseInt(string(num), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %q at offset %d",
			errs.ErrInvalidFormat, errs.ErrInvalidNumber, string(num), r.Offset())
	}

	return v, nil
}

// Float64 consumes the next token and returns it as a float.
func (r *Reader) Float64() (float64, error) {
	t, err := r.Next()
	if err != nil {
		return 0, err
	}

	num, ok := t.(json.Number)
	if !ok {
		return 0, r.unexpected("number", t)
	}

	v, err := num.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %q at offset %d",
			errs.ErrInvalidFormat, errs.ErrInvalidNumber, string(num), r.Offset())
	}

	return v, nil
}

// ExpectEOF fails if any token remains in the stream.
func (r *Reader) ExpectEOF() error {
	if r.hasPeek {
		return fmt.Errorf("%w: %w: got %v", errs.ErrInvalidFormat, errs.ErrTrailingData, r.peeked)
	}

	t, err := r.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return r.wrapReadErr(err)
	}

	return fmt.Errorf("%w: %w: got %v", errs.ErrInvalidFormat, errs.ErrTrailingData, t)
}

func (r *Reader) unexpected(want string, got json.Token) error {
	return fmt.Errorf("%w: %w: expected %s, got %s at offset %d",
		errs.ErrInvalidFormat, errs.ErrUnexpectedToken, want, describe(got), r.Offset())
}

// wrapReadErr classifies decoder errors. Syntax errors and premature end of input
// are format errors; anything else comes from the underlying reader and is
// passed through.
func (r *Reader) wrapReadErr(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", errs.ErrInvalidFormat, err)
	}

	return fmt.Errorf("failed to read token: %w", err)
}

func describe(t json.Token) string {
	switch v := t.(type) {
	case json.Delim:
		return fmt.Sprintf("'%v'", v)
	case string:
		return strconv.Quote(v)
	case json.Number:
		return "number " + string(v)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T %v", t, t)
	}
}
