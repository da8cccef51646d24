package jsontoken

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/heatmap/errs"
)

func TestWriter_Compact(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	defer w.Release()

	w.BeginObject()
	w.Field("Matrix")
	w.BeginArray()
	w.Float(1.5)
	w.Float(-0.25)
	w.EndArray()
	w.Field("Strengths")
	w.BeginArray()
	w.EndArray()
	w.Field("Nested")
	w.BeginArray()
	w.BeginArray()
	w.Int(1)
	w.EndArray()
	w.BeginArray()
	w.Int(-2)
	w.Int(3)
	w.EndArray()
	w.EndArray()
	w.EndObject()
	require.NoError(t, w.Flush())

	require.Equal(t, `{"Matrix":[1.5,-0.25],"Strengths":[],"Nested":[[1],[-2,3]]}`, out.String())
	require.True(t, json.Valid(out.Bytes()))
}

func TestWriter_FlushesLargeOutput(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	defer w.Release()

	w.BeginArray()
	for i := range 10000 {
		w.Int(int64(i))
	}
	w.EndArray()
	require.NoError(t, w.Flush())

	var got []int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 10000)
	require.Equal(t, 9999, got[9999])
}

func TestWriter_StickyError(t *testing.T) {
	failing := errors.New("disk full")
	w := NewWriter(failWriter{err: failing})
	defer w.Release()

	w.BeginArray()
	for i := range 5000 {
		w.Int(int64(i))
	}
	w.EndArray()

	require.ErrorIs(t, w.Flush(), failing)
	require.ErrorIs(t, w.Err(), failing)
}

func TestReader_Expect(t *testing.T) {
	r := NewReader(strings.NewReader(`{"Bounds": [1, -2, 3.5], "x": "s"}`))

	require.NoError(t, r.ExpectDelim('{'))
	require.NoError(t, r.ExpectField("Bounds"))
	require.NoError(t, r.ExpectDelim('['))

	v, err := r.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	v, err = r.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-2), v)

	at, err := r.AtDelim(']')
	require.NoError(t, err)
	require.False(t, at)

	f, err := r.Float64()
	require.NoError(t, err)
	require.Equal(t, 3.5, f)

	at, err = r.AtDelim(']')
	require.NoError(t, err)
	require.True(t, at)
	require.NoError(t, r.ExpectDelim(']'))

	err = r.ExpectField("y")
	require.ErrorIs(t, err, errs.ErrInvalidFormat)
	require.ErrorIs(t, err, errs.ErrUnexpectedField)
}

func TestReader_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		read  func(r *Reader) error
		cause error
	}{
		{
			name:  "wrong delimiter",
			input: `[`,
			read:  func(r *Reader) error { return r.ExpectDelim('{') },
			cause: errs.ErrUnexpectedToken,
		},
		{
			name:  "string instead of number",
			input: `["7"]`,
			read: func(r *Reader) error {
				_ = r.ExpectDelim('[')
				_, err := r.Int64()
				return err
			},
			cause: errs.ErrUnexpectedToken,
		},
		{
			name:  "fraction instead of integer",
			input: `[1.5]`,
			read: func(r *Reader) error {
				_ = r.ExpectDelim('[')
				_, err := r.Int64()
				return err
			},
			cause: errs.ErrInvalidNumber,
		},
		{
			name:  "int64 overflow",
			input: `[9223372036854775808]`,
			read: func(r *Reader) error {
				_ = r.ExpectDelim('[')
				_, err := r.Int64()
				return err
			},
			cause: errs.ErrInvalidNumber,
		},
		{
			name:  "key is not a field",
			input: `[1]`,
			read: func(r *Reader) error {
				_ = r.ExpectDelim('[')
				return r.ExpectField("Matrix")
			},
			cause: errs.ErrUnexpectedToken,
		},
		{
			name:  "trailing data",
			input: `{} []`,
			read: func(r *Reader) error {
				_ = r.ExpectDelim('{')
				_ = r.ExpectDelim('}')
				return r.ExpectEOF()
			},
			cause: errs.ErrTrailingData,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(NewReader(strings.NewReader(tt.input)))
			require.ErrorIs(t, err, errs.ErrInvalidFormat)
			require.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestReader_Truncated(t *testing.T) {
	r := NewReader(strings.NewReader(`[1, 2`))
	require.NoError(t, r.ExpectDelim('['))

	var err error
	for err == nil {
		_, err = r.Int64()
	}
	require.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestReader_ReaderErrorPassesThrough(t *testing.T) {
	failing := errors.New("connection reset")
	r := NewReader(io.MultiReader(strings.NewReader(`[1,`), failReader{err: failing}))
	require.NoError(t, r.ExpectDelim('['))

	_, err := r.Int64()
	if err == nil {
		_, err = r.Int64()
	}
	require.ErrorIs(t, err, failing)
	require.NotErrorIs(t, err, errs.ErrInvalidFormat)
}

type failWriter struct{ err error }

func (w failWriter) Write(_ []byte) (int, error) { return 0, w.err }

type failReader struct{ err error }

func (r failReader) Read(_ []byte) (int, error) { return 0, r.err }
