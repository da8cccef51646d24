// Package errs defines the sentinel errors returned by the heatmap packages.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should always compare with errors.Is:
//
//	h, err := codec.NewCodec2().Decode(ctx, r)
//	if errors.Is(err, errs.ErrInvalidFormat) {
//	    // the input is not a well-formed heatmap document
//	}
//
// Every structural decode failure wraps ErrInvalidFormat together with one of the
// more specific causes below, so both checks succeed.
package errs

import "errors"

// Format errors. Always fatal to the current decode call.
var (
	// ErrInvalidFormat is wrapped by every decode failure caused by the input content.
	ErrInvalidFormat = errors.New("invalid heatmap format")
	// ErrUnexpectedToken indicates a token of the wrong kind (delimiter, number, string).
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrUnexpectedField indicates an object field with an unexpected name or position.
	ErrUnexpectedField = errors.New("unexpected field")
	// ErrInvalidNumber indicates a numeric token that is not representable in the target type.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidArrayLength indicates a fixed-length array with the wrong element count.
	ErrInvalidArrayLength = errors.New("invalid array length")
	// ErrInvalidSwizzle indicates a swizzle tag outside the three valid axis selections.
	ErrInvalidSwizzle = errors.New("invalid swizzle")
	// ErrInvalidBounds indicates a bounding box with a negative size.
	ErrInvalidBounds = errors.New("invalid bounds")
	// ErrCellOutOfBounds indicates a strength or gap that moves the cursor past the bounding box.
	ErrCellOutOfBounds = errors.New("cell out of bounds")
	// ErrTrailingData indicates tokens after the end of the heatmap document.
	ErrTrailingData = errors.New("trailing data after heatmap")
)

// Encode-side caller errors.
var (
	// ErrNilHeatmap is returned when encoding a nil heatmap.
	ErrNilHeatmap = errors.New("nil heatmap")
	// ErrNegativeStrength is returned when a stored strength is negative; negative
	// numbers are reserved for gap markers on the wire.
	ErrNegativeStrength = errors.New("negative strength cannot be encoded")
	// ErrNonFiniteMatrix is returned when a transform contains NaN or Inf values.
	ErrNonFiniteMatrix = errors.New("transform contains non-finite values")
	// ErrBoundsTooLarge is returned when the bounding box volume does not fit in an
	// int64, so gap markers could not be represented on the wire.
	ErrBoundsTooLarge = errors.New("bounding box volume exceeds int64 range")
)

// Envelope errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
	ErrInvalidKind        = errors.New("invalid heatmap kind")
	ErrKindMismatch       = errors.New("heatmap kind mismatch")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrPayloadTruncated   = errors.New("payload truncated")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
)
