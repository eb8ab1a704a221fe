package bitcodec

import (
	"fmt"
	"strconv"
)

// ErrInvalidWidth indicates a width outside the supported range.
//
// Widths are bounded by the native machine word: bit widths must be in
// [0, 64] and byte widths in [0, 8].
type ErrInvalidWidth struct {
	Width int
}

func (e *ErrInvalidWidth) Error() string {
	return fmt.Sprintf("invalid width: %d", e.Width)
}

// ErrOutOfRange indicates a value that does not fit the requested
// width/signedness combination.
//
// Value, Min and Max are decimal renderings so a single type covers both
// the uint64 and the int64 domain.
type ErrOutOfRange struct {
	Value string
	Min   string
	Max   string
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("value %s out of range [%s, %s]", e.Value, e.Min, e.Max)
}

func uintRangeErr(v, max uint64) *ErrOutOfRange {
	return &ErrOutOfRange{
		Value: strconv.FormatUint(v, 10),
		Min:   "0",
		Max:   strconv.FormatUint(max, 10),
	}
}

func intRangeErr(v, min, max int64) *ErrOutOfRange {
	return &ErrOutOfRange{
		Value: strconv.FormatInt(v, 10),
		Min:   strconv.FormatInt(min, 10),
		Max:   strconv.FormatInt(max, 10),
	}
}

// ErrMisalignedLength indicates a bit-string whose length is not a
// multiple of 8 where byte alignment is required.
type ErrMisalignedLength struct {
	Length int
}

func (e *ErrMisalignedLength) Error() string {
	return fmt.Sprintf("bit-string length %d is not a multiple of 8", e.Length)
}

// ErrInvalidBit indicates a bit-string element other than 0 or 1.
type ErrInvalidBit struct {
	Unit  byte
	Index int
}

func (e *ErrInvalidBit) Error() string {
	return fmt.Sprintf("invalid bit unit 0x%02x at index %d", e.Unit, e.Index)
}

// ErrInvalidHex indicates malformed hexadecimal input.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidHex struct {
	cause error
}

func (e *ErrInvalidHex) Error() string {
	return fmt.Sprintf("invalid hex input: %v", e.cause)
}

func (e *ErrInvalidHex) Unwrap() error { return e.cause }
