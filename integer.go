package bitcodec

import "encoding/binary"

// UintToBits encodes v as a bit-string of exactly width bits, MSB first.
//
// width must be in [0, 64]. A width of 0 yields the empty bit-string and
// always succeeds. Values above 2^width-1 fail with ErrOutOfRange.
func UintToBits(v uint64, width int) ([]byte, error) {
	if width < 0 || width > 64 {
		return nil, &ErrInvalidWidth{Width: width}
	}
	if width == 0 {
		return []byte{}, nil
	}
	if width < 64 {
		max := uint64(1)<<width - 1
		if v > max {
			return nil, uintRangeErr(v, max)
		}
	}

	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v & 1)
		v >>= 1
	}
	return out, nil
}

// IntToBits encodes v as a two's-complement bit-string of exactly width
// bits, MSB first.
//
// width must be in [0, 64]. A width of 0 yields the empty bit-string and
// always succeeds. Values outside [-2^(width-1), 2^(width-1)-1] fail with
// ErrOutOfRange. Negative values are encoded as their non-negative
// residue modulo 2^width.
func IntToBits(v int64, width int) ([]byte, error) {
	if width < 0 || width > 64 {
		return nil, &ErrInvalidWidth{Width: width}
	}
	if width == 0 {
		return []byte{}, nil
	}
	if width < 64 {
		min := -(int64(1) << (width - 1))
		max := int64(1)<<(width-1) - 1
		if v < min || v > max {
			return nil, intRangeErr(v, min, max)
		}
	}

	// Two's-complement residue: the cast wraps negative values to
	// 2^64 + v, the mask folds them into 2^width + v.
	u := uint64(v)
	if width < 64 {
		u &= uint64(1)<<width - 1
	}

	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(u & 1)
		u >>= 1
	}
	return out, nil
}

// BitsToUint decodes an MSB-first bit-string into an unsigned integer.
// The empty bit-string decodes to 0.
func BitsToUint(bits []byte) (uint64, error) {
	if len(bits) > 64 {
		return 0, &ErrInvalidWidth{Width: len(bits)}
	}

	var v uint64
	for i, unit := range bits {
		if unit > 1 {
			return 0, &ErrInvalidBit{Unit: unit, Index: i}
		}
		v = v<<1 | uint64(unit)
	}
	return v, nil
}

// BitsToInt decodes an MSB-first bit-string as a two's-complement signed
// integer of len(bits) bits. The empty bit-string decodes to 0.
func BitsToInt(bits []byte) (int64, error) {
	raw, err := BitsToUint(bits)
	if err != nil {
		return 0, err
	}
	if len(bits) == 0 || bits[0] == 0 {
		return int64(raw), nil
	}
	// Subtract 2^len in uint64 arithmetic; the wraparound is exactly the
	// two's-complement fold. A shift count of 64 is defined as 0, which
	// makes the full-width case the identity cast.
	return int64(raw - uint64(1)<<len(bits)), nil
}

// UintToBytes encodes v as exactly width big-endian bytes.
//
// width must be in [0, 8]. Overflow is detected on the machine word (a
// shift test, not re-derived bounds) and fails with ErrOutOfRange.
func UintToBytes(v uint64, width int) ([]byte, error) {
	if width < 0 || width > 8 {
		return nil, &ErrInvalidWidth{Width: width}
	}
	if width < 8 && v>>(8*width) != 0 {
		return nil, uintRangeErr(v, uint64(1)<<(8*width)-1)
	}

	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	out := make([]byte, width)
	copy(out, tmp[8-width:])
	return out, nil
}

// IntToBytes encodes v as exactly width big-endian two's-complement bytes.
//
// width must be in [0, 8]. Overflow is detected by arithmetic shift: the
// bits above the sign bit must be all zeros or all ones.
func IntToBytes(v int64, width int) ([]byte, error) {
	if width < 0 || width > 8 {
		return nil, &ErrInvalidWidth{Width: width}
	}
	switch {
	case width == 8:
		// Any int64 fits.
	case width == 0:
		if v != 0 {
			return nil, intRangeErr(v, 0, 0)
		}
	default:
		if s := v >> (8*width - 1); s != 0 && s != -1 {
			min := -(int64(1) << (8*width - 1))
			max := int64(1)<<(8*width-1) - 1
			return nil, intRangeErr(v, min, max)
		}
	}

	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(v))
	out := make([]byte, width)
	copy(out, tmp[8-width:])
	return out, nil
}

// BytesToUint decodes a big-endian byte-string of up to 8 bytes into an
// unsigned integer. The empty byte-string decodes to 0.
func BytesToUint(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, &ErrInvalidWidth{Width: len(b)}
	}

	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// BytesToInt decodes a big-endian two's-complement byte-string of up to
// 8 bytes. The empty byte-string decodes to 0.
func BytesToInt(b []byte) (int64, error) {
	raw, err := BytesToUint(b)
	if err != nil {
		return 0, err
	}
	if len(b) == 0 || b[0]&0x80 == 0 {
		return int64(raw), nil
	}
	return int64(raw - uint64(1)<<(8*len(b))), nil
}
