package bitcodec

// SwapBytes returns a copy of b with its byte order reversed. It is its
// own inverse.
func SwapBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// SwapBytesInBits reverses the byte order of a bit-string while it is
// still in expanded form: the 8-unit chunks change order, the bit order
// within each chunk does not.
//
// The length must be a multiple of 8, else ErrMisalignedLength.
func SwapBytesInBits(bits []byte) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, &ErrMisalignedLength{Length: len(bits)}
	}

	out := make([]byte, len(bits))
	n := len(bits) / 8
	for i := 0; i < n; i++ {
		copy(out[(n-1-i)*8:], bits[i*8:i*8+8])
	}
	return out, nil
}

// SwapBitsInBytes reverses the bit order inside every byte of b (bit 7
// becomes bit 0 and so on), leaving byte positions unchanged. It is its
// own inverse.
func SwapBitsInBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = reverseLUT[c]
	}
	return out
}
