package bitcodec

// Lookup tables for the hot paths. Built once at package load, read-only
// afterwards.
var (
	// expandLUT maps a byte to its 8-unit MSB-first bit expansion.
	expandLUT [256][8]byte

	// packLUT is expandLUT inverted: 8-unit pattern back to the byte.
	// Chunks containing units other than 0/1 are not keys, which doubles
	// as validation in BitsToBytes.
	packLUT map[[8]byte]byte

	// reverseLUT maps a byte to its bit-reversed value.
	reverseLUT [256]byte
)

func init() {
	packLUT = make(map[[8]byte]byte, 256)
	for i := range expandLUT {
		b := byte(i)
		for j := 0; j < 8; j++ {
			expandLUT[i][j] = (b >> (7 - j)) & 1
		}
		packLUT[expandLUT[i]] = b

		b = (b&0xaa)>>1 | (b&0x55)<<1
		b = (b&0xcc)>>2 | (b&0x33)<<2
		b = (b&0xf0)>>4 | (b&0x0f)<<4
		reverseLUT[i] = b
	}
}

// BytesToBits expands each byte of b into its 8-unit MSB-first bit
// expansion, concatenated in the original byte order. The result is
// always 8*len(b) units long.
func BytesToBits(b []byte) []byte {
	bits := make([]byte, len(b)*8)
	for i, c := range b {
		copy(bits[i*8:], expandLUT[c][:])
	}
	return bits
}

// BitsToBytes packs a bit-string back into bytes, 8 MSB-first units per
// byte. It is the exact inverse of BytesToBits.
//
// The length must be a multiple of 8 (ErrMisalignedLength otherwise) and
// every unit must be 0 or 1 (ErrInvalidBit otherwise); input is never
// truncated or padded.
func BitsToBytes(bits []byte) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, &ErrMisalignedLength{Length: len(bits)}
	}

	out := make([]byte, len(bits)/8)
	for i := range out {
		chunk := [8]byte(bits[i*8 : i*8+8])
		b, ok := packLUT[chunk]
		if !ok {
			for j, unit := range chunk {
				if unit > 1 {
					return nil, &ErrInvalidBit{Unit: unit, Index: i*8 + j}
				}
			}
		}
		out[i] = b
	}
	return out, nil
}
