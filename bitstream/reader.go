package bitstream

import (
	"io"

	"github.com/hupe1980/bitcodec"
)

// Reader reads groups of up to 64 bits, MSB first, from an io.Reader.
type Reader struct {
	r io.Reader

	// The top nb bits of cache are read from r but not yet delivered.
	cache   byte
	nb      uint8
	scratch [1]byte
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadBits reads the next n bits and returns them in the low-order bits
// of the result. n must be in [0, 64], else bitcodec.ErrInvalidWidth.
//
// Hitting end of input before the first bit of a group returns io.EOF;
// running dry mid-group returns io.ErrUnexpectedEOF.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, &bitcodec.ErrInvalidWidth{Width: n}
	}

	var v uint64
	remaining := n
	for remaining > 0 {
		if r.nb == 0 {
			if _, err := io.ReadFull(r.r, r.scratch[:]); err != nil {
				if err == io.EOF && remaining < n {
					err = io.ErrUnexpectedEOF
				}
				return 0, err
			}
			r.cache = r.scratch[0]
			r.nb = 8
		}

		take := remaining
		if take > int(r.nb) {
			take = int(r.nb)
		}
		v = v<<take | uint64(r.cache>>(8-take))
		r.cache <<= take
		r.nb -= uint8(take)
		remaining -= take
	}
	return v, nil
}

// ReadBool reads a single bit.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadBits(1)
	return v == 1, err
}

// ReadBitString reads n bits into an expanded bit-string (one element
// per bit, 0 or 1, MSB first), the representation the parent package
// operates on. n may exceed 64.
//
// Byte-aligned stretches drain whole input bytes through the parent
// expansion table; only the ragged edges go bit by bit.
func (r *Reader) ReadBitString(n int) ([]byte, error) {
	if n < 0 {
		return nil, &bitcodec.ErrInvalidWidth{Width: n}
	}

	bits := make([]byte, n)
	i := 0
	for i < n {
		if r.nb == 0 && n-i >= 8 {
			if _, err := io.ReadFull(r.r, r.scratch[:]); err != nil {
				if err == io.EOF && i > 0 {
					err = io.ErrUnexpectedEOF
				}
				return nil, err
			}
			copy(bits[i:i+8], bitcodec.BytesToBits(r.scratch[:]))
			i += 8
			continue
		}

		v, err := r.ReadBits(1)
		if err != nil {
			if err == io.EOF && i > 0 {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		bits[i] = byte(v)
		i++
	}
	return bits, nil
}

// Align discards buffered bits so the next read starts on a byte
// boundary. It reports how many bits were dropped.
func (r *Reader) Align() int {
	dropped := int(r.nb)
	r.cache = 0
	r.nb = 0
	return dropped
}
