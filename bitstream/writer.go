package bitstream

import (
	"io"
	"strconv"

	"github.com/hupe1980/bitcodec"
)

// Writer writes groups of up to 64 bits, MSB first, to an io.Writer.
//
// Bits accumulate in a one-byte cache and are passed through as whole
// bytes. Call Flush (byte-aligned output required) or Pad (zero-fills to
// the boundary) when done.
type Writer struct {
	w io.Writer

	// The top nb bits of cache are buffered but not yet written.
	cache   byte
	nb      uint8
	scratch [1]byte
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteBits writes the low-order n bits of v, MSB first. n must be in
// [0, 64], else bitcodec.ErrInvalidWidth; v must fit in n bits, else
// bitcodec.ErrOutOfRange.
func (w *Writer) WriteBits(v uint64, n int) error {
	if n < 0 || n > 64 {
		return &bitcodec.ErrInvalidWidth{Width: n}
	}
	if n < 64 {
		max := uint64(1)<<n - 1
		if v > max {
			return &bitcodec.ErrOutOfRange{
				Value: strconv.FormatUint(v, 10),
				Min:   "0",
				Max:   strconv.FormatUint(max, 10),
			}
		}
	}

	remaining := n
	for remaining > 0 {
		free := 8 - w.nb
		take := remaining
		if take > int(free) {
			take = int(free)
		}

		chunk := byte(v>>(remaining-take)) & byte(1<<take-1)
		w.cache |= chunk << (int(free) - take)
		w.nb += uint8(take)
		remaining -= take

		if w.nb == 8 {
			w.scratch[0] = w.cache
			if _, err := w.w.Write(w.scratch[:]); err != nil {
				return err
			}
			w.cache = 0
			w.nb = 0
		}
	}
	return nil
}

// WriteBool writes a single bit.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteBits(1, 1)
	}
	return w.WriteBits(0, 1)
}

// WriteBitString writes an expanded bit-string (one element per bit,
// 0 or 1, MSB first). Elements other than 0/1 fail with
// bitcodec.ErrInvalidBit before anything is flushed for that element.
func (w *Writer) WriteBitString(bits []byte) error {
	for i, unit := range bits {
		if unit > 1 {
			return &bitcodec.ErrInvalidBit{Unit: unit, Index: i}
		}
		if err := w.WriteBits(uint64(unit), 1); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered bits to the underlying writer. The buffered
// count must be byte-aligned; otherwise it fails with
// bitcodec.ErrMisalignedLength and nothing is written. Use Pad to force
// alignment.
func (w *Writer) Flush() error {
	if w.nb == 0 {
		return nil
	}
	return &bitcodec.ErrMisalignedLength{Length: int(w.nb)}
}

// Pad zero-fills the cache up to the next byte boundary and flushes it.
// A byte-aligned writer is left untouched.
func (w *Writer) Pad() error {
	if w.nb == 0 {
		return nil
	}
	w.scratch[0] = w.cache
	if _, err := w.w.Write(w.scratch[:]); err != nil {
		return err
	}
	w.cache = 0
	w.nb = 0
	return nil
}
