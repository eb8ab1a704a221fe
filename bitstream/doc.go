// Package bitstream provides streaming MSB-first bit I/O over io.Reader
// and io.Writer.
//
// Whole-slice conversions live in the parent bitcodec package; this
// package covers the incremental case, where non-byte-aligned fields are
// consumed or produced one group at a time:
//
//	br := bitstream.NewReader(bytes.NewReader([]byte{0xa9})) // 1010 1001
//	hi, _ := br.ReadBits(1)  // 1
//	mid, _ := br.ReadBits(3) // 2
//	lo, _ := br.ReadBits(4)  // 9
//
// Bits within each byte are consumed from most to least significant, the
// same big-endian bit order the rest of the library uses. Readers and
// Writers buffer at most one byte and fail with the bitcodec error types
// on width and alignment violations.
package bitstream
