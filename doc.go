// Package bitcodec provides bit-exact primitives for bit-field-granular
// binary formats.
//
// The package converts between three canonical representations:
//
//   - integers: fixed-width uint64/int64, interpreted relative to an
//     explicit bit or byte width
//   - bit-strings: []byte with one element per logical bit (0 or 1),
//     most-significant bit first
//   - byte-strings: plain []byte
//
// On top of the conversions it offers byte- and bit-order transforms for
// cross-endian protocols. Every transform has an exact inverse and a
// strict precondition policy: out-of-range values, negative widths and
// misaligned bit-strings fail eagerly with typed errors, never by silent
// truncation or padding.
//
// # Quick Start
//
//	bits, _ := bitcodec.UintToBits(19, 8)     // [0 0 0 1 0 0 1 1]
//	n, _ := bitcodec.BitsToUint(bits)         // 19
//
//	units := bitcodec.BytesToBits([]byte("ab")) // 16 bit units
//	b, _ := bitcodec.BitsToBytes(units)         // "ab" again
//
//	le := bitcodec.SwapBytes(be)              // endianness flip
//	r := bitcodec.SwapBitsInBytes(b)          // per-byte bit reversal
//
// All functions are pure and safe for concurrent use; the hot paths are
// backed by 256-entry lookup tables built once at package load.
//
// Streaming bit I/O over io.Reader/io.Writer lives in the bitstream
// subpackage; reversible compressed-payload transforms in tunnel.
package bitcodec
