// Package tunnel provides reversible byte-string transforms for wrapped
// payload regions.
//
// Wire formats frequently carry a compressed region inside an otherwise
// plain layout. Compress and Decompress are the pure transforms for such
// a region: every output is self-describing (a fixed header carries the
// uncompressed and compressed sizes), so Decompress(Compress(x)) == x
// with no side-band state. Incompressible input is stored raw behind the
// same header.
//
// All functions are safe for concurrent use; zstd codecs are pooled.
package tunnel
