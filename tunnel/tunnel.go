package tunnel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/bitcodec/internal/conv"
)

// Algorithm selects the compression algorithm for a tunnel.
type Algorithm uint8

const (
	// None passes payloads through behind the header, uncompressed.
	None Algorithm = 0
	// LZ4 selects LZ4 block compression (fast, good for hot paths).
	LZ4 Algorithm = 1
	// Zstd selects zstd block compression (better ratio).
	Zstd Algorithm = 2
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ErrUnknownAlgorithm is returned for an Algorithm value outside the
// declared set.
var ErrUnknownAlgorithm = errors.New("unknown tunnel algorithm")

// Header layout: [UncompressedSize uint32][CompressedSize uint32][Data...],
// big-endian like every multi-byte field in this library.
// CompressedSize == 0 means the payload is stored raw.
const headerSize = 8

// ZSTD encoder/decoder pools for efficiency.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Compress wraps data in a self-describing compressed tunnel using the
// given algorithm. If compression does not help (ratio > 0.9) the payload
// is stored raw behind the header, so Decompress never needs to know
// whether compression was effective.
func Compress(data []byte, algo Algorithm) ([]byte, error) {
	size, err := conv.IntToUint32(len(data))
	if err != nil {
		return nil, fmt.Errorf("tunnel payload: %w", err)
	}

	var compressed []byte
	switch algo {
	case None:
		// Stored raw below.
	case LZ4:
		compressed, err = compressLZ4(data)
	case Zstd:
		compressed, err = compressZstd(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(algo))
	}
	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		out := make([]byte, headerSize+len(data))
		binary.BigEndian.PutUint32(out[0:], size)
		binary.BigEndian.PutUint32(out[4:], 0) // raw
		copy(out[headerSize:], data)
		return out, nil
	}

	csize, err := conv.IntToUint32(len(compressed))
	if err != nil {
		return nil, fmt.Errorf("tunnel payload: %w", err)
	}
	out := make([]byte, headerSize+len(compressed))
	binary.BigEndian.PutUint32(out[0:], size)
	binary.BigEndian.PutUint32(out[4:], csize)
	copy(out[headerSize:], compressed)
	return out, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return compressed[:n], nil
}

func compressZstd(data []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress unwraps a tunnel produced by Compress with the same
// algorithm, returning the original payload.
func Decompress(data []byte, algo Algorithm) ([]byte, error) {
	if len(data) < headerSize {
		return nil, errors.New("tunnel too small for header")
	}

	usize := binary.BigEndian.Uint32(data[0:])
	csize := binary.BigEndian.Uint32(data[4:])

	size, err := conv.Uint32ToInt(usize)
	if err != nil {
		return nil, fmt.Errorf("tunnel header: %w", err)
	}

	if csize == 0 {
		if len(data) < headerSize+size {
			return nil, errors.New("tunnel payload truncated")
		}
		out := make([]byte, size)
		copy(out, data[headerSize:headerSize+size])
		return out, nil
	}

	clen, err := conv.Uint32ToInt(csize)
	if err != nil {
		return nil, fmt.Errorf("tunnel header: %w", err)
	}
	if len(data) < headerSize+clen {
		return nil, errors.New("tunnel payload truncated")
	}
	payload := data[headerSize : headerSize+clen]

	switch algo {
	case LZ4:
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, err
		}
		if n != size {
			return nil, errors.New("decompressed size mismatch")
		}
		return out, nil

	case Zstd:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)

		out, err := dec.DecodeAll(payload, make([]byte, 0, size))
		if err != nil {
			return nil, err
		}
		if len(out) != size {
			return nil, errors.New("decompressed size mismatch")
		}
		return out, nil

	case None:
		return nil, errors.New("tunnel marked compressed but algorithm is none")

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(algo))
	}
}
