package tunnel

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	compressible := bytes.Repeat([]byte("bit-exact codecs compress well "), 200)

	incompressible := make([]byte, 4096)
	rng := rand.New(rand.NewSource(99))
	rng.Read(incompressible)

	payloads := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"tiny", []byte{0x01}},
		{"compressible", compressible},
		{"incompressible", incompressible},
	}

	for _, algo := range []Algorithm{None, LZ4, Zstd} {
		for _, p := range payloads {
			t.Run(algo.String()+"/"+p.name, func(t *testing.T) {
				packed, err := Compress(p.data, algo)
				require.NoError(t, err)
				require.GreaterOrEqual(t, len(packed), headerSize)

				got, err := Decompress(packed, algo)
				require.NoError(t, err)
				assert.Equal(t, p.data, got)
			})
		}
	}
}

func TestCompressRatioCutoff(t *testing.T) {
	// Random data must be stored raw: header + payload, nothing gained.
	data := make([]byte, 1024)
	rng := rand.New(rand.NewSource(3))
	rng.Read(data)

	packed, err := Compress(data, Zstd)
	require.NoError(t, err)
	assert.Equal(t, headerSize+len(data), len(packed))
}

func TestCompressShrinks(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 64*1024)

	for _, algo := range []Algorithm{LZ4, Zstd} {
		t.Run(algo.String(), func(t *testing.T) {
			packed, err := Compress(data, algo)
			require.NoError(t, err)
			assert.Less(t, len(packed), len(data)/10)
		})
	}
}

func TestDecompressErrors(t *testing.T) {
	t.Run("truncated header", func(t *testing.T) {
		_, err := Decompress([]byte{1, 2, 3}, LZ4)
		assert.Error(t, err)
	})

	t.Run("truncated payload", func(t *testing.T) {
		packed, err := Compress(bytes.Repeat([]byte("abc"), 100), LZ4)
		require.NoError(t, err)

		_, err = Decompress(packed[:len(packed)-1], LZ4)
		assert.Error(t, err)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := Compress([]byte("x"), Algorithm(42))
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	})
}
