package bitcodec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", []byte{}, []byte{}},
		{"single", []byte{0xab}, []byte{0xab}},
		{"even length", []byte{1, 2, 3, 4}, []byte{4, 3, 2, 1}},
		{"odd length", []byte{1, 2, 3}, []byte{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SwapBytes(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, SwapBytes(got), "involution")
		})
	}

	t.Run("does not mutate input", func(t *testing.T) {
		in := []byte{1, 2, 3}
		_ = SwapBytes(in)
		assert.Equal(t, []byte{1, 2, 3}, in)
	})
}

func TestSwapBytesInBits(t *testing.T) {
	t.Run("chunk order reversed, bit order kept", func(t *testing.T) {
		bits := BytesToBits([]byte{0x61, 0x62})

		got, err := SwapBytesInBits(bits)
		require.NoError(t, err)
		assert.Equal(t, BytesToBits([]byte{0x62, 0x61}), got)
	})

	t.Run("misaligned length", func(t *testing.T) {
		_, err := SwapBytesInBits(make([]byte, 9))
		var ml *ErrMisalignedLength
		require.ErrorAs(t, err, &ml)
		assert.Equal(t, 9, ml.Length)
	})

	t.Run("involution", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		buf := make([]byte, 32)
		_, err := rng.Read(buf)
		require.NoError(t, err)
		bits := BytesToBits(buf)

		once, err := SwapBytesInBits(bits)
		require.NoError(t, err)
		twice, err := SwapBytesInBits(once)
		require.NoError(t, err)
		assert.Equal(t, bits, twice)
	})

	// Swapping chunks in bit form must agree with packing, swapping the
	// bytes and expanding again.
	t.Run("commutes with packing", func(t *testing.T) {
		buf := []byte{0x01, 0x02, 0x03, 0x04}
		bits := BytesToBits(buf)

		got, err := SwapBytesInBits(bits)
		require.NoError(t, err)
		assert.Equal(t, BytesToBits(SwapBytes(buf)), got)
	})
}

func TestSwapBitsInBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", []byte{}, []byte{}},
		{"spec scenario", []byte{0xf0, 0x00}, []byte{0x0f, 0x00}},
		{"asymmetric pattern", []byte{0x80, 0x01}, []byte{0x01, 0x80}},
		{"palindromic bits", []byte{0xff, 0x00, 0x81}, []byte{0xff, 0x00, 0x81}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SwapBitsInBytes(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, SwapBitsInBytes(got), "involution")
		})
	}

	// The table is the composition expand -> reverse all units -> pack
	// -> swap bytes; pin it against that definition.
	t.Run("matches composed definition", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		buf := make([]byte, 64)
		_, err := rng.Read(buf)
		require.NoError(t, err)

		bits := BytesToBits(buf)
		reversed := SwapBytes(bits) // unit-level full reversal
		packed, err := BitsToBytes(reversed)
		require.NoError(t, err)
		want := SwapBytes(packed)

		assert.Equal(t, want, SwapBitsInBytes(buf))
	})
}
