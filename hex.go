package bitcodec

import "encoding/hex"

// Hexlify encodes b as lowercase hexadecimal text, two digits per byte.
func Hexlify(b []byte) string {
	return hex.EncodeToString(b)
}

// Unhexlify decodes hexadecimal text back into bytes. Odd-length input
// or a non-hex character fails with ErrInvalidHex.
func Unhexlify(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &ErrInvalidHex{cause: err}
	}
	return b, nil
}

// Hexdump renders b in the canonical offset + hex + ASCII layout, handy
// when eyeballing bit-field placement in a captured frame.
func Hexdump(b []byte) string {
	return hex.Dump(b)
}
