package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// invertedTab1 returns the inverse of the mangling permutation.
func invertedTab1() (inv [256]byte) {
	for i, v := range cssTab1 {
		inv[v] = byte(i)
	}
	return inv
}

// encryptKey is the inverse of DecryptKey with invert 0x00: it produces
// the ciphertext that DecryptKey maps back to plain under cryptoKey. The
// two mangling passes are unwound front to back through the inverse
// permutation.
func encryptKey(cryptoKey, plain []byte) [KeySize]byte {
	inv := invertedTab1()
	stream := keyStream(0x00, cryptoKey)

	var mid [KeySize]byte
	mid[0] = inv[plain[0]^stream[0]]
	mid[1] = inv[plain[1]^stream[1]^mid[0]]
	mid[2] = inv[plain[2]^stream[2]^mid[1]]
	mid[3] = inv[plain[3]^stream[3]^mid[2]]
	mid[4] = inv[plain[4]^stream[4]^mid[3]]

	var enc [KeySize]byte
	enc[0] = inv[mid[0]^stream[0]^mid[4]]
	enc[1] = inv[mid[1]^stream[1]^enc[0]]
	enc[2] = inv[mid[2]^stream[2]^enc[1]]
	enc[3] = inv[mid[3]^stream[3]^enc[2]]
	enc[4] = inv[mid[4]^stream[4]^enc[3]]

	return enc
}

// TestDecryptKeyDeterministic verifies that the key cipher is a pure
// function of its inputs.
func TestDecryptKeyDeterministic(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	cryptoKey := []byte{0x01, 0xaf, 0xe3, 0x12, 0x80}
	encrypted := []byte{0x51, 0x67, 0x67, 0xc5, 0xe0}

	first := DecryptKey(0x00, cryptoKey, encrypted)
	second := DecryptKey(0x00, cryptoKey, encrypted)
	is.Equal(first, second)
}

// TestDecryptKeyInvert verifies that the invert parameter changes the
// keystream: the title key and disc key modes must not collide.
func TestDecryptKeyInvert(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	cryptoKey := []byte{0x12, 0x11, 0xca, 0x04, 0x3b}
	encrypted := []byte{0xab, 0x36, 0xe3, 0xeb, 0x76}

	plain := DecryptKey(0x00, cryptoKey, encrypted)
	title := DecryptKey(0xff, cryptoKey, encrypted)
	is.NotEqual(plain, title)

	// Flipping invert flips every byte of the 25-bit register's
	// contribution before the carrying addition.
	zero := keyStream(0x00, cryptoKey)
	full := keyStream(0xff, cryptoKey)
	is.NotEqual(zero, full)
}

// TestDecryptTitleKeyAlias verifies that the title key entry point is the
// key cipher unchanged.
func TestDecryptTitleKeyAlias(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	cryptoKey := []byte{0x45, 0xed, 0x28, 0xeb, 0xd3}
	encrypted := []byte{0x14, 0x0c, 0x9e, 0xd0, 0x09}

	is.Equal(
		DecryptKey(0xff, cryptoKey, encrypted),
		DecryptTitleKey(0xff, cryptoKey, encrypted),
	)
}

// TestDecryptKeyRoundTrip verifies that DecryptKey inverts the encrypt
// direction for a spread of keys.
func TestDecryptKeyRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	keys := [][]byte{
		{0x00, 0x00, 0x00, 0x00, 0x00},
		{0xff, 0xff, 0xff, 0xff, 0xff},
		{0x01, 0x02, 0x03, 0x04, 0x05},
		{0x55, 0xd6, 0xc4, 0xc5, 0x28},
		{0xde, 0xad, 0xbe, 0xef, 0x42},
	}

	for _, cryptoKey := range keys {
		for _, plain := range keys {
			enc := encryptKey(cryptoKey, plain)
			dec := DecryptKey(0x00, cryptoKey, enc[:])
			is.Equal(plain, dec[:], "key %x plain %x", cryptoKey, plain)
		}
	}
}
