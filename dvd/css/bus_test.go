package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeDiscKey verifies the bus key cycle over a zero payload: each
// output byte must equal the bus key byte the payload was XORed with,
// cycled backwards over every 5-byte group.
func TestDecodeDiscKey(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	busKey := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	response := make([]byte, discKeyResponseSize)
	response[0] = 0x08
	response[1] = 0x00
	response[2] = 0xaa
	response[3] = 0xbb

	key, err := DecodeDiscKey(response, busKey)
	require.NoError(t, err)

	is.EqualValues(0x0800, key.DataLength)
	is.EqualValues(0xaa, key.Reserved1)
	is.EqualValues(0xbb, key.Reserved2)
	for i, b := range key.Key {
		is.Equal(busKey[4-i%KeySize], b, "key byte %d", i)
	}
	is.Equal([]byte{0x05, 0x04, 0x03, 0x02, 0x01}, key.Key[:KeySize])
}

// TestDecodeDiscKeyRoundTrip verifies that descrambling is the same XOR
// as scrambling: applying the cycle twice restores the payload.
func TestDecodeDiscKeyRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	busKey := []byte{0xc3, 0x01, 0x7f, 0x55, 0x12}

	payload := make([]byte, 2048)
	for i := range payload {
		payload[i] = byte(i * 31)
	}

	response := make([]byte, discKeyResponseSize)
	for i, b := range payload {
		response[4+i] = b ^ busKey[4-i%KeySize]
	}

	key, err := DecodeDiscKey(response, busKey)
	require.NoError(t, err)
	is.Equal(payload, key.Key[:])
}

// TestDecodeDiscKeySizes verifies the fixed-length checks.
func TestDecodeDiscKeySizes(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := DecodeDiscKey(make([]byte, 2051), make([]byte, KeySize))
	is.Equal(ErrInvalidSize, err)

	_, err = DecodeDiscKey(make([]byte, discKeyResponseSize), make([]byte, 4))
	is.Equal(ErrInvalidSize, err)
}

// TestDecodeTitleKey verifies field extraction and the bus key cycle on
// the 5-byte title key payload.
func TestDecodeTitleKey(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	busKey := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	titleKey := []byte{0x11, 0x22, 0x33, 0x44, 0x55}

	response := make([]byte, titleKeyResponseSize)
	response[0] = 0x00
	response[1] = 0x0a
	response[4] = 0x80 // CMI: encrypted
	for i, b := range titleKey {
		response[5+i] = b ^ busKey[4-i%KeySize]
	}
	response[10] = 0x01
	response[11] = 0x02

	key, err := DecodeTitleKey(response, busKey)
	require.NoError(t, err)

	is.EqualValues(0x000a, key.DataLength)
	is.EqualValues(0x80, key.CMI)
	is.Equal(titleKey, key.Key[:])
	is.EqualValues(0x01, key.Reserved3)
	is.EqualValues(0x02, key.Reserved4)
}

// TestDecodeTitleKeySizes verifies the fixed-length checks.
func TestDecodeTitleKeySizes(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := DecodeTitleKey(make([]byte, 11), make([]byte, KeySize))
	is.Equal(ErrInvalidSize, err)

	_, err = DecodeTitleKey(make([]byte, titleKeyResponseSize), make([]byte, 6))
	is.Equal(ErrInvalidSize, err)
}
