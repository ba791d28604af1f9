package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSector builds a minimal MPEG-PS sector: scrambling control set in
// the PES header, fixed seed bytes, and a recognizable payload fill.
func testSector(fill byte) []byte {
	sector := make([]byte, SectorSize)
	sector[0x14] = 0x30 // PES scrambling control
	copy(sector[0x54:], []byte{0x0d, 0x5c, 0xa7, 0x31, 0x88, 0x19})
	for i := SectorHeaderSize; i < SectorSize; i++ {
		sector[i] = fill
	}
	return sector
}

// sectorKeystream recovers the keystream the sector cipher applies for a
// given key and header by descrambling a zero payload: every output byte
// is then the substituted zero XOR the stream byte.
func sectorKeystream(t *testing.T, key []byte, header []byte) []byte {
	probe := make([]byte, SectorSize)
	copy(probe, header)
	require.NoError(t, DecryptSector(probe, 0x80, key))

	stream := make([]byte, SectorSize)
	for i := SectorHeaderSize; i < SectorSize; i++ {
		stream[i] = probe[i] ^ cssTab1[0]
	}
	return stream
}

// scrambleSector is the encrypt direction of the sector cipher, built
// from the inverse mangling permutation: descrambling computes
// tab1[b] ^ stream, so scrambling is invTab1[b ^ stream].
func scrambleSector(t *testing.T, sector []byte, key []byte) []byte {
	inv := invertedTab1()
	stream := sectorKeystream(t, key, sector[:SectorHeaderSize])

	scrambled := make([]byte, SectorSize)
	copy(scrambled, sector[:SectorHeaderSize])
	for i := SectorHeaderSize; i < SectorSize; i++ {
		scrambled[i] = inv[sector[i]^stream[i]]
	}
	return scrambled
}

// TestDecryptSectorRoundTrip verifies that descrambling inverts the
// scramble direction over the whole payload.
func TestDecryptSectorRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key := []byte{0x51, 0x67, 0x67, 0xc5, 0xe0}

	plain := testSector(0x00)
	for i := SectorHeaderSize; i < SectorSize; i++ {
		plain[i] = byte(i * 7)
	}

	sector := scrambleSector(t, plain, key)
	require.NoError(t, DecryptSector(sector, 0x80, key))
	is.Equal(plain, sector)
}

// TestDecryptSectorClearCMI verifies that a sector without the encrypted
// bit passes through untouched.
func TestDecryptSectorClearCMI(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	sector := testSector(0x5a)
	original := append([]byte(nil), sector...)

	require.NoError(t, DecryptSector(sector, 0x00, key))
	is.Equal(original, sector)
}

// TestDecryptSectorZeroKey verifies that an all-zero key means "not
// encrypted" and the sector passes through untouched.
func TestDecryptSectorZeroKey(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	sector := testSector(0x5a)
	original := append([]byte(nil), sector...)

	require.NoError(t, DecryptSector(sector, 0x80, make([]byte, KeySize)))
	is.Equal(original, sector)
}

// TestDecryptSectorClearScramblingControl verifies the PES gate: a sector
// flagged encrypted but with clear scrambling control bits is untouched.
func TestDecryptSectorClearScramblingControl(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	sector := testSector(0x5a)
	sector[0x14] = 0x00
	original := append([]byte(nil), sector...)

	require.NoError(t, DecryptSector(sector, 0x80, key))
	is.Equal(original, sector)
}

// TestDecryptSectorHeaderUntouched verifies that the MPEG-PS header
// bytes are never modified.
func TestDecryptSectorHeaderUntouched(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key := []byte{0xde, 0xad, 0xbe, 0xef, 0x42}
	sector := testSector(0xa5)
	header := append([]byte(nil), sector[:SectorHeaderSize]...)

	require.NoError(t, DecryptSector(sector, 0x80, key))
	is.Equal(header, sector[:SectorHeaderSize])
}

// TestDecryptSectorDeterministic verifies that the sector cipher is a
// pure function of sector, CMI and key.
func TestDecryptSectorDeterministic(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key := []byte{0x36, 0x67, 0xb2, 0xe3, 0x85}

	first := testSector(0x11)
	second := testSector(0x11)
	require.NoError(t, DecryptSector(first, 0x80, key))
	require.NoError(t, DecryptSector(second, 0x80, key))
	is.Equal(first, second)
}

// TestDecryptSectorSizes verifies the fixed-length checks.
func TestDecryptSectorSizes(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	is.Equal(ErrInvalidSize, DecryptSector(make([]byte, 100), 0x80, key))
	is.Equal(ErrInvalidSize, DecryptSector(make([]byte, SectorSize), 0x80, key[:3]))
}

// TestDecryptSectorsBatch verifies the batch path: scrambled and clear
// sectors mix, and only the flagged ones change.
func TestDecryptSectorsBatch(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key := []byte{0x7b, 0x1e, 0x5e, 0x2b, 0x57}

	plain := testSector(0x00)
	for i := SectorHeaderSize; i < SectorSize; i++ {
		plain[i] = byte(i ^ i>>3)
	}
	clear := testSector(0x66)

	sectors := append(scrambleSector(t, plain, key), clear...)
	cmi := []byte{0x80, 0x00}
	keys := append(append([]byte(nil), key...), key...)

	require.NoError(t, DecryptSectors(sectors, cmi, keys, 2, SectorSize))
	is.Equal(plain, sectors[:SectorSize])
	is.Equal(clear, sectors[SectorSize:])
}

// TestDecryptSectorsShortCircuit verifies the batch short-circuits: no
// encrypted bit anywhere, or all-zero key data, leaves the batch alone.
func TestDecryptSectorsShortCircuit(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	sectors := append(testSector(0x21), testSector(0x43)...)
	original := append([]byte(nil), sectors...)

	require.NoError(t, DecryptSectors(sectors, []byte{0x00, 0x00},
		[]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 2, SectorSize))
	is.Equal(original, sectors)

	require.NoError(t, DecryptSectors(sectors, []byte{0x80, 0x80},
		make([]byte, 2*KeySize), 2, SectorSize))
	is.Equal(original, sectors)
}

// TestDecryptSectorsSizes verifies the batch length checks.
func TestDecryptSectorsSizes(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Equal(ErrInvalidSize, DecryptSectors(make([]byte, SectorSize), []byte{0x80}, make([]byte, KeySize), 2, SectorSize))
	is.Equal(ErrInvalidSize, DecryptSectors(make([]byte, SectorSize), []byte{0x80, 0x00}, make([]byte, KeySize), 1, SectorSize))
	is.Equal(ErrInvalidSize, DecryptSectors(make([]byte, SectorSize), []byte{0x80}, make([]byte, 2*KeySize), 1, SectorSize))
}
