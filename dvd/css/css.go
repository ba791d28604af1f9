// Package css implements the Content Scramble System used to protect
// DVD-Video discs.
//
// CSS couples two linear feedback shift registers, one 17 bits wide and one
// 25 bits wide, into a byte-oriented keystream generator. The same pair of
// registers is wired three different ways:
//
//  * the authentication cipher mangles a 10-byte challenge into a 5-byte
//    key during the drive/host handshake that establishes a bus key;
//  * the key cipher decrypts 5-byte keys (disc keys and title keys) that
//    travel encrypted on the disc;
//  * the sector cipher unscrambles the payload of 2048-byte MPEG-PS
//    sectors, using a different tap schedule from the key cipher.
//
// The key and sector tap schedules are deliberately kept as two separate
// code paths; they are not interchangeable.
//
// Keys transported over the bus during a session are additionally XORed
// with the negotiated bus key, undone by DecodeDiscKey and DecodeTitleKey.
//
// The per-disc secret is recovered by DecryptDiscKey, which trial-decrypts
// the 409-slot key block from the disc lead-in against the publicly known
// player keys and checks each candidate against the self-encrypted
// verification slot.
//
// All entry points are pure functions over caller-owned buffers; the
// substitution tables are package-level constants and safe to share across
// goroutines.
package css

import "errors"

var (
	// ErrInvalidSize is returned when a response or key buffer does not
	// match the fixed length the format requires.
	ErrInvalidSize = errors.New("buffer does not match the required size")

	// ErrKeyNotFound is returned when every known player key has been
	// tried against the disc key block without a verified match.
	ErrKeyNotFound = errors.New("no player key decrypts the disc key block")

	// ErrBadKeyType is returned for a key type outside the three the
	// handshake defines.
	ErrBadKeyType = errors.New("invalid key type")

	// ErrBadVariant is returned for a variant outside 0..31.
	ErrBadVariant = errors.New("invalid cipher variant")
)

// KeyType selects which step of the authentication handshake a key is
// being generated for. It picks the challenge permutation row and, for the
// bus key steps, the variant permutation row.
type KeyType int

const (
	// KeyAuthentication generates the key1/key2 handshake responses.
	KeyAuthentication KeyType = iota
	// KeyBus1 and KeyBus2 generate the two halves of the bus key.
	KeyBus1
	KeyBus2
)

const (
	// KeySize is the size of all CSS key material: player keys, bus keys,
	// disc keys and title keys are all 40 bits.
	KeySize = 5

	// ChallengeSize is the size of the nonce exchanged during the
	// drive/host handshake.
	ChallengeSize = 10

	// SectorSize is the size of a DVD-Video sector.
	SectorSize = 2048

	// SectorHeaderSize is the size of the MPEG-PS pack and system header
	// region at the start of each sector, which is never scrambled.
	SectorHeaderSize = 128
)
