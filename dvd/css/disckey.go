package css

const (
	// verifierOffset is the slot holding the disc key encrypted with
	// itself. All known media place it first.
	verifierOffset = 0

	// discKeySlots is the number of 5-byte slots in the disc key block:
	// the verifier plus one slot per candidate player key.
	discKeySlots = 409
)

// DecryptDiscKey recovers the disc key from the 2048-byte disc key block.
//
// Every known player key is tried against every slot. A candidate is
// accepted when decrypting the verifier slot with it yields the candidate
// again, which only the real disc key does: the verifier is the disc key
// encrypted with itself.
//
// Returns ErrKeyNotFound when no player key produces a verified candidate.
// The block has 408 player key slots and only 32 keys are public, so a
// disc keyed exclusively to unleaked players is expected to fail here.
func DecryptDiscKey(encryptedKeys []byte) ([KeySize]byte, error) {
	var key [KeySize]byte

	if len(encryptedKeys) < discKeySlots*KeySize {
		return key, ErrInvalidSize
	}

	verifier := encryptedKeys[verifierOffset : verifierOffset+KeySize]

	for _, player := range playerKeys {
		for slot := 1; slot < discKeySlots; slot++ {
			candidate := DecryptKey(0x00, player[:], encryptedKeys[slot*KeySize:(slot+1)*KeySize])
			verify := DecryptKey(0x00, candidate[:], verifier)
			if candidate == verify {
				return candidate, nil
			}
		}
	}

	return key, ErrKeyNotFound
}
