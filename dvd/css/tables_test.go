package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTab3Period verifies that the 512-entry keystream table is the
// 8-byte feedback pattern replicated 64 times.
func TestTab3Period(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	pattern := [8]byte{0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff}
	for i, v := range cssTab3 {
		is.Equal(pattern[i%8], v, "cssTab3[%d]", i)
	}
}

// TestTab4IsBitReverse verifies that cssTab4 reverses the bits of its
// index within a byte.
func TestTab4IsBitReverse(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for i := 0; i < 256; i++ {
		var reversed byte
		for bit := uint(0); bit < 8; bit++ {
			if i>>bit&1 == 1 {
				reversed |= 1 << (7 - bit)
			}
		}
		is.Equal(reversed, cssTab4[i], "cssTab4[%d]", i)
	}
	is.EqualValues(0x80, cssTab4[0x01])
}

// TestTab5IsComplementOfTab4 verifies that the sector output table is the
// bitwise complement of the key output table.
func TestTab5IsComplementOfTab4(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for i := 0; i < 256; i++ {
		is.Equal(cssTab4[i]^0xff, cssTab5[i], "cssTab5[%d]", i)
	}
}

// TestTab2IsLinear verifies that the 17-bit register byte-step table is
// linear over GF(2): the value at any index is the XOR of the values at
// its set bits.
func TestTab2IsLinear(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.EqualValues(0, cssTab2[0])
	for i := 0; i < 256; i++ {
		var v byte
		for bit := uint(0); bit < 8; bit++ {
			if i>>bit&1 == 1 {
				v ^= cssTab2[1<<bit]
			}
		}
		is.Equal(v, cssTab2[i], "cssTab2[%d]", i)
	}
}

// TestTab1IsPermutation verifies that the mangling table is a bijection,
// which the title key and sector scrambling directions rely on.
func TestTab1IsPermutation(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var seen [256]bool
	for _, v := range cssTab1 {
		is.False(seen[v], "cssTab1 value 0x%02x appears twice", v)
		seen[v] = true
	}
}

// TestPermutationTables verifies that the challenge and variant
// permutation rows are proper permutations of their index ranges.
func TestPermutationTables(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for row := range permChallenge {
		var seen [10]bool
		for _, v := range permChallenge[row] {
			is.False(seen[v], "permChallenge[%d] index %d appears twice", row, v)
			seen[v] = true
		}
	}

	for row := range permVariant {
		var seen [32]bool
		for _, v := range permVariant[row] {
			is.False(seen[v], "permVariant[%d] index %d appears twice", row, v)
			seen[v] = true
		}
	}
}

// TestPlayerKeys verifies the player key table holds the expected number
// of distinct 40-bit keys.
func TestPlayerKeys(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Len(playerKeys, 32)

	seen := make(map[[KeySize]byte]bool)
	for _, key := range playerKeys {
		is.False(seen[key], "player key %x appears twice", key)
		seen[key] = true
	}
}
