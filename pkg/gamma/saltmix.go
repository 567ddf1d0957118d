// Package gamma implements Γ, the salt-dependent state-mixing layer run
// once per flap. SaltMix is the canonical instantiation: it derives a
// 1024-bit PRNG seed from the salt and uses xorshift1024★ to pick pairs of
// state words to mix with H′.
package gamma

import cbytes "github.com/r2unit/catena/pkg/bytes"

// HPrime is the reduced hash primitive SaltMix mixes state words with. It
// takes the two words to combine separately rather than pre-concatenated,
// since the canonical H′ primitives (Blake2b-1, Argon2-G_L/G_B) each have
// their own natural two-operand call shape.
type HPrime func(a, b []byte) []byte

// H is the full hash primitive used to derive the PRNG seed from the salt.
type H func(x []byte) []byte

// SaltMix mutates state in place, running 2^ceil(garlic*3/4) rounds of
// xorshift1024★-selected word mixing. k is the state's word size in bytes.
func SaltMix(h H, hPrime HPrime, garlic uint8, state []byte, salt []byte, k int) []byte {
	hash1 := h(salt)
	hash2 := h(hash1)

	r := make([]uint64, 0, 16)
	r = append(r, cbytes.VecU8ToVecU64(hash1)...)
	r = append(r, cbytes.VecU8ToVecU64(hash2)...)

	var p uint8
	rounds := uint64(1) << ceilGarlicTimes3Over4(garlic)

	for i := uint64(0); i < rounds; i++ {
		j1 := int(xorshift1024Star(r, &p, garlic))
		j2 := int(xorshift1024Star(r, &p, garlic))

		newValue := hPrime(cbytes.GetWord(state, k, j1), cbytes.GetWord(state, k, j2))

		cbytes.SetWord(state, k, j1, newValue)
	}

	return state
}

func ceilGarlicTimes3Over4(garlic uint8) uint {
	num := int(garlic) * 3
	return uint((num + 3) / 4)
}

// xorshift1024Star is Vigna's xorshift1024★ generator. r is the 16-word
// state array, p the rotating index into it; both are mutated in place.
// The result's top garlic bits select a state-word index.
func xorshift1024Star(r []uint64, p *uint8, garlic uint8) uint64 {
	s0 := r[*p]
	*p = (*p + 1) % 16
	s1 := r[*p]

	s1 ^= s1 << 31
	s1 ^= s1 >> 11
	s0 ^= s0 >> 30

	r[*p] = s0 ^ s1

	idx := r[*p] * 1181783497276652981
	return idx >> (64 - garlic)
}
