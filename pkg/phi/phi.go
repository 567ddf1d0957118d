// Package phi implements Φ, the optional state-mixing layer flap applies
// after Γ and F. LSB is the canonical instantiation; Identity is the
// no-op used by bundles that skip this layer.
package phi

import cbytes "github.com/r2unit/catena/pkg/bytes"

// HPrime is the reduced hash primitive used to chain state words.
type HPrime func(a, b []byte) []byte

// IndexFunc maps a word and a garlic value to the next index to mix.
type IndexFunc func(v []byte, garlic uint8) uint64

// LSBIndex reads the last 8 bytes of v as a big-endian uint64 and returns
// its low garlic bits.
func LSBIndex(v []byte, garlic uint8) uint64 {
	last8 := v[len(v)-8:]
	value := cbytes.BEToUint64(last8)
	mask := (uint64(1) << garlic) - 1
	return value & mask
}

// Layer runs the shared Φ structure: v[0] = H′(v[2^garlic-1] || v[index(mu)]),
// then v[i] = H′(v[i-1] || v[index(v[i-1])]) for i in 1..2^garlic. mu is the
// last word produced by F, used to index the very first mix.
func Layer(hPrime HPrime, garlic uint8, v []byte, wordSize int, index IndexFunc, mu []byte) []byte {
	dim := 1 << garlic

	j := index(mu, garlic)
	v0 := hPrime(cbytes.GetWord(v, wordSize, dim-1), cbytes.GetWord(v, wordSize, int(j)))
	cbytes.SetWord(v, wordSize, 0, v0)

	for i := 1; i < dim; i++ {
		prev := cbytes.GetWord(v, wordSize, i-1)
		j := index(prev, garlic)
		vi := hPrime(prev, cbytes.GetWord(v, wordSize, int(j)))
		cbytes.SetWord(v, wordSize, i, vi)
	}

	return v
}

// LSB is Φ instantiated with the LSB index function.
func LSB(hPrime HPrime, garlic uint8, v []byte, wordSize int, mu []byte) []byte {
	return Layer(hPrime, garlic, v, wordSize, LSBIndex, mu)
}

// Identity is the no-op Φ: state passes through unchanged.
func Identity(_ HPrime, _ uint8, v []byte, _ int, _ []byte) []byte {
	return v
}
