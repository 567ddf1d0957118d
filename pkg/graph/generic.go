// Package graph implements F, the graph-based hashing layer: a λ-pass
// chain over 2^garlic state words where each pass's visitation order is
// driven by a bit-reversal-family index function. BRG, SBRG and GRG share
// one driver (genericGraphBasedHash); the double-butterfly graph has its
// own two-dimensional index in doublebutterfly.go.
package graph

import cbytes "github.com/r2unit/catena/pkg/bytes"

// H is the full hash primitive.
type H func(x []byte) []byte

// HPrime is the reduced hash primitive used to chain state words together.
type HPrime func(a, b []byte) []byte

// HFirst seeds the first element of a pass: w0 = H(vAlpha||vBeta), followed
// by H(1||w0), H(2||w0), ... until the result spans k/n words of n bytes
// each (k is the state word size, n is H's output size).
func HFirst(h H, vAlpha, vBeta []byte, n, k int) []byte {
	w0 := h(append(append([]byte{}, vAlpha...), vBeta...))

	l := k / n
	out := make([]byte, 0, k)
	out = append(out, w0...)

	for i := 1; i < l; i++ {
		wi := h(append([]byte{byte(i)}, w0...))
		out = append(out, wi...)
	}
	return out
}

// IndexFunc maps a pass position i (and the garlic, which fixes the
// dimension 2^garlic) to the state index to mix in next.
type IndexFunc func(i uint64, garlic uint8) uint64

// BRGIndex is the bit-reversal index: reverse the 64-bit binary
// representation of i and shift right so only the top garlic bits remain.
func BRGIndex(i uint64, garlic uint8) uint64 {
	if garlic == 0 {
		return 0
	}
	return reverseBits(i) >> (64 - garlic)
}

// SBRGIndex is the shifted bit-reversal index: BRG offset by a constant c
// and reduced modulo 2^garlic.
func SBRGIndex(c uint64) IndexFunc {
	return func(i uint64, garlic uint8) uint64 {
		return (BRGIndex(i, garlic) + c) % (uint64(1) << garlic)
	}
}

// GRGIndex is the Gray-code bit-reversal index, parameterized by l (the
// shift divisor), matching Lanternfly's F parameterization.
func GRGIndex(l uint8) IndexFunc {
	return func(i uint64, garlic uint8) uint64 {
		shift := ceilDiv(int(garlic), int(l))
		return BRGIndex(i, garlic) ^ (BRGIndex(^i, garlic) >> uint(shift))
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func reverseBits(x uint64) uint64 {
	var out uint64
	for i := 0; i < 64; i++ {
		out <<= 1
		out |= x & 1
		x >>= 1
	}
	return out
}

// genericGraphBasedHash runs lambda passes over v (2^garlic words of
// wordSize bytes), each pass replacing v[i] with H′(r[i-1] || v[index(i)])
// chained from a seed produced by HFirst.
func genericGraphBasedHash(h H, hPrime HPrime, index IndexFunc, lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte {
	dim := 1 << garlic

	for pass := 0; pass < lambda; pass++ {
		r := make([][]byte, dim)
		r[0] = HFirst(h, cbytes.GetWord(v, wordSize, dim-1), cbytes.GetWord(v, wordSize, int(index(0, garlic))), n, k)

		for i := 1; i < dim; i++ {
			r[i] = hPrime(r[i-1], cbytes.GetWord(v, wordSize, int(index(uint64(i), garlic))))
		}

		for i := 0; i < dim; i++ {
			cbytes.SetWord(v, wordSize, i, r[i])
		}
	}

	return v
}

// BitReversalHash is F instantiated with BRG.
func BitReversalHash(h H, hPrime HPrime, lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte {
	return genericGraphBasedHash(h, hPrime, BRGIndex, lambda, v, wordSize, n, k, garlic)
}

// ShiftedBitReversalHash is F instantiated with SBRG.
func ShiftedBitReversalHash(h H, hPrime HPrime, c uint64, lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte {
	return genericGraphBasedHash(h, hPrime, SBRGIndex(c), lambda, v, wordSize, n, k, garlic)
}

// GrayBitReversalHash is F instantiated with GRG.
func GrayBitReversalHash(h H, hPrime HPrime, l uint8, lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte {
	return genericGraphBasedHash(h, hPrime, GRGIndex(l), lambda, v, wordSize, n, k, garlic)
}
