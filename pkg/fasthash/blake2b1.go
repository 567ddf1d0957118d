// Package fasthash implements Catena's H′ primitives: Blake2b-1, a
// single-round reduced Blake2b variant with mutable round-counter state,
// and the Argon2-style G_L/G_B compression functions.
package fasthash

import cbytes "github.com/r2unit/catena/pkg/bytes"

var blake2b1IV = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// blake2b1IV0 fingerprints Blake2b-1: its first state word differs from
// Blake2b's so the two hashes can never collide on the same input.
const blake2b1IV0 = 0x6a09e667f2bdc948

var blake2b1Sigma = [12][16]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
}

const blake2b1BlockLen = 128

// Blake2b1 is the mutable H′ state object: a single Blake2b round selected
// by an internal counter r that advances by one (mod 12) on every call to
// Hash. Non-reentrant and non-thread-safe by design, matching the engine's
// single-threaded concurrency model — callers must Reset between
// unrelated chains of Hash calls.
type Blake2b1 struct {
	r   uint8
	h   [8]uint64
	v   [16]uint64
	t0  uint64
	t1  uint64
}

// NewBlake2b1 returns a freshly reset Blake2b-1 state.
func NewBlake2b1() *Blake2b1 {
	b := &Blake2b1{}
	b.Reset()
	return b
}

// SetR sets the current round number to r % 12.
func (b *Blake2b1) SetR(r uint8) {
	b.r = r % 12
}

// IncreaseR advances the round counter by one, wrapping from 11 to 0.
func (b *Blake2b1) IncreaseR() {
	b.r = (b.r + 1) % 12
}

// Reset clears all mutable state, including the round counter, back to
// the Blake2b-1 initial values.
func (b *Blake2b1) Reset() {
	b.r = 0
	b.t0, b.t1 = 0, 0
	b.v = [16]uint64{}
	b.h = [8]uint64{
		blake2b1IV0,
		blake2b1IV[1], blake2b1IV[2], blake2b1IV[3],
		blake2b1IV[4], blake2b1IV[5], blake2b1IV[6], blake2b1IV[7],
	}
}

// Hash compresses exactly one 128-byte block with the single round
// selected by the current counter, then advances the counter. x must be
// 128 bytes.
func (b *Blake2b1) Hash(x []byte) []byte {
	if len(x) != blake2b1BlockLen {
		panic("fasthash: Blake2b1.Hash: input must be 128 bytes")
	}

	b.t0 += blake2b1BlockLen
	if b.t0 == 0 {
		b.t1++
	}

	b.compress(x)

	out := make([]byte, 0, 64)
	for i := 0; i < 8; i++ {
		out = append(out, cbytes.LEUint64(b.h[i])...)
	}

	b.IncreaseR()
	return out
}

func (b *Blake2b1) initializeV() {
	b.v = [16]uint64{
		b.h[0], b.h[1], b.h[2], b.h[3],
		b.h[4], b.h[5], b.h[6], b.h[7],
		blake2b1IV[0], blake2b1IV[1], blake2b1IV[2], blake2b1IV[3],
		b.t0 ^ blake2b1IV[4], b.t1 ^ blake2b1IV[5],
		^blake2b1IV[6], blake2b1IV[7],
	}
}

func (b *Blake2b1) compress(message []byte) {
	b.initializeV()

	var m [16]uint64
	for i := 0; i < 16; i++ {
		m[i] = cbytes.LEToUint64(message[i*8:])
	}

	s := &blake2b1Sigma[b.r]

	b.g(m[s[0]], m[s[1]], 0, 4, 8, 12)
	b.g(m[s[2]], m[s[3]], 1, 5, 9, 13)
	b.g(m[s[4]], m[s[5]], 2, 6, 10, 14)
	b.g(m[s[6]], m[s[7]], 3, 7, 11, 15)
	b.g(m[s[8]], m[s[9]], 0, 5, 10, 15)
	b.g(m[s[10]], m[s[11]], 1, 6, 11, 12)
	b.g(m[s[12]], m[s[13]], 2, 7, 8, 13)
	b.g(m[s[14]], m[s[15]], 3, 4, 9, 14)

	for i := 0; i < 8; i++ {
		b.h[i] ^= b.v[i] ^ b.v[i+8]
	}
}

func (b *Blake2b1) g(m1, m2 uint64, posA, posB, posC, posD int) {
	b.v[posA] = b.v[posA] + b.v[posB] + m1
	b.v[posD] = rotr64(b.v[posD]^b.v[posA], 32)
	b.v[posC] = b.v[posC] + b.v[posD]
	b.v[posB] = rotr64(b.v[posB]^b.v[posC], 24)

	b.v[posA] = b.v[posA] + b.v[posB] + m2
	b.v[posD] = rotr64(b.v[posD]^b.v[posA], 16)
	b.v[posC] = b.v[posC] + b.v[posD]
	b.v[posB] = rotr64(b.v[posB]^b.v[posC], 63)
}
