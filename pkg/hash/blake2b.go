// Package hash implements the full, unkeyed Blake2b-512 hash used as
// Catena's canonical H primitive. Sum512 gives the 64-byte digest every
// named instance bundle in this module uses for H; New and Sum also accept
// output sizes from 1 to 64 bytes.
package hash

import "encoding/binary"

const (
	blockSize = 128
	rounds    = 12
)

var iv = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var sigma = [12][16]uint8{
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

// Blake2b is a streaming Blake2b hasher with a fixed output width.
type Blake2b struct {
	h      [8]uint64
	t      [2]uint64
	f      [2]uint64
	buf    [blockSize]byte
	bufLen int
	size   int
}

// New creates a Blake2b hasher with the given output size in bytes (1..64).
func New(size int) *Blake2b {
	if size < 1 || size > 64 {
		panic("hash: Blake2b output size must be between 1 and 64")
	}
	b := &Blake2b{size: size}
	copy(b.h[:], iv[:])
	b.h[0] ^= 0x01010000 ^ uint64(size)
	return b
}

// Write absorbs more input into the running hash state.
func (b *Blake2b) Write(p []byte) (int, error) {
	nn := len(p)
	for len(p) > 0 {
		if b.bufLen == blockSize {
			b.compress(false)
			b.bufLen = 0
		}
		n := copy(b.buf[b.bufLen:], p)
		b.bufLen += n
		p = p[n:]
	}
	return nn, nil
}

// Sum finalizes a copy of the hasher and appends the digest to in.
func (b *Blake2b) Sum(in []byte) []byte {
	cp := *b
	digest := cp.finalize()
	return append(in, digest[:b.size]...)
}

func (b *Blake2b) finalize() []byte {
	for i := b.bufLen; i < len(b.buf); i++ {
		b.buf[i] = 0
	}
	b.compress(true)

	out := make([]byte, 64)
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], b.h[i])
	}
	return out
}

func (b *Blake2b) compress(last bool) {
	b.t[0] += uint64(b.bufLen)
	if b.t[0] < uint64(b.bufLen) {
		b.t[1]++
	}
	if last {
		b.f[0] = 0xFFFFFFFFFFFFFFFF
	}

	var m [16]uint64
	for i := 0; i < 16; i++ {
		m[i] = binary.LittleEndian.Uint64(b.buf[i*8:])
	}

	v := [16]uint64{
		b.h[0], b.h[1], b.h[2], b.h[3],
		b.h[4], b.h[5], b.h[6], b.h[7],
		iv[0], iv[1], iv[2], iv[3],
		iv[4] ^ b.t[0], iv[5] ^ b.t[1],
		iv[6] ^ b.f[0], iv[7] ^ b.f[1],
	}

	for i := 0; i < rounds; i++ {
		s := &sigma[i]
		mix(&v, 0, 4, 8, 12, m[s[0]], m[s[1]])
		mix(&v, 1, 5, 9, 13, m[s[2]], m[s[3]])
		mix(&v, 2, 6, 10, 14, m[s[4]], m[s[5]])
		mix(&v, 3, 7, 11, 15, m[s[6]], m[s[7]])

		mix(&v, 0, 5, 10, 15, m[s[8]], m[s[9]])
		mix(&v, 1, 6, 11, 12, m[s[10]], m[s[11]])
		mix(&v, 2, 7, 8, 13, m[s[12]], m[s[13]])
		mix(&v, 3, 4, 9, 14, m[s[14]], m[s[15]])
	}

	for i := 0; i < 8; i++ {
		b.h[i] ^= v[i] ^ v[i+8]
	}
}

func mix(v *[16]uint64, a, b, c, d int, x, y uint64) {
	v[a] = v[a] + v[b] + x
	v[d] = rotr64(v[d]^v[a], 32)
	v[c] = v[c] + v[d]
	v[b] = rotr64(v[b]^v[c], 24)
	v[a] = v[a] + v[b] + y
	v[d] = rotr64(v[d]^v[a], 16)
	v[c] = v[c] + v[d]
	v[b] = rotr64(v[b]^v[c], 63)
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// Sum512 computes the 64-byte Blake2b digest of data in one call. This is
// the canonical H primitive every instance bundle wires in.
func Sum512(data []byte) []byte {
	h := New(64)
	h.Write(data)
	return h.Sum(nil)
}

// Sum computes a Blake2b digest of the given output size in one call.
func Sum(data []byte, size int) []byte {
	h := New(size)
	h.Write(data)
	return h.Sum(nil)
}
