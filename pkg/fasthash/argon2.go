package fasthash

import (
	"fmt"

	cbytes "github.com/r2unit/catena/pkg/bytes"
)

// blockBytes is the width of the two inputs the Argon2-style compression
// function mixes together: two 1024-byte words, matching the k=1024 word
// size the Horsefly/Stonefly/Lanternfly instance bundles use for H′.
const blockBytes = 1024

// gFunc is the Blake2b-derived mixing primitive a compression round applies
// to each group of four lanes. G_L uses the plain addition chain; G_B adds
// a quadratic term in the low 32 bits of each operand, the ASIC-resistance
// trick Argon2 introduced.
type gFunc func(a, b, c, d *uint64)

func gLinear(a, b, c, d *uint64) {
	*a = *a + *b
	*d = rotr64(*d^*a, 32)
	*c = *c + *d
	*b = rotr64(*b^*c, 24)
	*a = *a + *b
	*d = rotr64(*d^*a, 16)
	*c = *c + *d
	*b = rotr64(*b^*c, 63)
}

func gQuadratic(a, b, c, d *uint64) {
	*a = *a + *b + 2*uint64(uint32(*a))*uint64(uint32(*b))
	*d = rotr64(*d^*a, 32)
	*c = *c + *d + 2*uint64(uint32(*c))*uint64(uint32(*d))
	*b = rotr64(*b^*c, 24)
	*a = *a + *b + 2*uint64(uint32(*a))*uint64(uint32(*b))
	*d = rotr64(*d^*a, 16)
	*c = *c + *d + 2*uint64(uint32(*c))*uint64(uint32(*d))
	*b = rotr64(*b^*c, 63)
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// permute applies the column-then-diagonal mixing pattern to 16 lanes,
// the same grouping Blake2b's compression uses for its message schedule,
// but with no message words injected (the two compressed inputs already
// carry all the entropy via the initial XOR).
func permute(v [16]uint64, g gFunc) [16]uint64 {
	g(&v[0], &v[4], &v[8], &v[12])
	g(&v[1], &v[5], &v[9], &v[13])
	g(&v[2], &v[6], &v[10], &v[14])
	g(&v[3], &v[7], &v[11], &v[15])

	g(&v[0], &v[5], &v[10], &v[15])
	g(&v[1], &v[6], &v[11], &v[12])
	g(&v[2], &v[7], &v[8], &v[13])
	g(&v[3], &v[4], &v[9], &v[14])
	return v
}

// cfArgon2 is the shared compression shape: XOR the two inputs, run a
// row-wise permutation pass (lanes read little-endian), then a column-wise
// pass that regroups two adjacent lanes from every row (read big-endian),
// byte-swap each lane, and XOR the permuted result back against the
// original XOR. g selects G_L (linear, fast) or G_B (quadratic,
// ASIC-resistant).
func cfArgon2(x, y []byte, g gFunc) []byte {
	if len(x) != blockBytes || len(y) != blockBytes {
		panic(fmt.Sprintf("fasthash: cfArgon2: inputs must each be %d bytes", blockBytes))
	}

	r := cbytes.XOR(x, y)
	q := make([]byte, blockBytes)

	for row := 0; row < 8; row++ {
		var v [16]uint64
		for i := 0; i < 16; i++ {
			v[i] = cbytes.LEToUint64(r[row*128+i*8:])
		}
		v = permute(v, g)
		for i := 0; i < 16; i++ {
			copy(q[row*128+i*8:row*128+i*8+8], leBytes(v[i]))
		}
	}

	for colPair := 0; colPair < 8; colPair++ {
		var v [16]uint64
		idx := 0
		for row := 0; row < 8; row++ {
			for c := 0; c < 2; c++ {
				col := colPair*2 + c
				v[idx] = cbytes.BEToUint64(q[row*128+col*8:])
				idx++
			}
		}
		v = permute(v, g)
		idx = 0
		for row := 0; row < 8; row++ {
			for c := 0; c < 2; c++ {
				col := colPair*2 + c
				copy(q[row*128+col*8:row*128+col*8+8], cbytes.BEUint64(v[idx]))
				idx++
			}
		}
	}

	cbytes.ReverseWords(q, 8)
	return cbytes.XOR(r, q)
}

func leBytes(v uint64) []byte {
	return []byte{
		byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24),
		byte(v >> 32), byte(v >> 40), byte(v >> 48), byte(v >> 56),
	}
}

// ArgonGL is the H′ compression variant built on the linear G function.
// It requires x and y to each be 1024 bytes and panics otherwise (a
// domain error per the malformed-internal-input contract).
func ArgonGL(x, y []byte) []byte {
	return cfArgon2(x, y, gLinear)
}

// ArgonGB is the H′ compression variant built on the quadratic G function.
func ArgonGB(x, y []byte) []byte {
	return cfArgon2(x, y, gQuadratic)
}
