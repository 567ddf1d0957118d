package phi

import "testing"

func TestLSBIndexMasksLowBits(t *testing.T) {
	v := make([]byte, 16)
	v[len(v)-1] = 0xFF // low byte all ones

	got := LSBIndex(v, 3)
	if want := uint64(0x7); got != want {
		t.Fatalf("LSBIndex = %#x, want %#x", got, want)
	}
}

func xorHPrime(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

func TestLSBPreservesWordCount(t *testing.T) {
	garlic := uint8(2)
	dim := 1 << garlic
	wordSize := 8
	v := make([]byte, dim*wordSize)
	for i := range v {
		v[i] = byte(i + 1)
	}
	mu := make([]byte, wordSize)

	out := LSB(xorHPrime, garlic, v, wordSize, mu)

	if len(out) != dim*wordSize {
		t.Fatalf("output length = %d, want %d", len(out), dim*wordSize)
	}
}

func TestIdentityIsNoOp(t *testing.T) {
	v := []byte{1, 2, 3, 4}
	out := Identity(xorHPrime, 2, v, 4, nil)

	if &out[0] != &v[0] {
		t.Fatal("Identity must return the same underlying slice")
	}
}
