package instances

import (
	"testing"

	"github.com/r2unit/catena/pkg/catena"
	"github.com/r2unit/catena/pkg/gamma"
	"github.com/r2unit/catena/pkg/graph"
	"github.com/r2unit/catena/pkg/hash"
)

// miniBundle demonstrates that catena.Algorithms is implementable outside
// pkg/instances: a caller with its own primitive choices (here, full
// Blake2b reused as both H and H′, no Φ layer) can assemble a working
// Catena instance without touching this package's named bundles.
type miniBundle struct{}

func (miniBundle) H(x []byte) []byte { return hash.Sum512(x) }

func (miniBundle) HPrime(a, b []byte) []byte {
	return hash.Sum512(append(append([]byte{}, a...), b...))
}

func (miniBundle) ResetHPrime() {}

func (miniBundle) Gamma(garlic uint8, state, salt []byte, k int) []byte {
	return gamma.SaltMix(hash.Sum512, miniBundle{}.HPrime, garlic, state, salt, k)
}

func (miniBundle) F(lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte {
	return graph.BitReversalHash(hash.Sum512, miniBundle{}.HPrime, lambda, v, wordSize, n, k, garlic)
}

func (miniBundle) Phi(_ uint8, v []byte, _ int, _ []byte) []byte { return v }

func TestCustomAlgorithmsBundleHashes(t *testing.T) {
	c := &catena.Catena{
		Algorithms: miniBundle{},
		VID:        []byte("mini-custom"),
		N:          64,
		K:          64,
		GLow:       1,
		GHigh:      2,
		Lambda:     1,
	}

	out, err := c.Hash([]byte("hunter2"), []byte("saltsaltsaltsalt"), nil, 32)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if len(out) != 32 {
		t.Fatalf("Hash output length = %d, want 32", len(out))
	}

	again, err := c.Hash([]byte("hunter2"), []byte("saltsaltsaltsalt"), nil, 32)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if string(out) != string(again) {
		t.Fatal("custom bundle's Hash is not deterministic")
	}
}
