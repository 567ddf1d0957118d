// Package instances assembles catena.Algorithms bundles for the named
// Catena parameterizations (Dragonfly, Butterfly, Horsefly, Stonefly,
// Lanternfly, and their -Full variants) plus the catena.Catena values that
// use them. Mydasfly is deliberately left unresolved; see mydasfly.go.
package instances

import (
	"github.com/r2unit/catena/pkg/catena"
	"github.com/r2unit/catena/pkg/fasthash"
	"github.com/r2unit/catena/pkg/gamma"
	"github.com/r2unit/catena/pkg/graph"
	"github.com/r2unit/catena/pkg/hash"
	"github.com/r2unit/catena/pkg/phi"
)

// hPrimeImpl is the stateful-or-stateless H′ primitive a bundle plugs in.
// Blake2b-1 carries mutable round-counter state that must be reset between
// flap's Γ/F/Φ phases; the Argon2 and full-Blake2b variants are pure
// functions whose Reset is a no-op.
type hPrimeImpl interface {
	Hash(a, b []byte) []byte
	Reset()
}

type blake2b1HPrime struct{ state *fasthash.Blake2b1 }

func newBlake2b1HPrime() *blake2b1HPrime {
	return &blake2b1HPrime{state: fasthash.NewBlake2b1()}
}

func (w *blake2b1HPrime) Hash(a, b []byte) []byte {
	return w.state.Hash(append(append([]byte{}, a...), b...))
}

func (w *blake2b1HPrime) Reset() { w.state.Reset() }

// statelessHPrime adapts a pure two-operand function (full Blake2b used as
// H′, or one of the Argon2 compression variants) to hPrimeImpl. Its Reset
// is a no-op, matching the Algorithms trait's default for primitives that
// carry no mutable state.
type statelessHPrime struct {
	fn func(a, b []byte) []byte
}

func (w *statelessHPrime) Hash(a, b []byte) []byte { return w.fn(a, b) }
func (w *statelessHPrime) Reset()                  {}

func fullBlake2bAsHPrime() *statelessHPrime {
	return &statelessHPrime{fn: func(a, b []byte) []byte {
		return hash.Sum512(append(append([]byte{}, a...), b...))
	}}
}

func argonGLAsHPrime() *statelessHPrime {
	return &statelessHPrime{fn: fasthash.ArgonGL}
}

func argonGBAsHPrime() *statelessHPrime {
	return &statelessHPrime{fn: fasthash.ArgonGB}
}

// gammaFunc and friends let each bundle pick its Γ/F/Φ shape without every
// bundle reimplementing catena.Algorithms from scratch.
type gammaFunc func(garlic uint8, state, salt []byte, k int) []byte
type fFunc func(lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte
type phiFunc func(garlic uint8, v []byte, wordSize int, mu []byte) []byte

func identityGamma(_ uint8, state, _ []byte, _ int) []byte { return state }

func identityPhi(_ uint8, v []byte, _ int, _ []byte) []byte { return v }

// bundle is the concrete catena.Algorithms implementation every named
// instance constructs with a different choice of hPrime/gamma/f/phi.
type bundle struct {
	hprime hPrimeImpl
	gamma  gammaFunc
	f      fFunc
	phi    phiFunc
}

var _ catena.Algorithms = (*bundle)(nil)

func (b *bundle) H(x []byte) []byte { return hash.Sum512(x) }

func (b *bundle) HPrime(a, c []byte) []byte { return b.hprime.Hash(a, c) }

func (b *bundle) ResetHPrime() { b.hprime.Reset() }

func (b *bundle) Gamma(garlic uint8, state, salt []byte, k int) []byte {
	return b.gamma(garlic, state, salt, k)
}

func (b *bundle) F(lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte {
	return b.f(lambda, v, wordSize, n, k, garlic)
}

func (b *bundle) Phi(garlic uint8, v []byte, wordSize int, mu []byte) []byte {
	return b.phi(garlic, v, wordSize, mu)
}

func saltMixGamma(hp hPrimeImpl) gammaFunc {
	return func(garlic uint8, state, salt []byte, k int) []byte {
		return gamma.SaltMix(hash.Sum512, hp.Hash, garlic, state, salt, k)
	}
}

func brgF(hp hPrimeImpl) fFunc {
	return func(lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte {
		return graph.BitReversalHash(hash.Sum512, hp.Hash, lambda, v, wordSize, n, k, garlic)
	}
}

func grgF(hp hPrimeImpl, l uint8) fFunc {
	return func(lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte {
		return graph.GrayBitReversalHash(hash.Sum512, hp.Hash, l, lambda, v, wordSize, n, k, garlic)
	}
}

func dbhF(hp hPrimeImpl) fFunc {
	return func(lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte {
		return graph.DoubleButterflyHash(hash.Sum512, hp.Hash, lambda, v, wordSize, n, k, garlic)
	}
}

func lsbPhi(hp hPrimeImpl) phiFunc {
	return func(garlic uint8, v []byte, wordSize int, mu []byte) []byte {
		return phi.LSB(hp.Hash, garlic, v, wordSize, mu)
	}
}
