// Package catena implements the Catena memory-hard password-scrambling
// framework: a single generic iteration (flap) parameterized over five
// pluggable primitives, driving hashing, key derivation, client-independent
// cost upgrades, a server-relief split, and proof-of-work modes.
//
// The engine is strictly single-threaded and non-reentrant: Algorithms
// implementations hold mutable H′ state (e.g. Blake2b-1's round counter)
// that a concurrent call would corrupt. Callers needing concurrency must
// use one Catena value (and its Algorithms) per goroutine.
package catena

import (
	"math"

	cbytes "github.com/r2unit/catena/pkg/bytes"
)

// Algorithms bundles the five pluggable primitives a Catena instance runs
// on: H (full hash), H′ (reduced, stateful hash), Γ (salt-dependent state
// mixing), F (graph-based hashing), and Φ (optional LSB-indexed mixing).
//
// A caller assembling a custom instance only needs to implement this
// interface; see pkg/instances for the canonical bundles and
// pkg/instances/custom_test.go for an example of wiring up a bespoke one.
type Algorithms interface {
	H(x []byte) []byte
	HPrime(a, b []byte) []byte
	ResetHPrime()
	Gamma(garlic uint8, state, salt []byte, k int) []byte
	F(lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte
	Phi(garlic uint8, v []byte, wordSize int, mu []byte) []byte
}

// Catena is one configured instance: its primitives plus the parameters
// that distinguish named bundles (Dragonfly, Butterfly, ...) from each
// other — output/word sizes, the garlic cost-factor range, and λ.
type Catena struct {
	Algorithms Algorithms
	VID        []byte
	N          int // H output size in bytes
	K          int // state word size in bytes
	GLow       uint8
	GHigh      uint8
	Lambda     int
}

func (c *Catena) h(x []byte) []byte { return c.Algorithms.H(x) }

// Hash runs Catena in password-scrambling mode: derive an m-byte digest
// from pwd, salt and optional associated data ad.
func (c *Catena) Hash(pwd, salt, ad []byte, m int) ([]byte, error) {
	if err := c.validateInputs(pwd, salt, m); err != nil {
		return nil, err
	}
	tweak := c.computeTweak(DomainPasswordScrambling, uint16(m), uint16(len(salt)), ad)
	x := c.h3(tweak, pwd, salt)
	return c.catenaCore(x, salt, c.GLow, c.GHigh, m), nil
}

// KeyedHashing XORs a Hash result with a keystream derived from serverKey,
// uid and gHigh, binding the digest to a server-held secret key.
func (c *Catena) KeyedHashing(pwd, salt, ad, uid, serverKey []byte, gHigh uint8, m int) ([]byte, error) {
	y, err := c.Hash(pwd, salt, ad, m)
	if err != nil {
		return nil, err
	}
	stream := c.computeKeystream(serverKey, uid, gHigh, m)
	return cbytes.XOR(y, stream), nil
}

// GenerateKey derives a keyLen-byte key from pwd, salt, ad and keyID,
// expanding a full-width catena result, computed under the key-derivation
// tweak domain, through the key-generation loop.
func (c *Catena) GenerateKey(pwd, salt, ad, keyID []byte, keyLen int) ([]byte, error) {
	if err := c.validateInputs(pwd, salt, c.N); err != nil {
		return nil, err
	}
	tweak := c.computeTweak(DomainKeyDerivation, uint16(c.N), uint16(len(salt)), ad)
	y := c.catenaCore(c.h3(tweak, pwd, salt), salt, c.GLow, c.GHigh, c.N)
	return c.keyGeneration(y, keyID, keyLen), nil
}

// keyGeneration expands x into keyLen bytes of output:
// H(LE16(i)||keyID||LE16(keyLen)||x) for i = 1..ceil(keyLen/n)+1, truncated.
func (c *Catena) keyGeneration(x, keyID []byte, keyLen int) []byte {
	limit := int(math.Ceil(float64(keyLen)/float64(c.N))) + 1
	out := make([]byte, 0, limit*c.N)
	for i := 1; i < limit; i++ {
		buf := cbytes.LE16(uint16(i))
		buf = append(buf, keyID...)
		buf = append(buf, cbytes.LE16(uint16(keyLen))...)
		buf = append(buf, x...)
		out = append(out, c.h(buf)...)
	}
	if len(out) > keyLen {
		out = out[:keyLen]
	}
	return out
}

// ClientIndependentUpdate upgrades a previously computed hash to a higher
// garlic cost factor without the password: it resumes the catena loop at
// oldGHigh+1 using oldHash as the running state. newGHigh must exceed
// oldGHigh.
func (c *Catena) ClientIndependentUpdate(oldHash, salt []byte, oldGHigh, newGHigh uint8, m int) ([]byte, error) {
	if newGHigh <= oldGHigh {
		return nil, newValidationError("client_independent_update: new garlic %d must exceed old garlic %d", newGHigh, oldGHigh)
	}
	x := oldHash
	for g := oldGHigh + 1; g <= newGHigh; g++ {
		if len(x) < c.N {
			x = cbytes.ZeroPad(x, c.N-m)
		}
		x = c.flap(g, x, salt)
		x = c.h(append(cbytes.LE1(g), x...))
		x = truncate(x, m)
	}
	return x, nil
}

// KeyedClientIndependentUpdate is ClientIndependentUpdate composed with the
// same keystream XOR KeyedHashing applies, keyed to the new garlic level.
func (c *Catena) KeyedClientIndependentUpdate(oldHash, salt, uid, serverKey []byte, oldGHigh, newGHigh uint8, m int) ([]byte, error) {
	y, err := c.ClientIndependentUpdate(oldHash, salt, oldGHigh, newGHigh, m)
	if err != nil {
		return nil, err
	}
	stream := c.computeKeystream(serverKey, uid, newGHigh, m)
	return cbytes.XOR(y, stream), nil
}

// ClientPrep computes the client-side share of a server-relief split: the
// loop runs gLow..gHigh *exclusive* of gHigh, and the final flap at gHigh
// omits the trailing H that every other iteration applies — the client
// returns raw state for the server to finish with ServerFinal. This
// asymmetry is intentional: it is what lets the server redo only the last,
// cheap step instead of the whole memory-hard computation.
func (c *Catena) ClientPrep(pwd, salt, ad []byte, m int) ([]byte, error) {
	if err := c.validateInputs(pwd, salt, m); err != nil {
		return nil, err
	}
	tweak := c.computeTweak(DomainPasswordScrambling, uint16(m), uint16(len(salt)), ad)
	x := c.h3(tweak, pwd, salt)

	x = c.flap((c.GLow+1)/2, x, salt)
	x = c.h(x)

	for g := c.GLow; g < c.GHigh; g++ {
		if len(x) < c.N {
			x = cbytes.ZeroPad(x, c.N-m)
		}
		x = c.flap(g, x, salt)
		x = c.h(append(cbytes.LE1(g), x...))
		x = truncate(x, m)
	}

	if len(x) < c.N {
		x = cbytes.ZeroPad(x, c.N-m)
	}
	x = c.flap(c.GHigh, x, salt)
	return x, nil
}

// ServerFinal completes a server-relief split started by ClientPrep: one
// more H over the garlic-tagged state, truncated to m bytes.
func (c *Catena) ServerFinal(x []byte, gHigh uint8, m int) []byte {
	return truncate(c.h(append(cbytes.LE1(gHigh), x...)), m)
}

// computeKeystream derives the keystream KeyedHashing and
// KeyedClientIndependentUpdate XOR into a Hash result:
// truncate(H(serverKey||userID||LE1(gHigh)||serverKey), m).
func (c *Catena) computeKeystream(serverKey, userID []byte, gHigh uint8, m int) []byte {
	return truncate(c.h4(serverKey, userID, cbytes.LE1(gHigh), serverKey), m)
}

// ProofOfWorkServer prepares a proof-of-work challenge. Mode 0 masks the
// trailing bits of salt so a client must brute-force them; mode 1 strips a
// length-bounded password down to empty, requiring the client to supply one
// of bit-length exactly p.
func (c *Catena) ProofOfWorkServer(salt, pwd []byte, p int, mode int) ([]byte, []byte, error) {
	switch mode {
	case 0:
		masked := append([]byte{}, salt...)
		mask := (uint64(1) << uint(8*(p/8+1))) - (uint64(1) << uint(p))
		maskBytes := cbytes.BEUint64(mask)
		for len(maskBytes) > 1 && maskBytes[0] == 0 {
			maskBytes = maskBytes[1:]
		}
		for i := 0; i < len(maskBytes) && i < len(masked); i++ {
			masked[len(masked)-len(maskBytes)+i] &= maskBytes[i]
		}
		return masked, pwd, nil
	case 1:
		if bitLength(pwd) != p {
			return nil, nil, newValidationError("proof_of_work_server: password bit length must be %d", p)
		}
		return salt, []byte{}, nil
	default:
		return nil, nil, newDomainError("proof_of_work_server: unknown mode %d", mode)
	}
}

// ProofOfWorkClient solves a proof-of-work challenge produced by
// ProofOfWorkServer, brute-forcing either the masked salt bits (mode 0) or
// a password of the required bit length (mode 1).
func (c *Catena) ProofOfWorkClient(salt, pwd []byte, p int, mode int, tryPassword func(candidate []byte) bool) ([]byte, []byte, error) {
	switch mode {
	case 0:
		limit := uint64(1) << uint(p)
		for trial := uint64(0); trial < limit; trial++ {
			candidate := append([]byte{}, salt...)
			trialBytes := cbytes.BEUint64(trial)
			for i := 0; i < len(trialBytes) && i < len(candidate); i++ {
				candidate[len(candidate)-len(trialBytes)+i] |= trialBytes[i]
			}
			if tryPassword(candidate) {
				return candidate, pwd, nil
			}
		}
		return nil, nil, newValidationError("proof_of_work_client: exhausted search space of 2^%d", p)
	case 1:
		limit := uint64(1) << uint(p)
		for trial := uint64(1); trial < limit; trial++ {
			candidate := cbytes.BEUint64(trial)
			for len(candidate) > 1 && candidate[0] == 0 {
				candidate = candidate[1:]
			}
			if bitLength(candidate) == p && tryPassword(candidate) {
				return salt, candidate, nil
			}
		}
		return nil, nil, newValidationError("proof_of_work_client: exhausted search space of 2^%d", p)
	default:
		return nil, nil, newDomainError("proof_of_work_client: unknown mode %d", mode)
	}
}

func bitLength(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n := (len(b) - 1) * 8
	first := b[0]
	for first != 0 {
		n++
		first >>= 1
	}
	return n
}

func (c *Catena) validateInputs(pwd, salt []byte, m int) error {
	if m <= 0 || m > c.N {
		return newValidationError("requested output length %d must be between 1 and %d", m, c.N)
	}
	if len(salt) == 0 {
		return newValidationError("salt must not be empty")
	}
	return nil
}

// catenaCore is the shared main loop behind Hash, GenerateKey and
// KeyedHashing: one half-garlic flap and H to seed x, then one
// full flap + H + truncate per garlic level from gLow through gHigh
// inclusive.
//
// The zero-padding branch intentionally computes its padding length from
// m (the caller's requested truncation width) rather than the current
// length of x. Under the loop's normal invariant — x is either n bytes
// (the first iteration) or m bytes (every iteration after a truncate) —
// n-m and n-len(x) agree, so this is not a correctness bug under normal
// instance parameters. It is kept as n-m rather than generalized to
// n-len(x), since every known test vector was produced against this
// exact form.
func (c *Catena) catenaCore(x, salt []byte, gLow, gHigh uint8, m int) []byte {
	x = c.flap((gLow+1)/2, x, salt)
	x = c.h(x)

	for g := gLow; g <= gHigh; g++ {
		if len(x) < c.N {
			x = cbytes.ZeroPad(x, c.N-m)
		}
		x = c.flap(g, x, salt)
		x = c.h(append(cbytes.LE1(g), x...))
		x = truncate(x, m)
	}

	return x
}

// flap is Catena's single generic iteration: seed 2^garlic+2 state words
// from x via hInit and an H′ chain, drop the first two seed words, then
// run Γ, F and Φ in sequence (each preceded by a reset of H′'s mutable
// state), returning the last remaining word as the flap's digest.
func (c *Catena) flap(garlic uint8, x, salt []byte) []byte {
	vMinus2, vMinus1 := c.hInit(x)

	c.Algorithms.ResetHPrime()

	dim := 1 << garlic
	words := make([][]byte, 0, dim+2)
	words = append(words, vMinus2, vMinus1)
	for i := 2; i < dim+2; i++ {
		next := c.Algorithms.HPrime(words[i-2], words[i-1])
		words = append(words, next)
	}
	words = words[2:]

	v := make([]byte, 0, dim*c.K)
	for _, w := range words {
		v = append(v, w...)
	}

	c.Algorithms.ResetHPrime()
	v = c.Algorithms.Gamma(garlic, v, salt, c.K)

	c.Algorithms.ResetHPrime()
	v = c.Algorithms.F(c.Lambda, v, c.K, c.N, c.K, garlic)

	mu := cbytes.GetWord(v, c.K, dim-1)

	c.Algorithms.ResetHPrime()
	v = c.Algorithms.Phi(garlic, v, c.K, mu)

	return cbytes.GetWord(v, c.K, dim-1)
}

// hInit seeds flap's initial two state words from x: build a 2k-byte
// string out of ceil(2k/n) calls to H(i||x), then split it in half.
func (c *Catena) hInit(x []byte) (vMinus2, vMinus1 []byte) {
	l := (2 * c.K) / c.N
	w := make([]byte, 0, 2*c.K)
	for i := 0; i < l; i++ {
		w = append(w, c.h(append([]byte{byte(i)}, x...))...)
	}
	return w[:c.K], w[c.K : 2*c.K]
}

func truncate(x []byte, m int) []byte {
	if len(x) <= m {
		return x
	}
	return x[:m]
}
