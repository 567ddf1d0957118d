package catena

import cbytes "github.com/r2unit/catena/pkg/bytes"

// Domain separates the three ways a Catena tweak can be used, so the same
// (password, salt) pair produces unrelated outputs across uses.
type Domain byte

const (
	DomainPasswordScrambling Domain = 0
	DomainKeyDerivation      Domain = 1
	DomainProofOfWork        Domain = 2
)

// computeTweak derives the per-invocation domain-separation tweak:
// domain byte, λ, the requested output length, the salt length, H(vid),
// and H(ad), all concatenated.
func (c *Catena) computeTweak(domain Domain, outputLen, saltLen uint16, ad []byte) []byte {
	tweak := make([]byte, 0, 2+2+2+2*len(c.h(nil)))
	tweak = append(tweak, byte(domain))
	tweak = append(tweak, byte(c.Lambda))
	tweak = append(tweak, cbytes.LE16(outputLen)...)
	tweak = append(tweak, cbytes.LE16(saltLen)...)
	tweak = append(tweak, c.h(c.VID)...)
	tweak = append(tweak, c.h(ad)...)
	return tweak
}

func (c *Catena) h2(a, b []byte) []byte {
	return c.h(append(append([]byte{}, a...), b...))
}

func (c *Catena) h3(a, b, d []byte) []byte {
	buf := append([]byte{}, a...)
	buf = append(buf, b...)
	buf = append(buf, d...)
	return c.h(buf)
}

func (c *Catena) h4(a, b, d, e []byte) []byte {
	buf := append([]byte{}, a...)
	buf = append(buf, b...)
	buf = append(buf, d...)
	buf = append(buf, e...)
	return c.h(buf)
}
