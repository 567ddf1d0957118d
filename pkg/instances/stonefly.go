package instances

import "github.com/r2unit/catena/pkg/catena"

// Stonefly uses the quadratic, ASIC-resistant Argon2 compression function
// (G_B) as H′, SaltMix for Γ, bit-reversal graph hashing for F, and adds
// the LSB-indexed Φ layer Dragonfly/Horsefly skip.
func Stonefly() *catena.Catena {
	hp := argonGBAsHPrime()
	return &catena.Catena{
		Algorithms: &bundle{
			hprime: hp,
			gamma:  saltMixGamma(hp),
			f:      brgF(hp),
			phi:    lsbPhi(hp),
		},
		VID:    []byte("Stonefly"),
		N:      64,
		K:      1024,
		GLow:   1,
		GHigh:  18,
		Lambda: 2,
	}
}

// StoneflyFull runs Stonefly at one additional garlic level. The reference
// implementation kept alongside this pack's source did not carry a
// separate stonefly_full module the way dragonfly/horsefly did; this
// bundle raises the garlic ceiling by one, as Dragonfly-Full and
// Butterfly-Full do, and keeps Stonefly's primitives, rather than leaving Stonefly without a
// -Full counterpart. See DESIGN.md.
func StoneflyFull() *catena.Catena {
	hp := argonGBAsHPrime()
	return &catena.Catena{
		Algorithms: &bundle{
			hprime: hp,
			gamma:  saltMixGamma(hp),
			f:      brgF(hp),
			phi:    lsbPhi(hp),
		},
		VID:    []byte("Stonefly-Full"),
		N:      64,
		K:      1024,
		GLow:   1,
		GHigh:  19,
		Lambda: 2,
	}
}
