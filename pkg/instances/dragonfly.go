package instances

import "github.com/r2unit/catena/pkg/catena"

// Dragonfly is Catena's lightweight reference instance: Blake2b-1 for H′,
// SaltMix for Γ, bit-reversal graph hashing for F, and no Φ layer.
func Dragonfly() *catena.Catena {
	hp := newBlake2b1HPrime()
	return &catena.Catena{
		Algorithms: &bundle{
			hprime: hp,
			gamma:  saltMixGamma(hp),
			f:      brgF(hp),
			phi:    identityPhi,
		},
		VID:    []byte("Dragonfly"),
		N:      64,
		K:      64,
		GLow:   1,
		GHigh:  21,
		Lambda: 2,
	}
}

// DragonflyFull is Dragonfly with full (unreduced) Blake2b standing in for
// H′ instead of the single-round Blake2b-1, at one additional garlic level.
func DragonflyFull() *catena.Catena {
	hp := fullBlake2bAsHPrime()
	return &catena.Catena{
		Algorithms: &bundle{
			hprime: hp,
			gamma:  saltMixGamma(hp),
			f:      brgF(hp),
			phi:    identityPhi,
		},
		VID:    []byte("Dragonfly-Full"),
		N:      64,
		K:      64,
		GLow:   1,
		GHigh:  22,
		Lambda: 2,
	}
}
