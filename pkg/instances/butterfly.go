package instances

import "github.com/r2unit/catena/pkg/catena"

// Butterfly swaps Dragonfly's bit-reversal graph for the double-butterfly
// graph, trading F's access pattern for one with different cache/ASIC
// tradeoffs while keeping the same H′/Γ choices.
func Butterfly() *catena.Catena {
	hp := newBlake2b1HPrime()
	return &catena.Catena{
		Algorithms: &bundle{
			hprime: hp,
			gamma:  saltMixGamma(hp),
			f:      dbhF(hp),
			phi:    identityPhi,
		},
		VID:    []byte("Butterfly"),
		N:      64,
		K:      64,
		GLow:   1,
		GHigh:  16,
		Lambda: 4,
	}
}

// ButterflyFull is Butterfly with full Blake2b standing in for H′, at one
// additional garlic level.
func ButterflyFull() *catena.Catena {
	hp := fullBlake2bAsHPrime()
	return &catena.Catena{
		Algorithms: &bundle{
			hprime: hp,
			gamma:  saltMixGamma(hp),
			f:      dbhF(hp),
			phi:    identityPhi,
		},
		VID:    []byte("Butterfly-Full"),
		N:      64,
		K:      64,
		GLow:   1,
		GHigh:  17,
		Lambda: 4,
	}
}
