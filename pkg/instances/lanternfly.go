package instances

import "github.com/r2unit/catena/pkg/catena"

// Lanternfly pairs Argon2-G_B with the Gray-code bit-reversal graph (GRG,
// l=3) instead of plain BRG, and skips Φ (identity).
func Lanternfly() *catena.Catena {
	hp := argonGBAsHPrime()
	return &catena.Catena{
		Algorithms: &bundle{
			hprime: hp,
			gamma:  saltMixGamma(hp),
			f:      grgF(hp, 3),
			phi:    identityPhi,
		},
		VID:    []byte("Lanternfly"),
		N:      64,
		K:      1024,
		GLow:   1,
		GHigh:  17,
		Lambda: 2,
	}
}

// LanternflyFull runs Lanternfly at one additional garlic level; see the
// note on StoneflyFull for why this is an extrapolation rather than a
// bundle read directly off a lanternfly_full source file.
func LanternflyFull() *catena.Catena {
	hp := argonGBAsHPrime()
	return &catena.Catena{
		Algorithms: &bundle{
			hprime: hp,
			gamma:  saltMixGamma(hp),
			f:      grgF(hp, 3),
			phi:    identityPhi,
		},
		VID:    []byte("Lanternfly-Full"),
		N:      64,
		K:      1024,
		GLow:   1,
		GHigh:  18,
		Lambda: 2,
	}
}
