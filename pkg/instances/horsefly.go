package instances

import "github.com/r2unit/catena/pkg/catena"

// Horsefly uses the linear Argon2 compression function (G_L) as H′ over
// 1024-byte state words, and skips Γ entirely (identity) — its memory
// hardness comes from F's bit-reversal access pattern over a much larger
// per-word state than Dragonfly's.
func Horsefly() *catena.Catena {
	hp := argonGLAsHPrime()
	return &catena.Catena{
		Algorithms: &bundle{
			hprime: hp,
			gamma:  identityGamma,
			f:      brgF(hp),
			phi:    identityPhi,
		},
		VID:    []byte("Horsefly"),
		N:      64,
		K:      1024,
		GLow:   1,
		GHigh:  19,
		Lambda: 2,
	}
}

// HorseflyFull replaces Horsefly's Argon2-G_L with full Blake2b as H′ and
// runs at a higher garlic ceiling.
func HorseflyFull() *catena.Catena {
	hp := fullBlake2bAsHPrime()
	return &catena.Catena{
		Algorithms: &bundle{
			hprime: hp,
			gamma:  identityGamma,
			f:      brgF(hp),
			phi:    identityPhi,
		},
		VID:    []byte("Horsefly-Full"),
		N:      64,
		K:      64,
		GLow:   1,
		GHigh:  23,
		Lambda: 2,
	}
}
