package instances

import "errors"

// ErrMydasflyUnresolved is returned by Mydasfly: a benchmark driver
// elsewhere in the upstream sources instantiates a Mydasfly bundle, but
// no module defining its parameters (H′ choice, Γ/F/Φ, garlic range)
// ships alongside it, so that driver would not itself build against the
// sources it came from. Rather than invent parameters with no grounding,
// Mydasfly stays an explicitly unresolved bundle, matching the upstream
// gap instead of papering over it.
var ErrMydasflyUnresolved = errors.New("instances: Mydasfly's parameters are not specified upstream; no bundle is available")

// Mydasfly always returns ErrMydasflyUnresolved. It exists so callers that
// enumerate every named bundle (a benchmark driver, a CLI's --list flag)
// can fail loudly and specifically on this one instead of it being silently
// absent from the package.
func Mydasfly() (interface{}, error) {
	return nil, ErrMydasflyUnresolved
}
