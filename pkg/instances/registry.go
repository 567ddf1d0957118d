package instances

import "github.com/r2unit/catena/pkg/catena"

// Named returns the catena.Catena instance registered under name, and
// whether that name was recognized. Mydasfly is deliberately excluded —
// query it via Mydasfly() to get its explanatory error.
func Named(name string) (*catena.Catena, bool) {
	switch name {
	case "Dragonfly":
		return Dragonfly(), true
	case "Dragonfly-Full":
		return DragonflyFull(), true
	case "Butterfly":
		return Butterfly(), true
	case "Butterfly-Full":
		return ButterflyFull(), true
	case "Horsefly":
		return Horsefly(), true
	case "Horsefly-Full":
		return HorseflyFull(), true
	case "Stonefly":
		return Stonefly(), true
	case "Stonefly-Full":
		return StoneflyFull(), true
	case "Lanternfly":
		return Lanternfly(), true
	case "Lanternfly-Full":
		return LanternflyFull(), true
	default:
		return nil, false
	}
}

// Names lists every resolved instance bundle, in the order the named
// instance table presents them.
func Names() []string {
	return []string{
		"Dragonfly", "Dragonfly-Full",
		"Butterfly", "Butterfly-Full",
		"Horsefly", "Horsefly-Full",
		"Stonefly", "Stonefly-Full",
		"Lanternfly", "Lanternfly-Full",
	}
}
