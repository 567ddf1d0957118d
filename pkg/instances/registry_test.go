package instances

import "testing"

func TestNamedResolvesEveryListedName(t *testing.T) {
	for _, name := range Names() {
		inst, ok := Named(name)
		if !ok {
			t.Fatalf("Named(%q) reported unresolved, want a bundle", name)
		}
		if inst == nil {
			t.Fatalf("Named(%q) returned ok=true but a nil instance", name)
		}
		if string(inst.VID) != name {
			t.Fatalf("Named(%q) returned an instance with VID %q", name, inst.VID)
		}
	}
}

func TestNamedRejectsUnknownName(t *testing.T) {
	if _, ok := Named("Mydasfly"); ok {
		t.Fatal("Named(\"Mydasfly\") should be unresolved; use Mydasfly() instead")
	}
	if _, ok := Named("NotAnInstance"); ok {
		t.Fatal("Named(\"NotAnInstance\") should be unresolved")
	}
}

func TestMydasflyReturnsSentinelError(t *testing.T) {
	_, err := Mydasfly()
	if err != ErrMydasflyUnresolved {
		t.Fatalf("Mydasfly() error = %v, want ErrMydasflyUnresolved", err)
	}
}

func TestFullVariantsRaiseGarlicCeiling(t *testing.T) {
	pairs := []struct {
		base, full string
		step       uint8
	}{
		{"Dragonfly", "Dragonfly-Full", 1},
		{"Butterfly", "Butterfly-Full", 1},
		{"Horsefly", "Horsefly-Full", 4},
		{"Stonefly", "Stonefly-Full", 1},
		{"Lanternfly", "Lanternfly-Full", 1},
	}
	for _, pair := range pairs {
		base, _ := Named(pair.base)
		full, _ := Named(pair.full)
		if full.GHigh != base.GHigh+pair.step {
			t.Fatalf("%s.GHigh = %d, want %s.GHigh+%d = %d", pair.full, full.GHigh, pair.base, pair.step, base.GHigh+pair.step)
		}
	}
}
