package gamma

import "testing"

func seedVector() []uint64 {
	return []uint64{
		0x0123456789abcdef, 0x0123456789abcdf0, 0x0123456789abcdf1, 0x0123456789abcdf2,
		0x0123456789abcdf3, 0x0123456789abcdf4, 0x0123456789abcdf5, 0x0123456789abcdf6,
		0x0123456789abcdf7, 0x0123456789abcdf8, 0x0123456789abcdf9, 0x0123456789abcdfa,
		0x0123456789abcdfb, 0x0123456789abcdfc, 0x0123456789abcdfd, 0x0123456789abcdfe,
	}
}

func TestXorshift1024StarVector1(t *testing.T) {
	r := seedVector()
	p := uint8(1)

	got := xorshift1024Star(r, &p, 64)

	if want := uint64(0x17D3885BABA0909E); got != want {
		t.Fatalf("result = %#x, want %#x", got, want)
	}
	if got := r[2]; got != 0xC4CD582CF76C20E6 {
		t.Fatalf("r[2] = %#x, want %#x", got, uint64(0xC4CD582CF76C20E6))
	}
}

func TestXorshift1024StarVector2(t *testing.T) {
	r := seedVector()
	p := uint8(2)

	got := xorshift1024Star(r, &p, 64)

	if want := uint64(0x840D2A0DA7209534); got != want {
		t.Fatalf("result = %#x, want %#x", got, want)
	}
	if got := r[3]; got != 0xC4CD582D775C20E4 {
		t.Fatalf("r[3] = %#x, want %#x", got, uint64(0xC4CD582D775C20E4))
	}
}

func TestXorshift1024StarVector3(t *testing.T) {
	r := seedVector()
	p := uint8(15)

	got := xorshift1024Star(r, &p, 64)

	if want := uint64(0x8B1A3545F6C06BEE); got != want {
		t.Fatalf("result = %#x, want %#x", got, want)
	}
	if got := r[0]; got != 0xC4CD5823F68C20F6 {
		t.Fatalf("r[0] = %#x, want %#x", got, uint64(0xC4CD5823F68C20F6))
	}
}

func TestSaltMixDeterministic(t *testing.T) {
	h := func(x []byte) []byte { return append([]byte{}, x...) }
	hp := func(a, b []byte) []byte {
		out := make([]byte, len(a))
		for i := range out {
			out[i] = a[i] ^ b[i]
		}
		return out
	}

	state := make([]byte, 4*8)
	for i := range state {
		state[i] = byte(i)
	}
	salt := []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")

	out1 := SaltMix(h, hp, 2, append([]byte{}, state...), salt, 8)
	out2 := SaltMix(h, hp, 2, append([]byte{}, state...), salt, 8)

	if string(out1) != string(out2) {
		t.Fatal("SaltMix is not deterministic for identical inputs")
	}
}
