package bytes

import "testing"

func TestXORFrontPadding(t *testing.T) {
	cases := []struct {
		lhs, rhs, want []byte
	}{
		{[]byte{0xFF}, []byte{0xFF}, []byte{0x00}},
		{[]byte{0x01, 0x02}, []byte{0x01}, []byte{0x01, 0x03}},
		{[]byte{0x01}, []byte{0x01, 0x02}, []byte{0x01, 0x03}},
		{[]byte{}, []byte{0x05}, []byte{0x05}},
		{[]byte{0x05}, []byte{}, []byte{0x05}},
		{[]byte{0x0F, 0xF0}, []byte{0xF0, 0x0F}, []byte{0xFF, 0xFF}},
	}

	for i, c := range cases {
		got := XOR(c.lhs, c.rhs)
		if string(got) != string(c.want) {
			t.Fatalf("case %d: XOR(%x, %x) = %x, want %x", i, c.lhs, c.rhs, got, c.want)
		}
	}
}

func TestGetWordSetWord(t *testing.T) {
	buf := make([]byte, 24)
	SetWord(buf, 8, 1, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	got := GetWord(buf, 8, 1)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GetWord mismatch at %d: got %d, want %d", i, got[i], want[i])
		}
	}
	if buf[7] != 0 || buf[16] != 0 {
		t.Fatal("SetWord touched neighboring words")
	}
}

func TestReverseWords(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	ReverseWords(buf, 4)

	want := []byte{4, 3, 2, 1, 8, 7, 6, 5}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("ReverseWords mismatch at %d: got %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestVecU8ToVecU64PanicsOnBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-multiple-of-8 length")
		}
	}()
	VecU8ToVecU64([]byte{1, 2, 3})
}

func TestBEAndLEUint64RoundTrip(t *testing.T) {
	v := uint64(0x0123456789ABCDEF)

	if got := BEToUint64(BEUint64(v)); got != v {
		t.Fatalf("BE round trip = %#x, want %#x", got, v)
	}
	if got := LEToUint64(LEUint64(v)); got != v {
		t.Fatalf("LE round trip = %#x, want %#x", got, v)
	}
}

func TestHexStringAndParseHexRoundTrip(t *testing.T) {
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}

	s := HexString(want)
	got, err := ParseHex(s)
	if err != nil {
		t.Fatalf("ParseHex error: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("round trip mismatch at %d: got %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestParseHexRejectsOddLength(t *testing.T) {
	if _, err := ParseHex("abc"); err == nil {
		t.Fatal("expected error for odd-length hex string")
	}
}

func TestParseHexRejectsInvalidDigit(t *testing.T) {
	if _, err := ParseHex("zz"); err == nil {
		t.Fatal("expected error for invalid hex digit")
	}
}

func TestLE16LittleEndian(t *testing.T) {
	got := LE16(0x0102)
	want := []byte{0x02, 0x01}
	if got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("LE16 = %x, want %x", got, want)
	}
}
