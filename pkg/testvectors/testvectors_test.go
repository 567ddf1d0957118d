package testvectors

import (
	"os"
	"path/filepath"
	"testing"
)

func writeVectorFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "vectors.json")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadParsesMixedHexAndNumericFields(t *testing.T) {
	path := writeVectorFile(t, `[
		{
			"inputs": {"hash": "deadbeef", "garlic": 18, "salt": "00ff"},
			"outputs": {"output_hash": "cafebabe"}
		}
	]`)

	cases, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("len(cases) = %d, want 1", len(cases))
	}

	hash, err := Hex(cases[0].Inputs, "hash")
	if err != nil {
		t.Fatalf("Hex(hash): %v", err)
	}
	if string(hash) != string([]byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Fatalf("hash = %x, want deadbeef", hash)
	}

	garlic, err := Uint(cases[0].Inputs, "garlic")
	if err != nil {
		t.Fatalf("Uint(garlic): %v", err)
	}
	if garlic != 18 {
		t.Fatalf("garlic = %d, want 18", garlic)
	}

	out, err := Hex(cases[0].Outputs, "output_hash")
	if err != nil {
		t.Fatalf("Hex(output_hash): %v", err)
	}
	if string(out) != string([]byte{0xCA, 0xFE, 0xBA, 0xBE}) {
		t.Fatalf("output_hash = %x, want cafebabe", out)
	}
}

func TestHexMissingFieldErrors(t *testing.T) {
	path := writeVectorFile(t, `[{"inputs": {"salt": "00"}, "outputs": {}}]`)
	cases, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := Hex(cases[0].Inputs, "hash"); err == nil {
		t.Fatal("expected error for missing hash field")
	}
}

func TestUintMissingFieldErrors(t *testing.T) {
	path := writeVectorFile(t, `[{"inputs": {"salt": "00"}, "outputs": {}}]`)
	cases, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := Uint(cases[0].Inputs, "garlic"); err == nil {
		t.Fatal("expected error for missing garlic field")
	}
}
