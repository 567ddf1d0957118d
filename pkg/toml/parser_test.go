package toml

import (
	"os"
	"path/filepath"
	"testing"
)

type testSection struct {
	Name   string `toml:"name"`
	Garlic uint8  `toml:"garlic"`
	Keyed  bool   `toml:"keyed"`
}

type testDoc struct {
	DefaultInstance string      `toml:"default_instance"`
	Instance        testSection `toml:"instance"`
}

func TestDecodeFileTopLevelAndSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "default_instance = \"Dragonfly\"\n\n[instance]\nname = \"Dragonfly\"\ngarlic = 18\nkeyed = true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var doc testDoc
	if _, err := DecodeFile(path, &doc); err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}

	if doc.DefaultInstance != "Dragonfly" {
		t.Fatalf("DefaultInstance = %q, want Dragonfly", doc.DefaultInstance)
	}
	if doc.Instance.Name != "Dragonfly" {
		t.Fatalf("Instance.Name = %q, want Dragonfly", doc.Instance.Name)
	}
	if doc.Instance.Garlic != 18 {
		t.Fatalf("Instance.Garlic = %d, want 18", doc.Instance.Garlic)
	}
	if !doc.Instance.Keyed {
		t.Fatal("Instance.Keyed = false, want true")
	}
}

func TestDecodeFileIgnoresCommentsAndBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "# a comment\n\ndefault_instance = \"Butterfly\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var doc testDoc
	if _, err := DecodeFile(path, &doc); err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if doc.DefaultInstance != "Butterfly" {
		t.Fatalf("DefaultInstance = %q, want Butterfly", doc.DefaultInstance)
	}
}

func TestDecodeFileMissingFile(t *testing.T) {
	var doc testDoc
	if _, err := DecodeFile("/nonexistent/path/config.toml", &doc); err == nil {
		t.Fatal("expected error for missing file")
	}
}
