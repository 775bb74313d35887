package context

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := "debug: true\nno_color: true\ndump_types: true\nmax_errors: 5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !opts.Debug || !opts.NoColor || !opts.DumpTypes || opts.MaxErrors != 5 {
		t.Errorf("Unexpected options %+v", opts)
	}
}

func TestDecodeOptionsEmpty(t *testing.T) {
	opts, err := DecodeOptions(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if opts.Debug || opts.MaxErrors != 0 {
		t.Errorf("Expected defaults, got %+v", opts)
	}
}

func TestDecodeOptionsRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeOptions(strings.NewReader("debug: true\noptimize: 3\n"))
	if err == nil || !strings.Contains(err.Error(), "optimize") {
		t.Errorf("Expected an error naming the unknown key, got %v", err)
	}
}

func TestDecodeOptionsRejectsNegativeLimit(t *testing.T) {
	if _, err := DecodeOptions(strings.NewReader("max_errors: -1\n")); err == nil {
		t.Errorf("Expected an error for a negative max_errors")
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "none.yml")); err == nil {
		t.Errorf("Expected an error for a missing config file")
	}
}
