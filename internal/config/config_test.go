package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if cfg.Practice.Source != nil || cfg.Practice.Words != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[practice]
source = "file"
passages = "/tmp/p.yaml"
start = 2
words = 30
caps = 0.25
punct-set = ".,"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p := cfg.Practice
	if p.Source == nil || *p.Source != "file" {
		t.Fatalf("unexpected source: %v", p.Source)
	}
	if p.PassagesPath == nil || *p.PassagesPath != "/tmp/p.yaml" {
		t.Fatalf("unexpected passages path: %v", p.PassagesPath)
	}
	if p.Start == nil || *p.Start != 2 || p.Words == nil || *p.Words != 30 {
		t.Fatalf("unexpected ints: start=%v words=%v", p.Start, p.Words)
	}
	if p.CapsPct == nil || *p.CapsPct != 0.25 || p.PunctSet == nil || *p.PunctSet != ".," {
		t.Fatalf("unexpected caps/punct-set")
	}
	if p.Count != nil || p.Lang != nil {
		t.Fatalf("expected unset keys to stay nil")
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice]\nspeed = 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "speed") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "typist", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultLibraryPath(); got != filepath.Join("/data", "typist", "library.db") {
		t.Fatalf("unexpected library path %q", got)
	}
	if got := DefaultWordListPath("en"); got != filepath.Join("/cfg", "typist", "wordlists", "en.txt") {
		t.Fatalf("unexpected wordlist path %q", got)
	}
}
