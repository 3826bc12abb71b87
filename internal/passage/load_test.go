package passage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTextSplitsOnBlankLines(t *testing.T) {
	doc := "# comment\nfirst line\ncontinues here\n\n\nsecond passage\n"
	passages, err := ParseText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse text: %v", err)
	}
	if len(passages) != 2 {
		t.Fatalf("expected 2 passages, got %d", len(passages))
	}
	if passages[0].Text != "first line continues here" {
		t.Fatalf("unexpected first passage: %q", passages[0].Text)
	}
	if passages[1].Text != "second passage" {
		t.Fatalf("unexpected second passage: %q", passages[1].Text)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passages.yaml")
	doc := "passages:\n  - title: One\n    text: |\n      the cat\n      sat\n  - text: dog\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 passages, got %d", set.Len())
	}
	if got := set.At(0); got.Title != "One" || got.Text != "the cat sat" {
		t.Fatalf("unexpected passage: %+v", got)
	}
	if got := set.At(1).Title; got != "Passage 2" {
		t.Fatalf("expected generated title, got %q", got)
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n# nothing\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for empty passage file")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
