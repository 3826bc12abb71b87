package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWordsFiltersAndDedupes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.txt")
	data := "# header\nthe\n\ncat\nThe\ncat\nco-op\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	words, err := LoadWords(path, FilterForLang("en"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(words) != 2 || words[0] != "the" || words[1] != "cat" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("Upper\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadWords(path, FilterForLang("en")); err == nil {
		t.Fatalf("expected error when every word is filtered")
	}
}
