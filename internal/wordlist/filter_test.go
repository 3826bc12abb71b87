package wordlist

import "testing"

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("en")
	if !filter("hello") {
		t.Fatalf("expected hello to pass english filter")
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op", "Hello"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterOtherLangs(t *testing.T) {
	filter := FilterForLang("de")
	if !filter("straße") {
		t.Fatalf("expected non-ascii word to pass")
	}
	if filter("two words") || filter("") {
		t.Fatalf("expected whitespace and empty words to be rejected")
	}
}
