package passage

import (
	"errors"
	"testing"

	"github.com/verte-zerg/typist/internal/model"
)

func TestNewSetNormalizesAndDropsEmpty(t *testing.T) {
	set, err := NewSet([]model.Passage{
		{Text: "  hello\n  world "},
		{Title: "blank", Text: " \t "},
		{Title: " Named ", Text: "second"},
	})
	if err != nil {
		t.Fatalf("new set: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 passages, got %d", set.Len())
	}
	if got := set.At(0); got.Text != "hello world" || got.Title != "Passage 1" {
		t.Fatalf("unexpected first passage: %+v", got)
	}
	if got := set.At(1); got.Title != "Named" {
		t.Fatalf("expected trimmed title, got %q", got.Title)
	}
}

func TestNewSetRejectsEmpty(t *testing.T) {
	if _, err := NewSet(nil); !errors.Is(err, ErrNoPassages) {
		t.Fatalf("expected ErrNoPassages, got %v", err)
	}
	if _, err := FromTexts("", "   "); !errors.Is(err, ErrNoPassages) {
		t.Fatalf("expected ErrNoPassages, got %v", err)
	}
}

func TestSetNextWraps(t *testing.T) {
	set, err := FromTexts("a", "b", "c")
	if err != nil {
		t.Fatalf("from texts: %v", err)
	}
	idx := 0
	for i := 0; i < set.Len(); i++ {
		idx = set.Next(idx)
	}
	if idx != 0 {
		t.Fatalf("expected to return to 0, got %d", idx)
	}
	if got := set.At(-1).Text; got != "c" {
		t.Fatalf("expected negative index to wrap, got %q", got)
	}
}

func TestPassagesReturnsCopy(t *testing.T) {
	set, err := FromTexts("a")
	if err != nil {
		t.Fatalf("from texts: %v", err)
	}
	out := set.Passages()
	out[0].Text = "changed"
	if set.At(0).Text != "a" {
		t.Fatalf("set was mutated through Passages copy")
	}
}

func TestDefaults(t *testing.T) {
	if Defaults().Len() == 0 {
		t.Fatalf("expected built-in passages")
	}
}
