// Package passage provides the ordered passage set and its sources.
package passage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/typist/internal/model"
)

// ErrNoPassages is returned when a source yields no usable passage.
var ErrNoPassages = errors.New("no passages")

// Set is an ordered, immutable, non-empty sequence of passages.
type Set struct {
	passages []model.Passage
}

// NewSet normalizes the given passages and drops empty ones.
func NewSet(passages []model.Passage) (*Set, error) {
	out := make([]model.Passage, 0, len(passages))
	for _, p := range passages {
		text := Normalize(p.Text)
		if text == "" {
			continue
		}
		title := strings.TrimSpace(p.Title)
		if title == "" {
			title = fmt.Sprintf("Passage %d", len(out)+1)
		}
		out = append(out, model.Passage{Title: title, Text: text})
	}
	if len(out) == 0 {
		return nil, ErrNoPassages
	}
	return &Set{passages: out}, nil
}

// FromTexts builds a set from bare passage texts.
func FromTexts(texts ...string) (*Set, error) {
	passages := make([]model.Passage, 0, len(texts))
	for _, text := range texts {
		passages = append(passages, model.Passage{Text: text})
	}
	return NewSet(passages)
}

// Len returns the number of passages.
func (s *Set) Len() int {
	return len(s.passages)
}

// At returns the passage at index i, wrapping out-of-range indices.
func (s *Set) At(i int) model.Passage {
	return s.passages[s.Index(i)]
}

// Next returns the index following i.
func (s *Set) Next(i int) int {
	return s.Index(i + 1)
}

// Index maps any integer onto a valid passage index.
func (s *Set) Index(i int) int {
	n := len(s.passages)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Passages returns a copy of the passages.
func (s *Set) Passages() []model.Passage {
	out := make([]model.Passage, len(s.passages))
	copy(out, s.passages)
	return out
}

// Normalize collapses runs of whitespace into single spaces and trims the ends.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
