// Package generator builds practice passages from a word list.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/verte-zerg/typist/internal/model"
)

// Options controls passage generation.
type Options struct {
	Words    int
	Count    int
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Generator produces randomized passages.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Generator drawing from rnd.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Passages generates opts.Count passages of opts.Words words each.
func (g *Generator) Passages(words []string, opts Options) ([]model.Passage, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	if opts.Words <= 0 || opts.Count <= 0 {
		return nil, fmt.Errorf("words and count must be > 0")
	}
	out := make([]model.Passage, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		out = append(out, model.Passage{
			Title: fmt.Sprintf("Generated %d", i+1),
			Text:  strings.Join(g.words(words, opts), " "),
		})
	}
	return out, nil
}

func (g *Generator) words(words []string, opts Options) []string {
	result := make([]string, 0, opts.Words)
	for i := 0; i < opts.Words; i++ {
		word := words[g.rnd.Intn(len(words))]
		word = applyCaps(g.rnd, word, opts.CapsPct)
		word = applyPunct(g.rnd, word, opts.PunctPct, opts.PunctSet)
		result = append(result, word)
	}
	return result
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	return word + string(punctSet[rnd.Intn(len(punctSet))])
}
