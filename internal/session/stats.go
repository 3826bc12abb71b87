package session

import (
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/typist/internal/model"
)

// Metrics is the outcome of scoring an attempt.
type Metrics struct {
	Stats      model.Stats
	WordsTyped int
}

// Compute scores input against target over the given active duration.
// A non-positive duration yields zero WPM; an empty target yields zero accuracy.
func Compute(target, input []rune, active time.Duration) Metrics {
	words := len(strings.Fields(string(input)))
	errors := CountErrors(target, input)

	wpm := 0
	if minutes := active.Minutes(); minutes > 0 {
		wpm = int(math.Round(float64(words) / minutes))
	}
	accuracy := 0
	if len(target) > 0 {
		accuracy = int(math.Round(float64(len(target)-errors) / float64(len(target)) * 100))
		if accuracy < 0 {
			accuracy = 0
		}
	}
	return Metrics{
		Stats: model.Stats{
			WordsPerMinute:  wpm,
			AccuracyPercent: accuracy,
			ErrorCount:      errors,
		},
		WordsTyped: words,
	}
}

// CountErrors counts input positions that differ from the target.
// Input beyond the target length counts as an error at each extra position.
func CountErrors(target, input []rune) int {
	errors := 0
	for i, r := range input {
		if i >= len(target) || r != target[i] {
			errors++
		}
	}
	return errors
}
