// Package view projects session state into a renderer-neutral view model.
package view

import (
	"fmt"

	"github.com/verte-zerg/typist/internal/model"
	"github.com/verte-zerg/typist/internal/session"
)

// Class is the correctness classification of a passage character.
type Class int

// Character classes.
const (
	ClassUntyped Class = iota
	ClassCorrect
	ClassIncorrect
)

func (c Class) String() string {
	switch c {
	case ClassCorrect:
		return "correct"
	case ClassIncorrect:
		return "incorrect"
	default:
		return ""
	}
}

// Placeholders shown by the input surface.
const (
	PlaceholderActive = "Start typing..."
	PlaceholderPaused = "Paused - press ctrl+p to resume"
)

// Action identifies a user-triggered transition.
type Action int

// Actions.
const (
	ActionReset Action = iota
	ActionTogglePause
	ActionNext
)

// Char is one passage character with its classification.
type Char struct {
	Rune  rune
	Class Class
}

// Control describes a button-like action on the control panel.
type Control struct {
	Action  Action
	Label   string
	Enabled bool
}

// WordRange is a half-open rune range [Start, End) of one word.
type WordRange struct {
	Start int
	End   int
}

// Model is everything a renderer needs to draw one frame.
type Model struct {
	Title         string
	Position      string
	Status        session.Status
	Chars         []Char
	Cursor        int
	CurrentWord   *WordRange
	Input         string
	InputDisabled bool
	Placeholder   string
	Progress      int
	Stats         model.Stats
	Controls      []Control
}

// Project derives the view model from a session snapshot.
func Project(st session.State) Model {
	cursor := -1
	if len(st.Input) < len(st.Target) {
		cursor = len(st.Input)
	}
	placeholder := PlaceholderActive
	if st.Paused {
		placeholder = PlaceholderPaused
	}
	pauseLabel := "Pause"
	if st.Paused {
		pauseLabel = "Resume"
	}
	return Model{
		Title:         st.Title,
		Position:      fmt.Sprintf("%d/%d", st.PassageIndex+1, st.PassageCount),
		Status:        st.Status(),
		Chars:         Classify(st.Target, st.Input),
		Cursor:        cursor,
		CurrentWord:   WordAt(FindWords(st.Target), cursor),
		Input:         string(st.Input),
		InputDisabled: st.Finished || st.Paused,
		Placeholder:   placeholder,
		Progress:      progress(len(st.Input), len(st.Target)),
		Stats:         st.Stats,
		Controls: []Control{
			{Action: ActionReset, Label: "Reset", Enabled: true},
			{Action: ActionTogglePause, Label: pauseLabel, Enabled: !st.Finished},
			{Action: ActionNext, Label: "Next Text", Enabled: true},
		},
	}
}

// Classify marks each target rune typed so far as correct or incorrect.
// Runes at or beyond the input length stay untyped.
func Classify(target, input []rune) []Char {
	out := make([]Char, len(target))
	for i, r := range target {
		out[i] = Char{Rune: r}
		if i >= len(input) {
			continue
		}
		if input[i] == r {
			out[i].Class = ClassCorrect
		} else {
			out[i].Class = ClassIncorrect
		}
	}
	return out
}

// FindWords returns the ranges of space-separated words in target.
func FindWords(target []rune) []WordRange {
	words := []WordRange{}
	start := -1
	for i, r := range target {
		if r == ' ' {
			if start != -1 {
				words = append(words, WordRange{Start: start, End: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, WordRange{Start: start, End: len(target)})
	}
	return words
}

// WordAt returns the word containing the cursor, or the next word when the
// cursor sits on a space. A negative cursor yields nil.
func WordAt(words []WordRange, cursor int) *WordRange {
	if len(words) == 0 || cursor < 0 {
		return nil
	}
	for i := range words {
		if cursor < words[i].End {
			return &words[i]
		}
	}
	return nil
}

func progress(typed, total int) int {
	if total == 0 {
		return 0
	}
	return typed * 100 / total
}
