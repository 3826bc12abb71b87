// Package session implements the typing session state machine.
package session

import (
	"time"

	"github.com/verte-zerg/typist/internal/clock"
	"github.com/verte-zerg/typist/internal/model"
	"github.com/verte-zerg/typist/internal/passage"
)

// Status is the observable state of a session.
type Status int

// Session states.
const (
	StatusIdle Status = iota
	StatusActive
	StatusPaused
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Effect is a side effect requested by a transition and carried out by the host.
type Effect int

// Effects.
const (
	EffectNone Effect = iota
	EffectFocusInput
)

// State is a value copy of the session, consumed by the view layer.
type State struct {
	Title             string
	Target            []rune
	Input             []rune
	PassageIndex      int
	PassageCount      int
	Started           bool
	StartedAt         time.Time
	PausedAccumulated time.Duration
	Paused            bool
	Finished          bool
	Stats             model.Stats
	WordsTyped        int
	Elapsed           time.Duration
}

// Status derives the state-machine status.
func (s State) Status() Status {
	switch {
	case s.Finished:
		return StatusFinished
	case s.Paused:
		return StatusPaused
	case s.Started:
		return StatusActive
	default:
		return StatusIdle
	}
}

// Session owns the current passage, the typed input and its timing.
type Session struct {
	passages *passage.Set
	clock    clock.Clock
	cursor   int

	title  string
	target []rune
	input  []rune

	started           bool
	startedAt         time.Time
	pausedAt          time.Time
	pausedAccumulated time.Duration
	paused            bool
	finished          bool

	stats      model.Stats
	wordsTyped int
	elapsed    time.Duration
	finishedAt time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithStart selects the initial passage index. Out-of-range values wrap.
func WithStart(index int) Option {
	return func(s *Session) {
		s.cursor = index
	}
}

// New creates a session on the first (or selected) passage of the set.
func New(passages *passage.Set, clk clock.Clock, opts ...Option) (*Session, error) {
	if passages == nil || passages.Len() == 0 {
		return nil, passage.ErrNoPassages
	}
	if clk == nil {
		clk = clock.System{}
	}
	s := &Session{passages: passages, clock: clk}
	for _, opt := range opts {
		opt(s)
	}
	s.loadPassage(s.cursor)
	return s, nil
}

// SubmitInput replaces the typed input. It is ignored while paused or finished.
// Input longer than the passage is truncated to the passage length.
func (s *Session) SubmitInput(value string) {
	if s.paused || s.finished {
		return
	}
	if !s.started {
		s.started = true
		s.startedAt = s.clock.Now()
	}
	runes := []rune(value)
	if len(runes) > len(s.target) {
		runes = runes[:len(s.target)]
	}
	s.input = runes
	if len(s.input) == len(s.target) {
		s.finished = true
		s.computeStats()
	}
}

// TogglePause pauses an unfinished session or resumes a paused one.
func (s *Session) TogglePause() {
	if s.finished {
		return
	}
	now := s.clock.Now()
	if !s.paused {
		s.paused = true
		s.pausedAt = now
		return
	}
	if s.started {
		if d := now.Sub(s.pausedAt); d > 0 {
			s.pausedAccumulated += d
		}
	}
	s.paused = false
	s.pausedAt = time.Time{}
}

// Reset clears the attempt on the current passage.
func (s *Session) Reset() Effect {
	s.input = nil
	s.started = false
	s.startedAt = time.Time{}
	s.pausedAt = time.Time{}
	s.pausedAccumulated = 0
	s.paused = false
	s.finished = false
	s.stats = model.Stats{}
	s.wordsTyped = 0
	s.elapsed = 0
	s.finishedAt = time.Time{}
	return EffectFocusInput
}

// AdvancePassage moves to the next passage, wrapping around, and resets.
func (s *Session) AdvancePassage() Effect {
	s.loadPassage(s.passages.Next(s.cursor))
	return s.Reset()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	return State{
		Title:             s.title,
		Target:            append([]rune(nil), s.target...),
		Input:             append([]rune(nil), s.input...),
		PassageIndex:      s.cursor,
		PassageCount:      s.passages.Len(),
		Started:           s.started,
		StartedAt:         s.startedAt,
		PausedAccumulated: s.pausedAccumulated,
		Paused:            s.paused,
		Finished:          s.finished,
		Stats:             s.stats,
		WordsTyped:        s.wordsTyped,
		Elapsed:           s.elapsed,
	}
}

// Result returns the completed attempt, or false if the session is unfinished.
func (s *Session) Result() (model.Result, bool) {
	if !s.finished {
		return model.Result{}, false
	}
	return model.Result{
		Title:      s.title,
		Stats:      s.stats,
		WordsTyped: s.wordsTyped,
		Elapsed:    s.elapsed,
		FinishedAt: s.finishedAt,
	}, true
}

func (s *Session) loadPassage(index int) {
	p := s.passages.At(index)
	s.cursor = s.passages.Index(index)
	s.title = p.Title
	s.target = []rune(p.Text)
}

func (s *Session) computeStats() {
	s.finishedAt = s.clock.Now()
	s.elapsed = 0
	if s.started {
		s.elapsed = s.finishedAt.Sub(s.startedAt) - s.pausedAccumulated
	}
	m := Compute(s.target, s.input, s.elapsed)
	s.stats = m.Stats
	s.wordsTyped = m.WordsTyped
}
