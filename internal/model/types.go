// Package model defines shared data structures.
package model

import "time"

// Passage source names.
const (
	SourceDefault  = "default"
	SourceFile     = "file"
	SourceLibrary  = "library"
	SourceGenerate = "generate"
)

// Config defines practice settings.
type Config struct {
	Source       string
	PassagesPath string
	Start        int
	WordListPath string
	Lang         string
	Words        int
	Count        int
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
}

// Passage is a reference text the user reproduces.
type Passage struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Stats holds the metrics computed when a session completes.
type Stats struct {
	WordsPerMinute  int
	AccuracyPercent int
	ErrorCount      int
}

// Result captures a session completed during the current run.
type Result struct {
	Title      string
	Stats      Stats
	WordsTyped int
	Elapsed    time.Duration
	FinishedAt time.Time
}

// PassageRecord is a passage stored in the library.
type PassageRecord struct {
	ID        int64
	Title     string
	Text      string
	CreatedAt time.Time
}
