package session

import (
	"testing"
	"time"
)

func TestComputeZeroDuration(t *testing.T) {
	m := Compute([]rune("cat"), []rune("cat"), 0)
	if m.Stats.WordsPerMinute != 0 {
		t.Fatalf("expected 0 WPM for zero duration, got %d", m.Stats.WordsPerMinute)
	}
	if m.Stats.AccuracyPercent != 100 {
		t.Fatalf("expected 100%% accuracy, got %d", m.Stats.AccuracyPercent)
	}
}

func TestComputeNegativeDuration(t *testing.T) {
	if got := Compute([]rune("a"), []rune("a"), -time.Second).Stats.WordsPerMinute; got != 0 {
		t.Fatalf("expected 0 WPM for negative duration, got %d", got)
	}
}

func TestComputeEmptyTarget(t *testing.T) {
	m := Compute(nil, nil, time.Minute)
	if m.Stats.AccuracyPercent != 0 || m.Stats.ErrorCount != 0 {
		t.Fatalf("unexpected stats for empty target: %+v", m.Stats)
	}
}

func TestComputeWordCountIgnoresExtraWhitespace(t *testing.T) {
	m := Compute([]rune(" one  two "), []rune(" one  two "), 30*time.Second)
	if m.WordsTyped != 2 {
		t.Fatalf("expected 2 words, got %d", m.WordsTyped)
	}
	if m.Stats.WordsPerMinute != 4 {
		t.Fatalf("expected 4 WPM, got %d", m.Stats.WordsPerMinute)
	}
}

func TestCountErrors(t *testing.T) {
	if got := CountErrors([]rune("hello"), []rune("hxllo")); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := CountErrors([]rune("hello"), []rune("he")); got != 0 {
		t.Fatalf("expected untyped tail not to count, got %d", got)
	}
	if got := CountErrors([]rune("ab"), []rune("abcd")); got != 2 {
		t.Fatalf("expected overflow to count, got %d", got)
	}
}

func TestComputeAccuracyNeverNegative(t *testing.T) {
	if got := Compute([]rune("a"), []rune("xyz"), time.Minute).Stats.AccuracyPercent; got != 0 {
		t.Fatalf("expected clamped accuracy, got %d", got)
	}
}
