package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/typist/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "typist.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestAddAndListPassages(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	id, err := st.AddPassage(ctx, " Fox ", "the quick\n brown fox")
	if err != nil {
		t.Fatalf("add passage: %v", err)
	}
	if _, err := st.AddPassage(ctx, "Again", "the  quick brown fox"); !errors.Is(err, ErrDuplicatePassage) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if _, err := st.AddPassage(ctx, "Empty", " \n\t "); !errors.Is(err, ErrEmptyPassage) {
		t.Fatalf("expected empty passage error, got %v", err)
	}

	records, err := st.ListPassages(ctx)
	if err != nil {
		t.Fatalf("list passages: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 passage, got %d", len(records))
	}
	rec := records[0]
	if rec.ID != id || rec.Title != "Fox" || rec.Text != "the quick brown fox" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestAddPassagesSkipsDuplicates(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	n, err := st.AddPassages(ctx, []model.Passage{
		{Title: "a", Text: "alpha"},
		{Title: "b", Text: "beta"},
		{Title: "a2", Text: "alpha"},
		{Title: "blank", Text: ""},
	})
	if err != nil {
		t.Fatalf("add passages: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 inserted, got %d", n)
	}
	count, err := st.CountPassages(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 stored, got %d", count)
	}
}

func TestRemovePassage(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	id, err := st.AddPassage(ctx, "", "gone soon")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := st.RemovePassage(ctx, id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := st.RemovePassage(ctx, id); !errors.Is(err, ErrPassageNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLoadSet(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, err := st.LoadSet(ctx); err == nil {
		t.Fatalf("expected error for empty library")
	}
	if _, err := st.AddPassages(ctx, []model.Passage{{Text: "one"}, {Title: "Two", Text: "two"}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	set, err := st.LoadSet(ctx)
	if err != nil {
		t.Fatalf("load set: %v", err)
	}
	if set.Len() != 2 || set.At(0).Title != "Passage 1" || set.At(1).Title != "Two" {
		t.Fatalf("unexpected set: %+v", set.Passages())
	}
}
