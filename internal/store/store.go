// Package store handles the SQLite passage library.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/typist/internal/model"
	"github.com/verte-zerg/typist/internal/passage"

	_ "modernc.org/sqlite" // SQLite driver.
)

var (
	// ErrDuplicatePassage is returned when the passage text is already stored.
	ErrDuplicatePassage = errors.New("passage already exists")
	// ErrPassageNotFound is returned when no passage has the given id.
	ErrPassageNotFound = errors.New("passage not found")
	// ErrEmptyPassage is returned when the passage text is blank.
	ErrEmptyPassage = errors.New("passage text is empty")
)

// Store wraps SQLite access for library passages.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS passages (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			text TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_passages_created_at ON passages(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AddPassage stores a normalized passage and returns its id.
func (s *Store) AddPassage(ctx context.Context, title, text string) (int64, error) {
	text = passage.Normalize(text)
	if text == "" {
		return 0, ErrEmptyPassage
	}
	exists, err := s.hasText(ctx, text)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrDuplicatePassage
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO passages (title, text, created_at) VALUES (?, ?, ?)`,
		strings.TrimSpace(title),
		text,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// AddPassages stores several passages in one transaction, skipping duplicates.
// It returns the number of passages inserted.
func (s *Store) AddPassages(ctx context.Context, passages []model.Passage) (n int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO passages (title, text, created_at) VALUES (?, ?, ?) ON CONFLICT(text) DO NOTHING`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	createdAt := time.Now().UTC().Format(time.RFC3339Nano)
	for _, p := range passages {
		text := passage.Normalize(p.Text)
		if text == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx, strings.TrimSpace(p.Title), text, createdAt)
		if err != nil {
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		n += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// ListPassages returns all passages in insertion order.
func (s *Store) ListPassages(ctx context.Context) ([]model.PassageRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, text, created_at FROM passages ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.PassageRecord
	for rows.Next() {
		var rec model.PassageRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Text, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// RemovePassage deletes the passage with the given id.
func (s *Store) RemovePassage(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM passages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPassageNotFound
	}
	return nil
}

// CountPassages returns the number of stored passages.
func (s *Store) CountPassages(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM passages`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// LoadSet builds a passage set from the library.
func (s *Store) LoadSet(ctx context.Context) (*passage.Set, error) {
	records, err := s.ListPassages(ctx)
	if err != nil {
		return nil, err
	}
	passages := make([]model.Passage, 0, len(records))
	for _, rec := range records {
		passages = append(passages, model.Passage{Title: rec.Title, Text: rec.Text})
	}
	return passage.NewSet(passages)
}

func (s *Store) hasText(ctx context.Context, text string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM passages WHERE text = ?`, text).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
