package kb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// A Store persists a knowledge base's rule set in a SQLite database, so a
// command-line front end can keep rules across invocations.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path with WAL mode
// enabled and bootstraps the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS rules (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	head TEXT NOT NULL,
	body TEXT NOT NULL DEFAULT ''
);`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Save replaces the stored rule set with the contents of kb.
func (s *Store) Save(ctx context.Context, kb *KnowledgeBase) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, "DELETE FROM rules"); err != nil {
		return err
	}
	for _, r := range kb.Rules() {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO rules (head, body) VALUES (?, ?)",
			r.Head, strings.Join(r.Body, ","))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load reads the stored rule set into a fresh knowledge base built with the
// given options.
func (s *Store) Load(ctx context.Context, opts ...Option) (*KnowledgeBase, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT head, body FROM rules ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	kb := New(opts...)
	for rows.Next() {
		var head, body string
		if err := rows.Scan(&head, &body); err != nil {
			return nil, err
		}
		var names []string
		if body != "" {
			names = strings.Split(body, ",")
		}
		if err := kb.Assert(names, head); err != nil {
			return nil, fmt.Errorf("corrupt stored rule %q -> %q: %w", body, head, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return kb, nil
}
