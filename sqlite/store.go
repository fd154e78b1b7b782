package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
)

var _ ghostwriter.Store = (*Store)(nil)

// Store implements ghostwriter.Store on a single key-value table.
type Store struct {
	db  *DB
	now func() time.Time
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db, now: time.Now}
}

const upsertKV = `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

// Get returns the value under key, or nil if it does not exist.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EPERSIST, "get %s: %v", key, err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, upsertKV, key, value, s.timestamp()); err != nil {
		return ghostwriter.Errorf(ghostwriter.EPERSIST, "set %s: %v", key, err)
	}
	return nil
}

// getManyBatch bounds the keys bound into one query, well under SQLite's
// host parameter limit.
const getManyBatch = 500

// GetMany returns the values of the keys that exist. Keys are queried in
// batches of getManyBatch.
func (s *Store) GetMany(ctx context.Context, keys []string) (map[string][]byte, error) {
	result := make(map[string][]byte, len(keys))
	for start := 0; start < len(keys); start += getManyBatch {
		batch := keys[start:min(start+getManyBatch, len(keys))]
		if err := s.getBatch(ctx, batch, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *Store) getBatch(ctx context.Context, keys []string, result map[string][]byte) error {
	var query strings.Builder
	query.WriteString("SELECT key, value FROM kv WHERE key IN (")
	args := make([]any, len(keys))
	for i, k := range keys {
		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString("?")
		args[i] = k
	}
	query.WriteString(")")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return ghostwriter.Errorf(ghostwriter.EPERSIST, "get many: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return ghostwriter.Errorf(ghostwriter.EPERSIST, "get many: %v", err)
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return ghostwriter.Errorf(ghostwriter.EPERSIST, "get many: %v", err)
	}
	return nil
}

// SetMany stores all entries in a single transaction.
func (s *Store) SetMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ghostwriter.Errorf(ghostwriter.EPERSIST, "set many: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertKV)
	if err != nil {
		return ghostwriter.Errorf(ghostwriter.EPERSIST, "set many: %v", err)
	}
	defer stmt.Close()

	ts := s.timestamp()
	for k, v := range entries {
		if _, err := stmt.ExecContext(ctx, k, v, ts); err != nil {
			return ghostwriter.Errorf(ghostwriter.EPERSIST, "set %s: %v", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ghostwriter.Errorf(ghostwriter.EPERSIST, "set many: %v", err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return ghostwriter.Errorf(ghostwriter.EPERSIST, "delete %s: %v", key, err)
	}
	return nil
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
