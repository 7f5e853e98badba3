package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/wakestate/pkg/store/duckdb"
	"github.com/de-tools/wakestate/pkg/store/kv"
)

const (
	getQuery    = `SELECT payload FROM kv_entries WHERE entry_key = ?`
	upsertQuery = `
		INSERT INTO kv_entries (entry_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (entry_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`
	deleteQuery = `DELETE FROM kv_entries WHERE entry_key = ?`
)

// Store keeps every collection as one row of kv_entries.
type Store interface {
	kv.Backend
	kv.Transactional
}

type entriesStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &entriesStore{
		db:  db,
		now: time.Now,
	}, nil
}

func (s *entriesStore) Get(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := duckdb.Conn(ctx, s.db).QueryRowContext(ctx, getQuery, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(payload), nil
}

func (s *entriesStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := duckdb.Conn(ctx, s.db).ExecContext(ctx, upsertQuery, key, string(value), s.now().UTC())
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *entriesStore) Delete(ctx context.Context, key string) error {
	_, err := duckdb.Conn(ctx, s.db).ExecContext(ctx, deleteQuery, key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *entriesStore) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return duckdb.RunInTransaction(ctx, s.db, fn)
}
