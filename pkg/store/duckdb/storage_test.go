package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_CreatesSchema(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "duckdb-test-*")
	require.NoError(t, err)

	defer func() {
		err := os.RemoveAll(tmpDir)
		if err != nil {
			t.Errorf("failed to cleanup test directory: %v", err)
		}
	}()

	dbPath := filepath.Join(tmpDir, "wakestate.db")
	db, err := NewDB(Settings{
		DbPath: dbPath,
	})
	require.NoError(t, err)
	require.NotNil(t, db)

	defer func() {
		err := db.Close()
		if err != nil {
			t.Errorf("failed to close database connection: %v", err)
		}
	}()

	_, err = db.Exec(
		`INSERT INTO kv_entries (entry_key, payload) VALUES (?, ?)`,
		"wakestate_settings", `{"version":1,"items":{}}`,
	)
	require.NoError(t, err)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM kv_entries WHERE entry_key = ?", "wakestate_settings").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	err = db.QueryRow("SELECT COUNT(*) FROM backup_runs").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRunInTransaction(t *testing.T) {
	db, err := NewDB(Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	ctx := context.Background()

	insert := func(ctx context.Context, key string) error {
		_, err := Conn(ctx, db).ExecContext(ctx,
			`INSERT INTO kv_entries (entry_key, payload) VALUES (?, ?)`, key, "{}")
		return err
	}
	countRows := func() int {
		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM kv_entries").Scan(&n))
		return n
	}

	t.Run("commit", func(t *testing.T) {
		err := RunInTransaction(ctx, db, func(ctx context.Context) error {
			assert.NotNil(t, GetTransaction(ctx))
			return insert(ctx, "a")
		})
		require.NoError(t, err)
		assert.Equal(t, 1, countRows())
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := RunInTransaction(ctx, db, func(ctx context.Context) error {
			require.NoError(t, insert(ctx, "b"))
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, countRows())
	})

	t.Run("no transaction outside", func(t *testing.T) {
		var q Querier = Conn(ctx, db)
		_, ok := q.(*sql.DB)
		assert.True(t, ok)
	})
}
