package backups

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/de-tools/wakestate/pkg/store/duckdb"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: s,
	}
}

func TestNewStore(t *testing.T) {
	t.Run("nil db", func(t *testing.T) {
		s, err := NewStore(nil)
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestStore_Runs(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	started := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("create and finish successfully", func(t *testing.T) {
		run, err := f.store.CreateRun(ctx, "run-1", started)
		require.NoError(t, err)
		assert.Equal(t, store.BackupRunning, run.Status)

		err = f.store.FinishRun(ctx, "run-1", started.Add(time.Second), "backups/wakestate-export-2025-03-01.json", nil)
		require.NoError(t, err)
	})

	t.Run("finish with error", func(t *testing.T) {
		_, err := f.store.CreateRun(ctx, "run-2", started.Add(time.Hour))
		require.NoError(t, err)

		err = f.store.FinishRun(ctx, "run-2", started.Add(time.Hour+time.Second), "", errors.New("access denied"))
		require.NoError(t, err)
	})

	t.Run("list newest first", func(t *testing.T) {
		runs, err := f.store.ListRuns(ctx, 10)
		require.NoError(t, err)
		require.Len(t, runs, 2)

		assert.Equal(t, "run-2", runs[0].ID)
		assert.Equal(t, store.BackupFailed, runs[0].Status)
		require.NotNil(t, runs[0].Error)
		assert.Equal(t, "access denied", *runs[0].Error)
		assert.Nil(t, runs[0].ObjectKey)

		assert.Equal(t, "run-1", runs[1].ID)
		assert.Equal(t, store.BackupSucceeded, runs[1].Status)
		require.NotNil(t, runs[1].ObjectKey)
		require.NotNil(t, runs[1].FinishedAt)
	})

	t.Run("finish unknown run", func(t *testing.T) {
		err := f.store.FinishRun(ctx, "missing", started, "", nil)
		assert.Error(t, err)
	})
}
