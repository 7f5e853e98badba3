package backups

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/de-tools/wakestate/pkg/store/duckdb"
)

const (
	createQuery = `INSERT INTO backup_runs (id, started_at, status) VALUES (?, ?, ?)`
	finishQuery = `
		UPDATE backup_runs
		SET finished_at = ?, status = ?, object_key = ?, error = ?
		WHERE id = ?`
	listQuery = `
		SELECT id, started_at, finished_at, status, object_key, error
		FROM backup_runs
		ORDER BY started_at DESC
		LIMIT ?`
)

// Store keeps the history of background backup runs.
type Store interface {
	CreateRun(ctx context.Context, id string, startedAt time.Time) (*store.BackupRun, error)
	FinishRun(ctx context.Context, id string, finishedAt time.Time, objectKey string, runErr error) error
	ListRuns(ctx context.Context, limit int) ([]*store.BackupRun, error)
}

type defaultStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &defaultStore{
		db: db,
	}, nil
}

func (s *defaultStore) CreateRun(ctx context.Context, id string, startedAt time.Time) (*store.BackupRun, error) {
	startedAt = startedAt.UTC()
	_, err := duckdb.Conn(ctx, s.db).ExecContext(ctx, createQuery, id, startedAt, string(store.BackupRunning))
	if err != nil {
		return nil, fmt.Errorf("create backup run: %w", err)
	}
	return &store.BackupRun{
		ID:        id,
		StartedAt: startedAt,
		Status:    store.BackupRunning,
	}, nil
}

func (s *defaultStore) FinishRun(
	ctx context.Context,
	id string,
	finishedAt time.Time,
	objectKey string,
	runErr error,
) error {
	status := store.BackupSucceeded
	var errMsg, key *string
	if runErr != nil {
		status = store.BackupFailed
		msg := runErr.Error()
		errMsg = &msg
	}
	if objectKey != "" {
		key = &objectKey
	}

	res, err := duckdb.Conn(ctx, s.db).ExecContext(ctx, finishQuery, finishedAt.UTC(), string(status), key, errMsg, id)
	if err != nil {
		return fmt.Errorf("finish backup run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish backup run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("backup run not found: %s", id)
	}
	return nil
}

func (s *defaultStore) ListRuns(ctx context.Context, limit int) ([]*store.BackupRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, listQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("list backup runs: %w", err)
	}
	defer rows.Close()

	var runs []*store.BackupRun
	for rows.Next() {
		var (
			run        store.BackupRun
			status     string
			finishedAt sql.NullTime
			objectKey  sql.NullString
			errMsg     sql.NullString
		)
		if err := rows.Scan(&run.ID, &run.StartedAt, &finishedAt, &status, &objectKey, &errMsg); err != nil {
			return nil, fmt.Errorf("scan backup run: %w", err)
		}
		run.Status = store.BackupStatus(status)
		if finishedAt.Valid {
			t := finishedAt.Time
			run.FinishedAt = &t
		}
		if objectKey.Valid {
			run.ObjectKey = &objectKey.String
		}
		if errMsg.Valid {
			run.Error = &errMsg.String
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list backup runs: %w", err)
	}
	return runs, nil
}
