package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const EntriesTableSchema = `
	CREATE TABLE IF NOT EXISTS kv_entries (
		entry_key VARCHAR NOT NULL PRIMARY KEY,
		payload VARCHAR NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

const BackupRunsTableSchema = `
	CREATE TABLE IF NOT EXISTS backup_runs (
		id VARCHAR NOT NULL PRIMARY KEY,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NULL,
		status VARCHAR NOT NULL,
		object_key VARCHAR NULL,
		error VARCHAR NULL
	);
`

var bootQueries = []string{
	EntriesTableSchema,
	BackupRunsTableSchema,
}

type Settings struct {
	DbPath  string
	Threads int
}

func NewDB(settings Settings) (*sql.DB, error) {
	threads := settings.Threads
	if threads <= 0 {
		threads = 4
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=%d", settings.DbPath, threads), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("open duckdb %s: %w", settings.DbPath, err)
	}

	db := sql.OpenDB(c)
	return db, nil
}
