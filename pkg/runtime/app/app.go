// Package app assembles the storage backends and services both binaries run on.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/wakestate/pkg/services/archive"
	"github.com/de-tools/wakestate/pkg/services/backup"
	"github.com/de-tools/wakestate/pkg/services/config"
	"github.com/de-tools/wakestate/pkg/services/medication"
	"github.com/de-tools/wakestate/pkg/services/report"
	badgerstore "github.com/de-tools/wakestate/pkg/store/badger"
	"github.com/de-tools/wakestate/pkg/store/collections"
	"github.com/de-tools/wakestate/pkg/store/duckdb"
	"github.com/de-tools/wakestate/pkg/store/duckdb/backups"
	"github.com/de-tools/wakestate/pkg/store/duckdb/entries"
	"github.com/de-tools/wakestate/pkg/store/kv"
	"github.com/de-tools/wakestate/pkg/store/legacy"
	"github.com/rs/zerolog"
)

type App struct {
	Config  *config.Config
	Store   *collections.Store
	Reports *report.Service
	Tracker *medication.Tracker
	// Archiver is nil when no archive bucket is configured.
	Archiver archive.Archiver
	// Backups is nil unless archiving is enabled on the DuckDB backend.
	Backups backup.Controller

	closers []func() error
}

// New wires the services over already opened backends. legacy may be nil.
func New(cfg *config.Config, primary kv.Backend, legacyBackend kv.Backend) (*App, error) {
	s, err := collections.NewStore(primary, legacyBackend)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection store: %w", err)
	}
	tracker, err := medication.NewTracker(s)
	if err != nil {
		return nil, fmt.Errorf("failed to create medication tracker: %w", err)
	}
	return &App{
		Config:  cfg,
		Store:   s,
		Reports: report.NewService(s),
		Tracker: tracker,
	}, nil
}

// Open opens the configured backends and wires every service on top.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := zerolog.Ctx(ctx)

	var (
		primary  kv.Backend
		runs     backups.Store
		closers  []func() error
		closeAll = func() {
			for i := len(closers) - 1; i >= 0; i-- {
				_ = closers[i]()
			}
		}
	)

	switch cfg.Storage.Backend {
	case config.BackendBadger:
		bcfg := badgerstore.DefaultConfig(cfg.Storage.Badger.Path)
		bcfg.InMemory = cfg.Storage.Badger.InMemory
		bcfg.SyncWrites = cfg.Storage.Badger.SyncWrites
		bcfg.Logger = logger
		db, err := badgerstore.Open(bcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger store: %w", err)
		}
		closers = append(closers, db.Close)
		s, err := badgerstore.NewStore(db)
		if err != nil {
			closeAll()
			return nil, err
		}
		primary = s
	default:
		db, err := duckdb.NewDB(duckdb.Settings{
			DbPath:  cfg.Storage.DuckDB.Path,
			Threads: cfg.Storage.DuckDB.Threads,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
		}
		closers = append(closers, db.Close)
		s, err := entries.NewStore(db)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("failed to create entries store: %w", err)
		}
		primary = s
		if runs, err = backups.NewStore(db); err != nil {
			closeAll()
			return nil, fmt.Errorf("failed to create backup store: %w", err)
		}
	}

	var legacyBackend kv.Backend
	if cfg.Storage.LegacyPath != "" {
		l, err := legacy.NewStore(cfg.Storage.LegacyPath)
		if err != nil {
			closeAll()
			return nil, err
		}
		legacyBackend = l
	}

	a, err := New(cfg, primary, legacyBackend)
	if err != nil {
		closeAll()
		return nil, err
	}
	a.closers = closers

	if cfg.Archive.Enabled() {
		archiver, err := archive.NewFromConfig(ctx, cfg.Archive)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("failed to create archiver: %w", err)
		}
		a.Archiver = archiver
		if runs != nil {
			a.Backups = backup.NewController(a.Store, archiver, runs, backup.RunnerConfig{
				Interval: cfg.Archive.Interval,
			})
		} else {
			logger.Warn().Str("backend", cfg.Storage.Backend).Msg("backup history requires the duckdb backend, scheduled backups disabled")
		}
	}

	logger.Debug().
		Str("backend", cfg.Storage.Backend).
		Bool("legacy", legacyBackend != nil).
		Bool("archive", a.Archiver != nil).
		Msg("storage opened")
	return a, nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
