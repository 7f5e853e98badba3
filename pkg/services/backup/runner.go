package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/de-tools/wakestate/pkg/services/archive"
	"github.com/de-tools/wakestate/pkg/store/duckdb/backups"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Exporter produces the export envelope that gets archived.
type Exporter interface {
	ExportAllData(ctx context.Context, now time.Time) ([]byte, error)
}

type Runner struct {
	exporter Exporter
	archiver archive.Archiver
	runs     backups.Store
	done     chan struct{}
	progress chan RunnerProgress
	config   RunnerConfig
}

type RunnerConfig struct {
	Interval time.Duration
	Now      func() time.Time
}

type RunnerProgress struct {
	CompletedRuns int64
	FailedRuns    int64
	LastRun       *store.BackupRun
}

func NewRunner(exporter Exporter, archiver archive.Archiver, runs backups.Store, config RunnerConfig) *Runner {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Runner{
		exporter: exporter,
		archiver: archiver,
		runs:     runs,
		done:     make(chan struct{}),
		progress: make(chan RunnerProgress, 100),
		config:   config,
	}
}

func (r *Runner) Done() <-chan struct{} {
	return r.done
}

func (r *Runner) Progress() <-chan RunnerProgress {
	return r.progress
}

// Run backs up once immediately and then on every interval until ctx is
// cancelled. A non-positive interval stops after the first backup.
func (r *Runner) Run(ctx context.Context) {
	logger := zerolog.Ctx(ctx).With().Str("component", "backup").Logger()
	ctx = logger.WithContext(ctx)
	defer close(r.done)
	defer close(r.progress)

	var tick <-chan time.Time
	if r.config.Interval > 0 {
		ticker := time.NewTicker(r.config.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	var stats RunnerProgress
	for {
		run, err := r.RunOnce(ctx)
		if err != nil {
			stats.FailedRuns++
			logger.Error().Err(err).Msg("backup failed")
		} else {
			stats.CompletedRuns++
		}
		stats.LastRun = run

		select {
		case r.progress <- stats:
		default:
		}

		if tick == nil {
			return
		}
		select {
		case <-ctx.Done():
			logger.Info().Msg("backup runner stopped")
			return
		case <-tick:
		}
	}
}

// RunOnce exports, archives and records a single backup. The returned run
// reflects the final status even when err is set.
func (r *Runner) RunOnce(ctx context.Context) (*store.BackupRun, error) {
	startedAt := r.config.Now()
	run, err := r.runs.CreateRun(ctx, uuid.NewString(), startedAt)
	if err != nil {
		return nil, err
	}

	key, runErr := r.archive(ctx, startedAt)

	finishedAt := r.config.Now().UTC()
	if err := r.runs.FinishRun(ctx, run.ID, finishedAt, key, runErr); err != nil {
		return run, err
	}

	run.FinishedAt = &finishedAt
	if runErr != nil {
		msg := runErr.Error()
		run.Status = store.BackupFailed
		run.Error = &msg
		return run, runErr
	}
	run.Status = store.BackupSucceeded
	run.ObjectKey = &key
	return run, nil
}

func (r *Runner) archive(ctx context.Context, now time.Time) (string, error) {
	body, err := r.exporter.ExportAllData(ctx, now)
	if err != nil {
		return "", fmt.Errorf("failed to export data: %w", err)
	}
	return r.archiver.Archive(ctx, ObjectName(now), body)
}

// ObjectName is the archive file name for a backup taken at now.
func ObjectName(now time.Time) string {
	return fmt.Sprintf("wakestate-backup-%s.json", now.UTC().Format("20060102T150405Z"))
}
