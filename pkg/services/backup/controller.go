package backup

import (
	"context"
	"fmt"
	"sync"

	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/de-tools/wakestate/pkg/services/archive"
	"github.com/de-tools/wakestate/pkg/store/duckdb/backups"
)

type Controller interface {
	Start(ctx context.Context) error
	Cancel(ctx context.Context) error
	RunNow(ctx context.Context) (*store.BackupRun, error)
	History(ctx context.Context, limit int) ([]*store.BackupRun, error)
}

type runnerDescriptor struct {
	cancelFunc context.CancelFunc
	runner     *Runner
}

type DefaultController struct {
	exporter Exporter
	archiver archive.Archiver
	runs     backups.Store
	config   RunnerConfig

	mu      sync.Mutex
	running *runnerDescriptor
}

func NewController(
	exporter Exporter,
	archiver archive.Archiver,
	runs backups.Store,
	config RunnerConfig,
) *DefaultController {
	return &DefaultController{
		exporter: exporter,
		archiver: archiver,
		runs:     runs,
		config:   config,
	}
}

// Start launches the periodic runner. It runs until Cancel or until ctx is
// cancelled.
func (ctrl *DefaultController) Start(ctx context.Context) error {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	if ctrl.running != nil {
		select {
		case <-ctrl.running.runner.Done():
		default:
			return fmt.Errorf("backup runner already running")
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	runner := NewRunner(ctrl.exporter, ctrl.archiver, ctrl.runs, ctrl.config)
	ctrl.running = &runnerDescriptor{
		cancelFunc: cancel,
		runner:     runner,
	}

	go runner.Run(ctx)
	return nil
}

func (ctrl *DefaultController) Cancel(_ context.Context) error {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	desc := ctrl.running
	if desc == nil {
		return fmt.Errorf("backup runner not running")
	}
	desc.cancelFunc()
	<-desc.runner.Done()

	ctrl.running = nil
	return nil
}

// RunNow performs one backup outside the schedule.
func (ctrl *DefaultController) RunNow(ctx context.Context) (*store.BackupRun, error) {
	return NewRunner(ctrl.exporter, ctrl.archiver, ctrl.runs, ctrl.config).RunOnce(ctx)
}

func (ctrl *DefaultController) History(ctx context.Context, limit int) ([]*store.BackupRun, error) {
	return ctrl.runs.ListRuns(ctx, limit)
}
