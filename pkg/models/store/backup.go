package store

import "time"

type BackupStatus string

const (
	BackupRunning   BackupStatus = "running"
	BackupSucceeded BackupStatus = "succeeded"
	BackupFailed    BackupStatus = "failed"
)

// BackupRun records one export-and-archive pass.
type BackupRun struct {
	ID         string
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     BackupStatus
	ObjectKey  *string
	Error      *string
}
