package jobs

import (
	"fmt"
	"log/slog"

	"parcelms/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	driverLinkJob *DriverLinkJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	linkDriversHandler commands.LinkDriversCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		driverLinkJob: NewDriverLinkJob(linkDriversHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.driverLinkJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver link job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverLinkJob.Stop()
}
