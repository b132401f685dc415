package jobs

import (
	"context"
	"log/slog"

	"parcelms/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverLinkJob periodically re-runs the email link for driver profiles that
// still have no authenticated account. Profiles created before the driver
// registered pick up their account on the next sweep.
type DriverLinkJob struct {
	handler commands.LinkDriversCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverLinkJob creates the link sweep job running once per minute.
func NewDriverLinkJob(handler commands.LinkDriversCommandHandler, logger *slog.Logger) *DriverLinkJob {
	return &DriverLinkJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "driver_link_job"),
	}
}

// Start begins the sweep on a per-minute schedule.
func (j *DriverLinkJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		linked, err := j.handler.Handle(ctx, commands.NewLinkDriversCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Driver link job failed", "error", err)
			return
		}

		if linked > 0 {
			j.logger.InfoContext(ctx, "Driver link job linked profiles", "count", linked)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver link job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *DriverLinkJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver link job stopped")
}
