package commands

import (
	"context"

	"parcelms/internal/core/domain/model/tracking"
)

// ReportDriverLocationCommandHandler stores driver-application position pings.
type ReportDriverLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewReportDriverLocationCommandHandler creates a handler for position pings.
func NewReportDriverLocationCommandHandler(
	uowFactory LocationUoWFactory,
) ReportDriverLocationCommandHandler {
	return ReportDriverLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores one position ping.
func (h ReportDriverLocationCommandHandler) Handle(
	ctx context.Context, cmd ReportDriverLocationCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ping, err := tracking.NewDriverPing(cmd.DriverAccountID(), cmd.ParcelID(), cmd.Point())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TrackLocationRepository().AddPing(ctx, ping); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
