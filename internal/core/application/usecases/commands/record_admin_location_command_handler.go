package commands

import (
	"context"

	"parcelms/internal/core/domain/model/tracking"
)

// RecordAdminLocationCommandHandler stores dashboard-recorded driver positions.
// These feed the fallback location source for drivers whose profile has no
// linked account yet.
type RecordAdminLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewRecordAdminLocationCommandHandler creates a handler for dashboard-recorded
// positions.
func NewRecordAdminLocationCommandHandler(
	uowFactory LocationUoWFactory,
) RecordAdminLocationCommandHandler {
	return RecordAdminLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores one recorded position.
func (h RecordAdminLocationCommandHandler) Handle(
	ctx context.Context, cmd RecordAdminLocationCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	loc, err := tracking.NewAdminLocation(cmd.DriverID(), cmd.ParcelID(), cmd.Point(), cmd.SpeedKmh())
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

	if err = uow.TrackLocationRepository().AddAdminLocation(ctx, loc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
