package commands

import (
	"context"

	"parcelms/internal/core/domain/services"
)

// RejectParcelCommandHandler moves a requested parcel to cancelled and
// notifies the owning client.
type RejectParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewRejectParcelCommandHandler creates a handler for parcel rejection.
func NewRejectParcelCommandHandler(uowFactory ParcelUoWFactory) RejectParcelCommandHandler {
	return RejectParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command. Fails with an invalid-state error
// when the parcel is not in requested status.
func (h RejectParcelCommandHandler) Handle(ctx context.Context, cmd RejectParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	adminID := cmd.AdminID()
	if err = aggregate.Reject(&adminID, cmd.Notes()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = appendHistory(ctx, uow.StatusHistoryRepository(), aggregate); err != nil {
		return err
	}

	note, err := services.ParcelCancelledNotification(
		aggregate.ClientID(), aggregate.ID(), aggregate.TrackingNumber().String())
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
