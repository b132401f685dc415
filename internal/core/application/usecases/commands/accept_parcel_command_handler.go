package commands

import (
	"context"

	"parcelms/internal/core/domain/services"
)

// AcceptParcelCommandHandler moves a requested parcel to accepted and
// notifies the owning client.
type AcceptParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewAcceptParcelCommandHandler creates a handler for parcel acceptance.
func NewAcceptParcelCommandHandler(uowFactory ParcelUoWFactory) AcceptParcelCommandHandler {
	return AcceptParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command. Fails with an invalid-state error
// when the parcel is not in requested status; nothing is persisted then.
func (h AcceptParcelCommandHandler) Handle(ctx context.Context, cmd AcceptParcelCommand) error {
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
	if err = aggregate.Accept(&adminID); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = appendHistory(ctx, uow.StatusHistoryRepository(), aggregate); err != nil {
		return err
	}

	note, err := services.ParcelAcceptedNotification(
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
