package commands

import (
	"context"
	"errors"
	"time"

	"parcelms/internal/core/domain/model/parcel"
	"parcelms/internal/core/domain/services"
	"parcelms/internal/pkg/errs"
)

// ErrParcelNotAssignedToDriver is returned when a driver acts on a parcel
// that is not assigned to their account.
var ErrParcelNotAssignedToDriver = errors.New("parcel is not assigned to this driver")

// UpdateParcelStatusCommandHandler applies driver-initiated status
// transitions: the aggregate move itself, its history entry, the client
// notification, and the pickup/delivery timestamps on the driver-app
// assignment.
type UpdateParcelStatusCommandHandler struct {
	uowFactory StatusUpdateUoWFactory
	now        func() time.Time
}

// NewUpdateParcelStatusCommandHandler creates a handler for driver status updates.
func NewUpdateParcelStatusCommandHandler(
	uowFactory StatusUpdateUoWFactory,
) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the status update. The parcel must be assigned to the
// acting driver's account; disallowed transitions fail with an invalid-state
// error and persist nothing.
func (h UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateParcelStatusCommand,
) error {
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

	deliveryRepo := uow.DeliveryAssignmentRepository()

	delivery, err := deliveryRepo.GetByParcelAndAccount(
		ctx, cmd.ParcelID(), cmd.DriverAccountID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotAssignedToDriver
	}
	if err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateStatusByDriver(cmd.Target(), cmd.DriverAccountID()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = appendHistory(ctx, uow.StatusHistoryRepository(), aggregate); err != nil {
		return err
	}

	switch cmd.Target() {
	case parcel.StatusPickedUp:
		delivery.MarkStarted(h.now())
	case parcel.StatusDelivered:
		delivery.MarkCompleted(h.now())
	}
	if err = deliveryRepo.Upsert(ctx, delivery); err != nil {
		return err
	}

	note, err := services.StatusUpdateNotification(
		aggregate.ClientID(), aggregate.ID(), cmd.Target(), aggregate.TrackingNumber().String())
	if err != nil {
		return err
	}
	if note != nil {
		if err = uow.NotificationRepository().Add(ctx, note); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
