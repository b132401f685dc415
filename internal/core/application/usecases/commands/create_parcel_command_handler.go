package commands

import (
	"context"
	"errors"

	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/core/domain/model/parcel"
	"parcelms/internal/core/domain/services"
)

// ErrTrackingNumberExhausted is returned when tracking number generation
// keeps colliding with stored parcels.
var ErrTrackingNumberExhausted = errors.New("could not generate a unique tracking number")

const trackingNumberAttempts = 10

// CreateParcelCommandHandler handles the business logic for parcel creation:
// unique tracking number, derived price, the parcel row itself, the initial
// history entry and the creation notification, all in one transaction.
type CreateParcelCommandHandler struct {
	uowFactory    CreateParcelUoWFactory
	pricingEngine *services.PricingEngine
	generate      trackingNumberGenerator
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
func NewCreateParcelCommandHandler(
	uowFactory CreateParcelUoWFactory, pricingEngine *services.PricingEngine,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory:    uowFactory,
		pricingEngine: pricingEngine,
		generate:      kernel.NewTrackingNumber,
	}
}

// Handle processes the parcel creation command and returns the created
// aggregate with its identifier, tracking number and price populated.
func (h CreateParcelCommandHandler) Handle(
	ctx context.Context, cmd CreateParcelCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	tn, err := h.uniqueTrackingNumber(ctx, uow)
	if err != nil {
		return nil, err
	}

	rules, err := uow.PricingRuleRepository().GetActive(ctx)
	if err != nil {
		return nil, err
	}

	price, err := h.pricingEngine.Compute(cmd.Dimensions().Weight(), cmd.DistanceKm(), rules)
	if err != nil {
		return nil, err
	}

	aggregate, err := parcel.NewParcel(
		cmd.ClientID(), tn, cmd.Route(), cmd.Dimensions(), cmd.DistanceKm(), price)
	if err != nil {
		return nil, err
	}
	aggregate.AttachDetails(cmd.Description(), cmd.SpecialInstructions())

	if err = parcelRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	clientID := cmd.ClientID()
	entry, err := parcel.NewHistoryEntry(
		aggregate.ID(), parcel.StatusRequested, cmd.Route().From(),
		"Parcel created and awaiting admin acceptance", &clientID)
	if err != nil {
		return nil, err
	}
	if err = uow.StatusHistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	note, err := services.ParcelCreatedNotification(
		cmd.ClientID(), aggregate.ID(), tn.String(), price)
	if err != nil {
		return nil, err
	}
	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h CreateParcelCommandHandler) uniqueTrackingNumber(
	ctx context.Context, uow CreateParcelUoW,
) (kernel.TrackingNumber, error) {
	parcelRepo := uow.ParcelRepository()

	for range trackingNumberAttempts {
		tn := h.generate()
		exists, err := parcelRepo.ExistsTrackingNumber(ctx, tn)
		if err != nil {
			return kernel.TrackingNumber{}, err
		}
		if !exists {
			return tn, nil
		}
	}

	return kernel.TrackingNumber{}, ErrTrackingNumberExhausted
}
