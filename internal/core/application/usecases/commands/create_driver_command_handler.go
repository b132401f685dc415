package commands

import (
	"context"
	"log/slog"

	"parcelms/internal/core/domain/model/account"
	"parcelms/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler registers a driver profile and eagerly attempts
// the email link against driver-role accounts. A missing or ambiguous account
// leaves the profile unlinked; the periodic sweep and the assignment-time
// fallback pick it up later.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	log        *slog.Logger
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(
	uowFactory DriverUoWFactory, log *slog.Logger,
) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
		log:        log.With("component", "create_driver"),
	}
}

// Handle processes the registration and returns the stored profile.
func (h CreateDriverCommandHandler) Handle(
	ctx context.Context, cmd CreateDriverCommand,
) (*driver.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	profile, err := driver.NewProfile(
		cmd.Name(), cmd.Email(), cmd.PhoneNumber(),
		cmd.VehicleType(), cmd.VehicleNumber(), cmd.CurrentLocation())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	matches, err := uow.AccountRepository().FindByEmailAndRole(
		ctx, cmd.Email(), account.RoleDriver)
	if err != nil {
		return nil, err
	}

	if len(matches) == 1 {
		if err = profile.LinkAccount(matches[0].ID()); err != nil {
			return nil, err
		}
	} else {
		h.log.Info("driver profile created unlinked",
			"email", cmd.Email(), "matches", len(matches))
	}

	if err = uow.DriverRepository().Add(ctx, profile); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return profile, nil
}
