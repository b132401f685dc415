package commands

import (
	"context"
	"log/slog"

	"parcelms/internal/core/domain/model/account"
)

// LinkDriversCommandHandler links unlinked driver profiles to driver-role
// accounts matched by email. Profiles with zero or several matches stay
// unlinked; one unresolvable profile never blocks the rest of the sweep.
type LinkDriversCommandHandler struct {
	uowFactory DriverUoWFactory
	log        *slog.Logger
}

// NewLinkDriversCommandHandler creates a handler for the email-link sweep.
func NewLinkDriversCommandHandler(
	uowFactory DriverUoWFactory, log *slog.Logger,
) LinkDriversCommandHandler {
	return LinkDriversCommandHandler{
		uowFactory: uowFactory,
		log:        log.With("component", "link_drivers"),
	}
}

// Handle runs one sweep and reports how many profiles were linked.
func (h LinkDriversCommandHandler) Handle(ctx context.Context, cmd LinkDriversCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	accountRepo := uow.AccountRepository()

	profiles, err := driverRepo.GetUnlinked(ctx)
	if err != nil {
		return 0, err
	}

	linked := 0
	for _, profile := range profiles {
		matches, err := accountRepo.FindByEmailAndRole(ctx, profile.Email(), account.RoleDriver)
		if err != nil {
			return 0, err
		}
		if len(matches) != 1 {
			h.log.Debug("driver profile left unlinked",
				"driver_id", profile.ID(), "email", profile.Email(), "matches", len(matches))
			continue
		}

		if err = profile.LinkAccount(matches[0].ID()); err != nil {
			return 0, err
		}
		if err = driverRepo.Update(ctx, profile); err != nil {
			return 0, err
		}

		h.log.Info("linked driver profile to account",
			"driver_id", profile.ID(), "account_id", matches[0].ID())
		linked++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return linked, nil
}
