package commands

import (
	"context"
	"errors"
	"log/slog"

	"parcelms/internal/core/domain/model/account"
	"parcelms/internal/core/domain/model/assignment"
	"parcelms/internal/core/domain/model/driver"
	"parcelms/internal/core/domain/services"
	"parcelms/internal/pkg/errs"
)

// AssignDriverCommandHandler reconciles an admin's driver choice across both
// assignment tables. The admin-side assignment always follows a successful
// status transition; the driver-app assignment needs the profile to resolve
// to exactly one driver account, either through its stored link or through an
// email match against accounts with the driver role. Unresolvable profiles
// degrade to an admin-only assignment with a log line, never an error.
type AssignDriverCommandHandler struct {
	uowFactory AssignUoWFactory
	log        *slog.Logger
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory AssignUoWFactory, log *slog.Logger,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		log:        log.With("component", "assign_driver"),
	}
}

// Handle processes the assignment command. Fails with an invalid-state error
// when the parcel is not accepted; nothing is persisted then.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	profile, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	// The status transition gates everything: a non-accepted parcel must not
	// acquire an admin assignment either.
	adminID := cmd.AdminID()
	if err = aggregate.Assign(&adminID); err != nil {
		return err
	}

	if err = h.upsertAdminAssignment(ctx, uow, cmd.ParcelID(), cmd.DriverID()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = appendHistory(ctx, uow.StatusHistoryRepository(), aggregate); err != nil {
		return err
	}

	if err = h.reconcileDeliveryAssignment(ctx, uow, cmd.ParcelID(), profile); err != nil {
		return err
	}

	note, err := services.DriverAssignedNotification(
		aggregate.ClientID(), aggregate.ID(), profile.Name(), aggregate.TrackingNumber().String())
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

func (h AssignDriverCommandHandler) upsertAdminAssignment(
	ctx context.Context, uow AssignUoW, parcelID, driverID int64,
) error {
	repo := uow.AdminAssignmentRepository()

	existing, err := repo.GetByParcel(ctx, parcelID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		created, cerr := assignment.NewAdminAssignment(parcelID, driverID)
		if cerr != nil {
			return cerr
		}
		return repo.Upsert(ctx, created)
	case err != nil:
		return err
	}

	if err = existing.Reassign(driverID); err != nil {
		return err
	}
	return repo.Upsert(ctx, existing)
}

// reconcileDeliveryAssignment resolves the driver profile to an account and
// upserts the driver-app assignment. Profiles that resolve to zero or to
// several accounts leave the parcel without a driver-app assignment.
func (h AssignDriverCommandHandler) reconcileDeliveryAssignment(
	ctx context.Context, uow AssignUoW, parcelID int64, profile *driver.Profile,
) error {
	accountID, ok, err := h.resolveDriverAccount(ctx, uow, profile)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	repo := uow.DeliveryAssignmentRepository()

	existing, err := repo.GetByParcel(ctx, parcelID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		created, cerr := assignment.NewDeliveryAssignment(parcelID, accountID)
		if cerr != nil {
			return cerr
		}
		return repo.Upsert(ctx, created)
	case err != nil:
		return err
	}

	if err = existing.Reassign(accountID); err != nil {
		return err
	}
	return repo.Upsert(ctx, existing)
}

func (h AssignDriverCommandHandler) resolveDriverAccount(
	ctx context.Context, uow AssignUoW, profile *driver.Profile,
) (int64, bool, error) {
	if profile.IsLinked() {
		return *profile.AccountID(), true, nil
	}

	matches, err := uow.AccountRepository().FindByEmailAndRole(
		ctx, profile.Email(), account.RoleDriver)
	if err != nil {
		return 0, false, err
	}

	switch len(matches) {
	case 1:
	case 0:
		h.log.Warn("no driver account for profile email, admin-only assignment",
			"driver_id", profile.ID(), "email", profile.Email())
		return 0, false, nil
	default:
		h.log.Warn("ambiguous driver account match, admin-only assignment",
			"driver_id", profile.ID(), "email", profile.Email(), "matches", len(matches))
		return 0, false, nil
	}

	if err = profile.LinkAccount(matches[0].ID()); err != nil {
		return 0, false, err
	}
	if err = uow.DriverRepository().Update(ctx, profile); err != nil {
		return 0, false, err
	}

	h.log.Info("linked driver profile to account by email",
		"driver_id", profile.ID(), "account_id", matches[0].ID())
	return matches[0].ID(), true, nil
}
