package commands

import (
	"errors"

	"parcelms/internal/core/domain/model/parcel"
	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a driver moving a parcel along the
// lifecycle. The driver is identified by the authenticated account.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID        int64
	driverAccountID int64
	target          parcel.Status

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command for a driver status update.
// The target must be a known status; whether the transition is allowed is
// decided by the aggregate inside the handler.
func NewUpdateParcelStatusCommand(
	parcelID, driverAccountID int64, target parcel.Status,
) (UpdateParcelStatusCommand, error) {
	cmd := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setDriverAccountID(driverAccountID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel to move.
func (c UpdateParcelStatusCommand) ParcelID() int64 { return c.parcelID }

// DriverAccountID returns the acting driver's account identifier.
func (c UpdateParcelStatusCommand) DriverAccountID() int64 { return c.driverAccountID }

// Target returns the requested status.
func (c UpdateParcelStatusCommand) Target() parcel.Status { return c.target }

func (c *UpdateParcelStatusCommand) setParcelID(parcelID int64) error {
	if parcelID <= 0 {
		return errs.NewValueIsInvalidError("parcel id")
	}
	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setDriverAccountID(driverAccountID int64) error {
	if driverAccountID <= 0 {
		return errs.NewValueIsInvalidError("driver account id")
	}
	c.driverAccountID = driverAccountID
	return nil
}

func (c *UpdateParcelStatusCommand) setTarget(target parcel.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
