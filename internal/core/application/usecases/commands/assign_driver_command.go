package commands

import (
	"errors"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents an administrator assigning a driver profile
// to an accepted parcel.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	parcelID int64
	driverID int64
	adminID  int64

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to a parcel.
func NewAssignDriverCommand(parcelID, driverID, adminID int64) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setDriverID(driverID),
		cmd.setAdminID(adminID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// ParcelID returns the parcel to assign.
func (c AssignDriverCommand) ParcelID() int64 { return c.parcelID }

// DriverID returns the driver profile to assign.
func (c AssignDriverCommand) DriverID() int64 { return c.driverID }

// AdminID returns the acting administrator's account identifier.
func (c AssignDriverCommand) AdminID() int64 { return c.adminID }

func (c *AssignDriverCommand) setParcelID(parcelID int64) error {
	if parcelID <= 0 {
		return errs.NewValueIsInvalidError("parcel id")
	}
	c.parcelID = parcelID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver id")
	}
	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setAdminID(adminID int64) error {
	if adminID <= 0 {
		return errs.NewValueIsInvalidError("admin id")
	}
	c.adminID = adminID
	return nil
}
