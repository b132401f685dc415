package commands

import (
	"errors"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"
)

var ErrAcceptParcelCommandIsNotConstructed = errors.New(
	"AcceptParcelCommand must be created via NewAcceptParcelCommand constructor",
)

// AcceptParcelCommand represents an administrator accepting a requested parcel.
type AcceptParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID int64
	adminID  int64

	guard guard.ConstructorGuard
}

// NewAcceptParcelCommand creates a command to accept a parcel.
func NewAcceptParcelCommand(parcelID, adminID int64) (AcceptParcelCommand, error) {
	cmd := AcceptParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setAdminID(adminID),
	); err != nil {
		return AcceptParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptParcelCommand) Validate() error {
	return c.guard.Validate(ErrAcceptParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to accept.
func (c AcceptParcelCommand) ParcelID() int64 { return c.parcelID }

// AdminID returns the acting administrator's account identifier.
func (c AcceptParcelCommand) AdminID() int64 { return c.adminID }

func (c *AcceptParcelCommand) setParcelID(parcelID int64) error {
	if parcelID <= 0 {
		return errs.NewValueIsInvalidError("parcel id")
	}
	c.parcelID = parcelID
	return nil
}

func (c *AcceptParcelCommand) setAdminID(adminID int64) error {
	if adminID <= 0 {
		return errs.NewValueIsInvalidError("admin id")
	}
	c.adminID = adminID
	return nil
}
