package commands

import (
	"errors"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"
)

var ErrRejectParcelCommandIsNotConstructed = errors.New(
	"RejectParcelCommand must be created via NewRejectParcelCommand constructor",
)

// RejectParcelCommand represents an administrator rejecting a requested
// parcel. The optional notes land in the parcel's history trail.
type RejectParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID int64
	adminID  int64
	notes    string

	guard guard.ConstructorGuard
}

// NewRejectParcelCommand creates a command to reject a parcel.
func NewRejectParcelCommand(parcelID, adminID int64, notes string) (RejectParcelCommand, error) {
	cmd := RejectParcelCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setAdminID(adminID),
	); err != nil {
		return RejectParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectParcelCommand) Validate() error {
	return c.guard.Validate(ErrRejectParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to reject.
func (c RejectParcelCommand) ParcelID() int64 { return c.parcelID }

// AdminID returns the acting administrator's account identifier.
func (c RejectParcelCommand) AdminID() int64 { return c.adminID }

// Notes returns the optional rejection reason.
func (c RejectParcelCommand) Notes() string { return c.notes }

func (c *RejectParcelCommand) setParcelID(parcelID int64) error {
	if parcelID <= 0 {
		return errs.NewValueIsInvalidError("parcel id")
	}
	c.parcelID = parcelID
	return nil
}

func (c *RejectParcelCommand) setAdminID(adminID int64) error {
	if adminID <= 0 {
		return errs.NewValueIsInvalidError("admin id")
	}
	c.adminID = adminID
	return nil
}
