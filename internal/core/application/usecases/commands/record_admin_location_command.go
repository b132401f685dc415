package commands

import (
	"errors"

	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordAdminLocationCommandIsNotConstructed = errors.New(
	"RecordAdminLocationCommand must be created via NewRecordAdminLocationCommand constructor",
)

// RecordAdminLocationCommand represents a driver position recorded from the
// admin dashboard, keyed by the driver profile rather than an account.
type RecordAdminLocationCommand struct { //nolint:recvcheck //using for validation
	driverID int64
	parcelID *int64
	point    kernel.GeoPoint
	speedKmh *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRecordAdminLocationCommand creates a command to store a profile-keyed
// driver position. Speed is optional.
func NewRecordAdminLocationCommand(
	driverID int64, parcelID *int64, point kernel.GeoPoint, speedKmh *decimal.Decimal,
) (RecordAdminLocationCommand, error) {
	cmd := RecordAdminLocationCommand{
		parcelID: parcelID,
		speedKmh: speedKmh,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setPoint(point),
	); err != nil {
		return RecordAdminLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordAdminLocationCommand) Validate() error {
	return c.guard.Validate(ErrRecordAdminLocationCommandIsNotConstructed)
}

// DriverID returns the driver profile identifier.
func (c RecordAdminLocationCommand) DriverID() int64 { return c.driverID }

// ParcelID returns the parcel being worked, or nil.
func (c RecordAdminLocationCommand) ParcelID() *int64 { return c.parcelID }

// Point returns the recorded coordinates.
func (c RecordAdminLocationCommand) Point() kernel.GeoPoint { return c.point }

// SpeedKmh returns the recorded speed, or nil.
func (c RecordAdminLocationCommand) SpeedKmh() *decimal.Decimal { return c.speedKmh }

func (c *RecordAdminLocationCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver id")
	}
	c.driverID = driverID
	return nil
}

func (c *RecordAdminLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.point = point
	return nil
}
