package commands

import (
	"errors"

	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"
)

var ErrReportDriverLocationCommandIsNotConstructed = errors.New(
	"ReportDriverLocationCommand must be created via NewReportDriverLocationCommand constructor",
)

// ReportDriverLocationCommand represents a position ping from the driver
// application, optionally tied to the parcel currently being worked.
type ReportDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverAccountID int64
	parcelID        *int64
	point           kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewReportDriverLocationCommand creates a command to store a driver position.
func NewReportDriverLocationCommand(
	driverAccountID int64, parcelID *int64, point kernel.GeoPoint,
) (ReportDriverLocationCommand, error) {
	cmd := ReportDriverLocationCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverAccountID(driverAccountID),
		cmd.setPoint(point),
	); err != nil {
		return ReportDriverLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportDriverLocationCommandIsNotConstructed)
}

// DriverAccountID returns the reporting driver's account identifier.
func (c ReportDriverLocationCommand) DriverAccountID() int64 { return c.driverAccountID }

// ParcelID returns the parcel being worked, or nil.
func (c ReportDriverLocationCommand) ParcelID() *int64 { return c.parcelID }

// Point returns the reported coordinates.
func (c ReportDriverLocationCommand) Point() kernel.GeoPoint { return c.point }

func (c *ReportDriverLocationCommand) setDriverAccountID(driverAccountID int64) error {
	if driverAccountID <= 0 {
		return errs.NewValueIsInvalidError("driver account id")
	}
	c.driverAccountID = driverAccountID
	return nil
}

func (c *ReportDriverLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.point = point
	return nil
}
