// Package tracking provides the two location record kinds reported for
// drivers: pings from the driver application (keyed by authenticated
// account) and administrator-recorded positions (keyed by driver profile).
// The two sources are never merged; readers try them in preference order.
package tracking

import (
	"time"

	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DriverPing is a position report from the driver application, keyed by the
// driver's authenticated account. This is the preferred location source.
type DriverPing struct {
	id         int64
	accountID  int64
	parcelID   *int64
	point      kernel.GeoPoint
	recordedAt time.Time

	isConstructed bool
}

// NewDriverPing creates a position report for accountID, optionally tied to
// the parcel being worked.
func NewDriverPing(accountID int64, parcelID *int64, point kernel.GeoPoint) (*DriverPing, error) {
	if accountID <= 0 {
		return nil, errs.NewValueIsInvalidError("account id")
	}
	if err := point.Validate(); err != nil {
		return nil, err
	}

	return &DriverPing{
		accountID:     accountID,
		parcelID:      parcelID,
		point:         point,
		isConstructed: true,
	}, nil
}

// RestoreDriverPing reconstructs a ping from persistence.
func RestoreDriverPing(
	id, accountID int64, parcelID *int64, point kernel.GeoPoint, recordedAt time.Time,
) (*DriverPing, error) {
	p, err := NewDriverPing(accountID, parcelID, point)
	if err != nil {
		return nil, err
	}

	p.id = id
	p.recordedAt = recordedAt
	return p, nil
}

// Validate ensures the ping was created through a constructor.
func (p *DriverPing) Validate() error {
	if p == nil || !p.isConstructed {
		return errs.NewValueIsRequiredError("driver ping must be created via NewDriverPing")
	}
	return nil
}

// ID returns the persistent identifier, zero until persisted.
func (p *DriverPing) ID() int64 { return p.id }

// AccountID returns the reporting driver's account identifier.
func (p *DriverPing) AccountID() int64 { return p.accountID }

// ParcelID returns the parcel being worked, or nil.
func (p *DriverPing) ParcelID() *int64 { return p.parcelID }

// Point returns the reported coordinates.
func (p *DriverPing) Point() kernel.GeoPoint { return p.point }

// RecordedAt returns the persistence timestamp.
func (p *DriverPing) RecordedAt() time.Time { return p.recordedAt }

// AdminLocation is an administrator-recorded driver position, keyed by the
// driver profile. Fallback source when no ping exists for the driver's
// account (or the profile has no account at all).
type AdminLocation struct {
	id         int64
	driverID   int64
	parcelID   *int64
	point      kernel.GeoPoint
	speedKmh   *decimal.Decimal
	recordedAt time.Time

	isConstructed bool
}

// NewAdminLocation creates an administrator-recorded position for driverID.
// Speed is optional and stored with two decimal places.
func NewAdminLocation(
	driverID int64, parcelID *int64, point kernel.GeoPoint, speedKmh *decimal.Decimal,
) (*AdminLocation, error) {
	if driverID <= 0 {
		return nil, errs.NewValueIsInvalidError("driver id")
	}
	if err := point.Validate(); err != nil {
		return nil, err
	}

	loc := &AdminLocation{
		driverID:      driverID,
		parcelID:      parcelID,
		point:         point,
		isConstructed: true,
	}

	if speedKmh != nil {
		if speedKmh.IsNegative() {
			return nil, errs.NewValueIsInvalidError("speed")
		}
		rounded := speedKmh.Round(2)
		loc.speedKmh = &rounded
	}

	return loc, nil
}

// RestoreAdminLocation reconstructs a recorded position from persistence.
func RestoreAdminLocation(
	id, driverID int64, parcelID *int64, point kernel.GeoPoint, speedKmh *decimal.Decimal, recordedAt time.Time,
) (*AdminLocation, error) {
	loc, err := NewAdminLocation(driverID, parcelID, point, speedKmh)
	if err != nil {
		return nil, err
	}

	loc.id = id
	loc.recordedAt = recordedAt
	return loc, nil
}

// Validate ensures the location was created through a constructor.
func (l *AdminLocation) Validate() error {
	if l == nil || !l.isConstructed {
		return errs.NewValueIsRequiredError("admin location must be created via NewAdminLocation")
	}
	return nil
}

// ID returns the persistent identifier, zero until persisted.
func (l *AdminLocation) ID() int64 { return l.id }

// DriverID returns the driver profile's identifier.
func (l *AdminLocation) DriverID() int64 { return l.driverID }

// ParcelID returns the parcel being worked, or nil.
func (l *AdminLocation) ParcelID() *int64 { return l.parcelID }

// Point returns the recorded coordinates.
func (l *AdminLocation) Point() kernel.GeoPoint { return l.point }

// SpeedKmh returns the recorded speed, or nil.
func (l *AdminLocation) SpeedKmh() *decimal.Decimal { return l.speedKmh }

// RecordedAt returns the persistence timestamp.
func (l *AdminLocation) RecordedAt() time.Time { return l.recordedAt }
