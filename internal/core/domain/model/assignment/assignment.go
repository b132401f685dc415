// Package assignment provides the two parallel records of the parcel-driver
// relationship: the administrator-owned AdminAssignment (parcel to driver
// profile) and the driver-app-facing DeliveryAssignment (parcel to
// authenticated account). The assignment reconciler keeps them consistent;
// neither is deleted while the parcel exists.
package assignment

import (
	"time"

	"parcelms/internal/pkg/errs"
)

// AdminAssignment maps a parcel to the driver profile an administrator chose
// for it. One per parcel; reassignment overwrites the driver.
type AdminAssignment struct {
	id         int64
	parcelID   int64
	driverID   int64
	assignedAt time.Time

	isConstructed bool
}

// NewAdminAssignment creates an assignment of driverID to parcelID.
func NewAdminAssignment(parcelID, driverID int64) (*AdminAssignment, error) {
	if parcelID <= 0 {
		return nil, errs.NewValueIsInvalidError("parcel id")
	}
	if driverID <= 0 {
		return nil, errs.NewValueIsInvalidError("driver id")
	}

	return &AdminAssignment{
		parcelID:      parcelID,
		driverID:      driverID,
		isConstructed: true,
	}, nil
}

// RestoreAdminAssignment reconstructs an assignment from persistence.
func RestoreAdminAssignment(id, parcelID, driverID int64, assignedAt time.Time) (*AdminAssignment, error) {
	a, err := NewAdminAssignment(parcelID, driverID)
	if err != nil {
		return nil, err
	}

	a.id = id
	a.assignedAt = assignedAt
	return a, nil
}

// Validate ensures the assignment was created through a constructor.
func (a *AdminAssignment) Validate() error {
	if a == nil || !a.isConstructed {
		return errs.NewValueIsRequiredError("admin assignment must be created via NewAdminAssignment")
	}
	return nil
}

// ID returns the persistent identifier, zero until persisted.
func (a *AdminAssignment) ID() int64 { return a.id }

// ParcelID returns the assigned parcel's identifier.
func (a *AdminAssignment) ParcelID() int64 { return a.parcelID }

// DriverID returns the assigned driver profile's identifier.
func (a *AdminAssignment) DriverID() int64 { return a.driverID }

// AssignedAt returns the persistence timestamp.
func (a *AdminAssignment) AssignedAt() time.Time { return a.assignedAt }

// Reassign points the assignment at a different driver profile. Idempotent
// for the same driver.
func (a *AdminAssignment) Reassign(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver id")
	}
	a.driverID = driverID
	return nil
}

// DeliveryAssignment maps a parcel to the authenticated account of the driver
// working it. This is the record the driver application reads to build its
// task list. One per parcel.
type DeliveryAssignment struct {
	id          int64
	parcelID    int64
	accountID   int64
	startedAt   *time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewDeliveryAssignment creates an assignment of accountID to parcelID.
func NewDeliveryAssignment(parcelID, accountID int64) (*DeliveryAssignment, error) {
	if parcelID <= 0 {
		return nil, errs.NewValueIsInvalidError("parcel id")
	}
	if accountID <= 0 {
		return nil, errs.NewValueIsInvalidError("account id")
	}

	return &DeliveryAssignment{
		parcelID:      parcelID,
		accountID:     accountID,
		isConstructed: true,
	}, nil
}

// RestoreDeliveryAssignment reconstructs an assignment from persistence.
func RestoreDeliveryAssignment(
	id, parcelID, accountID int64, startedAt, completedAt *time.Time,
) (*DeliveryAssignment, error) {
	a, err := NewDeliveryAssignment(parcelID, accountID)
	if err != nil {
		return nil, err
	}

	a.id = id
	a.startedAt = startedAt
	a.completedAt = completedAt
	return a, nil
}

// Validate ensures the assignment was created through a constructor.
func (a *DeliveryAssignment) Validate() error {
	if a == nil || !a.isConstructed {
		return errs.NewValueIsRequiredError("delivery assignment must be created via NewDeliveryAssignment")
	}
	return nil
}

// ID returns the persistent identifier, zero until persisted.
func (a *DeliveryAssignment) ID() int64 { return a.id }

// ParcelID returns the assigned parcel's identifier.
func (a *DeliveryAssignment) ParcelID() int64 { return a.parcelID }

// AccountID returns the working driver's account identifier.
func (a *DeliveryAssignment) AccountID() int64 { return a.accountID }

// StartedAt returns when the driver picked the parcel up, nil until then.
func (a *DeliveryAssignment) StartedAt() *time.Time { return a.startedAt }

// CompletedAt returns when the parcel was delivered, nil until then.
func (a *DeliveryAssignment) CompletedAt() *time.Time { return a.completedAt }

// Reassign points the assignment at a different driver account and clears
// progress timestamps. Idempotent for the same account.
func (a *DeliveryAssignment) Reassign(accountID int64) error {
	if accountID <= 0 {
		return errs.NewValueIsInvalidError("account id")
	}
	if a.accountID == accountID {
		return nil
	}

	a.accountID = accountID
	a.startedAt = nil
	a.completedAt = nil
	return nil
}

// MarkStarted records the pickup time once; later calls are ignored.
func (a *DeliveryAssignment) MarkStarted(at time.Time) {
	if a.startedAt == nil {
		a.startedAt = &at
	}
}

// MarkCompleted records the delivery time once; later calls are ignored.
func (a *DeliveryAssignment) MarkCompleted(at time.Time) {
	if a.completedAt == nil {
		a.completedAt = &at
	}
}
