package queries

import (
	"errors"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"
)

var ErrGetParcelContactsQueryIsNotConstructed = errors.New(
	"GetParcelContactsQuery must be created via NewGetParcelContactsQuery constructor",
)

// GetParcelContactsQuery exchanges contact cards between the two sides of a
// delivery: the client who sent the parcel and the driver carrying it.
type GetParcelContactsQuery struct {
	parcelID int64

	guard guard.ConstructorGuard
}

// NewGetParcelContactsQuery creates a contact exchange query for the parcel.
func NewGetParcelContactsQuery(parcelID int64) (GetParcelContactsQuery, error) {
	if parcelID <= 0 {
		return GetParcelContactsQuery{}, errs.NewValueIsInvalidError("parcel id")
	}

	return GetParcelContactsQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelContactsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelContactsQueryIsNotConstructed)
}

// ParcelID returns the queried parcel.
func (q GetParcelContactsQuery) ParcelID() int64 { return q.parcelID }

// ClientContact is the sender's contact card shown to the driver.
type ClientContact struct {
	ClientID    int64
	FullName    string
	Email       string
	PhoneNumber string
}

// DriverContact is the driver's contact card shown to the client.
type DriverContact struct {
	DriverID      int64
	Name          string
	PhoneNumber   string
	VehicleType   string
	VehicleNumber string
}

// GetParcelContactsQueryResponse carries both contact cards for a parcel.
// The driver card is nil until a driver has been assigned.
type GetParcelContactsQueryResponse struct {
	ParcelID       int64
	TrackingNumber string
	Client         ClientContact
	Driver         *DriverContact
}
