package queries

import (
	"errors"

	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery lists the driver fleet for the admin dashboard.
type GetDriversQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a fleet listing query.
func NewGetDriversQuery(availableOnly bool) (GetDriversQuery, error) {
	return GetDriversQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// AvailableOnly restricts the listing to drivers marked available.
func (q GetDriversQuery) AvailableOnly() bool { return q.availableOnly }

// DriverView is one driver row in the fleet listing.
type DriverView struct {
	DriverID        int64
	Name            string
	Email           string
	PhoneNumber     string
	VehicleType     string
	VehicleNumber   string
	CurrentLocation string
	Rating          decimal.Decimal
	IsAvailable     bool
	AccountID       *int64
	ActiveParcels   int64
}

// GetDriversQueryResponse is the full fleet listing.
type GetDriversQueryResponse struct {
	Drivers []DriverView
}
