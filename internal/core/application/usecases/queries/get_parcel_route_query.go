package queries

import (
	"errors"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetParcelRouteQueryIsNotConstructed = errors.New(
	"GetParcelRouteQuery must be created via NewGetParcelRouteQuery constructor",
)

// GetParcelRouteQuery retrieves the map route of a parcel: both coordinate
// pairs plus the assigned driver's contact card when one exists.
type GetParcelRouteQuery struct {
	parcelID int64

	guard guard.ConstructorGuard
}

// NewGetParcelRouteQuery creates a route query for the parcel.
func NewGetParcelRouteQuery(parcelID int64) (GetParcelRouteQuery, error) {
	if parcelID <= 0 {
		return GetParcelRouteQuery{}, errs.NewValueIsInvalidError("parcel id")
	}

	return GetParcelRouteQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelRouteQueryIsNotConstructed)
}

// ParcelID returns the queried parcel.
func (q GetParcelRouteQuery) ParcelID() int64 { return q.parcelID }

// RouteDriver is the assigned driver's contact card on the route view.
type RouteDriver struct {
	DriverID      int64
	Name          string
	PhoneNumber   string
	VehicleNumber string
}

// GetParcelRouteQueryResponse is the map route of a parcel. Parcels without
// stored coordinates are reported as not found by the handler.
type GetParcelRouteQueryResponse struct {
	ParcelID       int64
	TrackingNumber string
	CurrentStatus  string
	FromLocation   string
	ToLocation     string
	PickupLat      decimal.Decimal
	PickupLng      decimal.Decimal
	DropLat        decimal.Decimal
	DropLng        decimal.Decimal
	Driver         *RouteDriver
}
