package queries

import (
	"errors"

	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLiveParcelsQueryIsNotConstructed = errors.New(
	"GetLiveParcelsQuery must be created via NewGetLiveParcelsQuery constructor",
)

// GetLiveParcelsQuery retrieves every in-flight parcel with the latest known
// position of its driver for the admin live map.
type GetLiveParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLiveParcelsQuery creates a live-parcel map query.
func NewGetLiveParcelsQuery() GetLiveParcelsQuery {
	return GetLiveParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLiveParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetLiveParcelsQueryIsNotConstructed)
}

// LiveParcel is one in-flight parcel on the live map.
type LiveParcel struct {
	ParcelID       int64
	TrackingNumber string
	CurrentStatus  string
	DriverID       *int64
	Latitude       *decimal.Decimal
	Longitude      *decimal.Decimal
}
