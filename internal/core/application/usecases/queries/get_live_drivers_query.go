package queries

import (
	"errors"

	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLiveDriversQueryIsNotConstructed = errors.New(
	"GetLiveDriversQuery must be created via NewGetLiveDriversQuery constructor",
)

// GetLiveDriversQuery retrieves every driver with their latest known
// position for the admin live map.
type GetLiveDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLiveDriversQuery creates a live-driver map query.
func NewGetLiveDriversQuery() GetLiveDriversQuery {
	return GetLiveDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLiveDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetLiveDriversQueryIsNotConstructed)
}

// LiveDriver is one driver on the live map. Position fields are nil when no
// location has ever been recorded for the driver.
type LiveDriver struct {
	DriverID       int64
	Name           string
	Latitude       *decimal.Decimal
	Longitude      *decimal.Decimal
	SpeedKmh       *decimal.Decimal
	AssignedParcel *int64
	ParcelStatus   *string
}
