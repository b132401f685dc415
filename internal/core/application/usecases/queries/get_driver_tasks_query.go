package queries

import (
	"errors"
	"time"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDriverTasksQueryIsNotConstructed = errors.New(
	"GetDriverTasksQuery must be created via NewGetDriverTasksQuery constructor",
)

// GetDriverTasksQuery retrieves the parcels a driver account is currently
// working: assigned through out_for_delivery.
type GetDriverTasksQuery struct {
	driverAccountID int64

	guard guard.ConstructorGuard
}

// NewGetDriverTasksQuery creates a task-list query for the driver account.
func NewGetDriverTasksQuery(driverAccountID int64) (GetDriverTasksQuery, error) {
	if driverAccountID <= 0 {
		return GetDriverTasksQuery{}, errs.NewValueIsInvalidError("driver account id")
	}

	return GetDriverTasksQuery{
		driverAccountID: driverAccountID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverTasksQueryIsNotConstructed)
}

// DriverAccountID returns the queried driver account.
func (q GetDriverTasksQuery) DriverAccountID() int64 { return q.driverAccountID }

// DriverTask is one parcel on the driver's work list.
type DriverTask struct {
	ParcelID            int64
	TrackingNumber      string
	CurrentStatus       string
	FromLocation        string
	ToLocation          string
	Weight              decimal.Decimal
	SpecialInstructions string
	StartedAt           *time.Time
	AssignedAt          time.Time
}
