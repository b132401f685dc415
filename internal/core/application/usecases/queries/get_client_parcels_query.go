package queries

import (
	"errors"
	"time"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetClientParcelsQueryIsNotConstructed = errors.New(
	"GetClientParcelsQuery must be created via NewGetClientParcelsQuery constructor",
)

// GetClientParcelsQuery lists a client's parcels, optionally narrowed to one
// status.
type GetClientParcelsQuery struct {
	clientID int64
	status   string

	guard guard.ConstructorGuard
}

// NewGetClientParcelsQuery creates a listing query. An empty status means no
// status filter.
func NewGetClientParcelsQuery(clientID int64, status string) (GetClientParcelsQuery, error) {
	if clientID <= 0 {
		return GetClientParcelsQuery{}, errs.NewValueIsInvalidError("client id")
	}

	return GetClientParcelsQuery{
		clientID: clientID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetClientParcelsQueryIsNotConstructed)
}

// ClientID returns the owning client.
func (q GetClientParcelsQuery) ClientID() int64 { return q.clientID }

// Status returns the status filter, empty when unset.
func (q GetClientParcelsQuery) Status() string { return q.status }

// ClientParcelView is one row of the client's parcel listing.
type ClientParcelView struct {
	ParcelID       int64
	TrackingNumber string
	CurrentStatus  string
	FromLocation   string
	ToLocation     string
	Price          decimal.Decimal
	DriverName     *string
	CreatedAt      time.Time
}

// GetClientParcelsQueryResponse is the client's parcel listing, newest first.
type GetClientParcelsQueryResponse struct {
	Parcels []ClientParcelView
}
