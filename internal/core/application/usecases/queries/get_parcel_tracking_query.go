// Package queries contains the read side of the CQRS split. Handlers run
// raw SQL over the GORM connection and return plain response structs; they
// never load aggregates or go through repositories.
package queries

import (
	"errors"
	"time"

	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetParcelTrackingQueryIsNotConstructed = errors.New(
	"GetParcelTrackingQuery must be created via NewGetParcelTrackingQuery constructor",
)

// GetParcelTrackingQuery retrieves the public tracking view of a parcel:
// its current state plus the full status trail, newest first.
type GetParcelTrackingQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetParcelTrackingQuery creates a tracking query for the given number.
func NewGetParcelTrackingQuery(trackingNumber kernel.TrackingNumber) (GetParcelTrackingQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetParcelTrackingQuery{}, err
	}

	return GetParcelTrackingQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelTrackingQueryIsNotConstructed)
}

// TrackingNumber returns the queried tracking number.
func (q GetParcelTrackingQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// TrackingHistoryEntry is one step of the status trail.
type TrackingHistoryEntry struct {
	Status    string
	Location  string
	Notes     string
	CreatedAt time.Time
}

// GetParcelTrackingQueryResponse is the public tracking view.
type GetParcelTrackingQueryResponse struct {
	TrackingNumber string
	CurrentStatus  string
	FromLocation   string
	ToLocation     string
	Price          decimal.Decimal
	CreatedAt      time.Time
	History        []TrackingHistoryEntry
}
