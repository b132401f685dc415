package queries

import (
	"errors"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"
)

var ErrGetParcelStatsQueryIsNotConstructed = errors.New(
	"GetParcelStatsQuery must be created via NewGetParcelStatsQuery constructor",
)

// GetParcelStatsQuery retrieves a client's dashboard counters.
type GetParcelStatsQuery struct {
	clientID int64

	guard guard.ConstructorGuard
}

// NewGetParcelStatsQuery creates a stats query for the client.
func NewGetParcelStatsQuery(clientID int64) (GetParcelStatsQuery, error) {
	if clientID <= 0 {
		return GetParcelStatsQuery{}, errs.NewValueIsInvalidError("client id")
	}

	return GetParcelStatsQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelStatsQueryIsNotConstructed)
}

// ClientID returns the queried client.
func (q GetParcelStatsQuery) ClientID() int64 { return q.clientID }

// GetParcelStatsQueryResponse holds the client dashboard counters.
type GetParcelStatsQueryResponse struct {
	Total               int64
	ByStatus            map[string]int64
	UnreadNotifications int64
}
