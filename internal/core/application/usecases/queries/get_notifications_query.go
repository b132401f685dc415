package queries

import (
	"errors"
	"time"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a client's notifications, optionally
// narrowed to only unread ones.
type GetNotificationsQuery struct {
	clientID   int64
	unreadOnly bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a notification listing query.
func NewGetNotificationsQuery(clientID int64, unreadOnly bool) (GetNotificationsQuery, error) {
	if clientID <= 0 {
		return GetNotificationsQuery{}, errs.NewValueIsInvalidError("client id")
	}

	return GetNotificationsQuery{
		clientID:   clientID,
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// ClientID returns the queried client.
func (q GetNotificationsQuery) ClientID() int64 { return q.clientID }

// UnreadOnly reports whether read notifications are filtered out.
func (q GetNotificationsQuery) UnreadOnly() bool { return q.unreadOnly }

// NotificationView is one notification in the listing.
type NotificationView struct {
	ID        int64
	ParcelID  *int64
	Type      string
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
