// Package notification provides the client-facing notification record.
// Notifications are append-only rows for later client polling; the only
// permitted mutation is toggling the read flag.
package notification

import (
	"fmt"
	"time"

	"parcelms/internal/pkg/errs"
)

// Type categorizes a notification. The string values are a stable contract
// with the client application.
type Type string

const (
	TypeParcelCreated Type = "parcel_created"
	TypeStatusUpdate  Type = "status_update"
	TypeDelivered     Type = "delivered"
	TypeCancelled     Type = "cancelled"
	TypeGeneral       Type = "general"
)

// Validate checks that the type is a known enum value.
func (t Type) Validate() error {
	switch t {
	case TypeParcelCreated, TypeStatusUpdate, TypeDelivered, TypeCancelled, TypeGeneral:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("notification type",
			fmt.Errorf("%q is not a valid notification type", string(t)))
	}
}

// Notification is a message for a client about one of their parcels.
type Notification struct {
	id        int64
	clientID  int64
	parcelID  *int64
	typ       Type
	title     string
	message   string
	isRead    bool
	createdAt time.Time

	isConstructed bool
}

// New creates an unread notification for a client. parcelID is optional.
func New(clientID int64, parcelID *int64, typ Type, title, message string) (*Notification, error) {
	if clientID <= 0 {
		return nil, errs.NewValueIsInvalidError("client id")
	}
	if err := typ.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		clientID:      clientID,
		parcelID:      parcelID,
		typ:           typ,
		title:         title,
		message:       message,
		isConstructed: true,
	}, nil
}

// Restore reconstructs a notification from persistence.
func Restore(
	id, clientID int64, parcelID *int64, typ Type, title, message string, isRead bool, createdAt time.Time,
) (*Notification, error) {
	n, err := New(clientID, parcelID, typ, title, message)
	if err != nil {
		return nil, err
	}

	n.id = id
	n.isRead = isRead
	n.createdAt = createdAt
	return n, nil
}

// Validate ensures the notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return errs.NewValueIsRequiredError("notification must be created via New or Restore")
	}
	return nil
}

// ID returns the persistent identifier, zero until persisted.
func (n *Notification) ID() int64 { return n.id }

// ClientID returns the recipient client's account identifier.
func (n *Notification) ClientID() int64 { return n.clientID }

// ParcelID returns the related parcel's identifier, or nil.
func (n *Notification) ParcelID() *int64 { return n.parcelID }

// NotificationType returns the notification category.
func (n *Notification) NotificationType() Type { return n.typ }

// Title returns the notification title.
func (n *Notification) Title() string { return n.title }

// Message returns the notification body.
func (n *Notification) Message() string { return n.message }

// IsRead reports whether the client has read the notification.
func (n *Notification) IsRead() bool { return n.isRead }

// CreatedAt returns the persistence timestamp.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// MarkRead flags the notification as read. Idempotent.
func (n *Notification) MarkRead() {
	n.isRead = true
}
