package commands

import (
	"errors"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"
)

var (
	ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
		"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
	)

	ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
		"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
	)
)

// MarkNotificationReadCommand marks a single notification of a client as read.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID int64
	clientID       int64

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark one notification read.
func NewMarkNotificationReadCommand(notificationID, clientID int64) (MarkNotificationReadCommand, error) {
	cmd := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNotificationID(notificationID),
		cmd.setClientID(clientID),
	); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the notification to mark.
func (c MarkNotificationReadCommand) NotificationID() int64 { return c.notificationID }

// ClientID returns the owning client; other clients' notifications are not
// visible to the command.
func (c MarkNotificationReadCommand) ClientID() int64 { return c.clientID }

func (c *MarkNotificationReadCommand) setNotificationID(notificationID int64) error {
	if notificationID <= 0 {
		return errs.NewValueIsInvalidError("notification id")
	}
	c.notificationID = notificationID
	return nil
}

func (c *MarkNotificationReadCommand) setClientID(clientID int64) error {
	if clientID <= 0 {
		return errs.NewValueIsInvalidError("client id")
	}
	c.clientID = clientID
	return nil
}

// MarkAllNotificationsReadCommand marks every unread notification of a client
// as read.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	clientID int64

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to mark all of a
// client's notifications read.
func NewMarkAllNotificationsReadCommand(clientID int64) (MarkAllNotificationsReadCommand, error) {
	cmd := MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if clientID <= 0 {
		return MarkAllNotificationsReadCommand{}, errs.NewValueIsInvalidError("client id")
	}
	cmd.clientID = clientID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// ClientID returns the owning client.
func (c MarkAllNotificationsReadCommand) ClientID() int64 { return c.clientID }
