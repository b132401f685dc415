package commands

import (
	"context"

	"parcelms/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler marks a single notification as read.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for marking one
// notification read.
func NewMarkNotificationReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the notification read. A notification owned by a different
// client surfaces as not found.
func (h MarkNotificationReadCommandHandler) Handle(
	ctx context.Context, cmd MarkNotificationReadCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()

	note, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}
	if note.ClientID() != cmd.ClientID() {
		return errs.NewObjectNotFoundError("notification", cmd.NotificationID())
	}

	note.MarkRead()
	if err = repo.Update(ctx, note); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// MarkAllNotificationsReadCommandHandler marks every unread notification of a
// client as read.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for the bulk
// mark-read operation.
func NewMarkAllNotificationsReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks all of the client's notifications read and returns how many
// changed.
func (h MarkAllNotificationsReadCommandHandler) Handle(
	ctx context.Context, cmd MarkAllNotificationsReadCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	affected, err := uow.NotificationRepository().MarkAllRead(ctx, cmd.ClientID())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return affected, nil
}
