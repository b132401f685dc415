package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetNotificationsQueryHandler lists a client's notifications, newest first.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification listings.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle returns the client's notifications, optionally unread only.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context, query GetNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT
			id,
			parcel_id,
			notification_type,
			title,
			message,
			is_read,
			created_at
		FROM notifications
		WHERE client_id = ?
	`
	if query.UnreadOnly() {
		q += ` AND NOT is_read`
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := h.db.WithContext(ctx).Raw(q, query.ClientID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]NotificationView, 0)
	for rows.Next() {
		var view NotificationView
		var parcelID sql.NullInt64

		if err = rows.Scan(
			&view.ID, &parcelID, &view.Type, &view.Title,
			&view.Message, &view.IsRead, &view.CreatedAt,
		); err != nil {
			return nil, err
		}
		if parcelID.Valid {
			view.ParcelID = &parcelID.Int64
		}

		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
