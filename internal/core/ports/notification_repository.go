package ports

import (
	"context"

	"parcelms/internal/core/domain/model/notification"
	"parcelms/internal/core/domain/model/pricing"
	"parcelms/internal/core/domain/model/tracking"
)

// NotificationRepository persists client notifications.
type NotificationRepository interface {
	// Add stores a notification and assigns its identifier.
	Add(ctx context.Context, n *notification.Notification) error

	// Get retrieves a notification by its identifier.
	Get(ctx context.Context, id int64) (*notification.Notification, error)

	// Update persists changes to an existing notification.
	Update(ctx context.Context, n *notification.Notification) error

	// MarkAllRead marks every unread notification of the client as read and
	// returns the number affected.
	MarkAllRead(ctx context.Context, clientID int64) (int64, error)
}

// PricingRuleRepository reads the configured pricing rules.
type PricingRuleRepository interface {
	// GetActive retrieves all active rules.
	GetActive(ctx context.Context) ([]*pricing.Rule, error)
}

// TrackLocationRepository persists driver position reports from both
// sources: application pings and administrator-recorded positions.
type TrackLocationRepository interface {
	// AddPing stores a driver-application position report.
	AddPing(ctx context.Context, ping *tracking.DriverPing) error

	// AddAdminLocation stores an administrator-recorded position.
	AddAdminLocation(ctx context.Context, loc *tracking.AdminLocation) error
}
