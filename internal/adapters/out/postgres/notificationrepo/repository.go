// Package notificationrepo provides data transfer objects and mapping
// functions for client notification persistence.
package notificationrepo

import (
	"context"
	"errors"
	"time"

	"parcelms/internal/core/domain/model/notification"
	"parcelms/internal/pkg/errs"

	"gorm.io/gorm"
)

// NotificationDTO represents the database structure for notifications.
type NotificationDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	ClientID         int64  `gorm:"index;not null"`
	ParcelID         *int64 `gorm:"index"`
	NotificationType string `gorm:"type:varchar(20);not null"`
	Title            string `gorm:"not null"`
	Message          string `gorm:"not null"`
	IsRead           bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:               n.ID(),
		ClientID:         n.ClientID(),
		ParcelID:         n.ParcelID(),
		NotificationType: string(n.NotificationType()),
		Title:            n.Title(),
		Message:          n.Message(),
		IsRead:           n.IsRead(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	return notification.Restore(
		dto.ID,
		dto.ClientID,
		dto.ParcelID,
		notification.Type(dto.NotificationType),
		dto.Title,
		dto.Message,
		dto.IsRead,
		dto.CreatedAt,
	)
}

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add stores a notification.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id int64) (*notification.Notification, error) {
	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing notification.
func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", dto.ID)
	}

	return nil
}

// MarkAllRead marks every unread notification of the client as read and
// returns the number affected.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, clientID int64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("client_id = ? AND NOT is_read", clientID).
		Update("is_read", true)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
