// Package locationrepo persists driver position reports from both sources:
// driver-application pings and administrator-recorded positions. Separate
// tables; the read side merges them with its own preference order.
package locationrepo

import (
	"context"
	"time"

	"parcelms/internal/core/domain/model/tracking"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DriverPingDTO represents one driver-application position report.
type DriverPingDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	AccountID  int64           `gorm:"index;not null"`
	ParcelID   *int64          `gorm:"index"`
	Latitude   decimal.Decimal `gorm:"type:decimal(10,7);not null"`
	Longitude  decimal.Decimal `gorm:"type:decimal(10,7);not null"`
	RecordedAt time.Time       `gorm:"autoCreateTime;index"`
}

// TableName specifies the database table name for driver pings.
func (DriverPingDTO) TableName() string {
	return "driver_locations"
}

// AdminLocationDTO represents one administrator-recorded position.
type AdminLocationDTO struct {
	ID         int64            `gorm:"primaryKey;autoIncrement"`
	DriverID   int64            `gorm:"index;not null"`
	ParcelID   *int64           `gorm:"index"`
	Latitude   decimal.Decimal  `gorm:"type:decimal(10,7);not null"`
	Longitude  decimal.Decimal  `gorm:"type:decimal(10,7);not null"`
	SpeedKmh   *decimal.Decimal `gorm:"type:decimal(10,2)"`
	RecordedAt time.Time        `gorm:"autoCreateTime;index"`
}

// TableName specifies the database table name for admin-recorded positions.
func (AdminLocationDTO) TableName() string {
	return "admin_driver_locations"
}

// GormTrackLocationRepository implements TrackLocationRepository using GORM.
type GormTrackLocationRepository struct {
	db *gorm.DB
}

// NewGormTrackLocationRepository creates a new GORM location repository.
func NewGormTrackLocationRepository(db *gorm.DB) *GormTrackLocationRepository {
	return &GormTrackLocationRepository{db: db}
}

// AddPing stores a driver-application position report.
func (r *GormTrackLocationRepository) AddPing(ctx context.Context, ping *tracking.DriverPing) error {
	if err := ping.Validate(); err != nil {
		return err
	}

	dto := DriverPingDTO{
		AccountID: ping.AccountID(),
		ParcelID:  ping.ParcelID(),
		Latitude:  ping.Point().Lat(),
		Longitude: ping.Point().Lng(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddAdminLocation stores an administrator-recorded position.
func (r *GormTrackLocationRepository) AddAdminLocation(
	ctx context.Context, loc *tracking.AdminLocation,
) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	dto := AdminLocationDTO{
		DriverID:  loc.DriverID(),
		ParcelID:  loc.ParcelID(),
		Latitude:  loc.Point().Lat(),
		Longitude: loc.Point().Lng(),
		SpeedKmh:  loc.SpeedKmh(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}
