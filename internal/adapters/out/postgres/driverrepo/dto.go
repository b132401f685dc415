// Package driverrepo provides data transfer objects and mapping functions
// for driver profile persistence.
package driverrepo

import (
	"time"

	"parcelms/internal/core/domain/model/driver"
)

// DriverDTO represents the database structure for persisting driver profiles.
type DriverDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Name            string `gorm:"not null"`
	Email           string `gorm:"index;not null"`
	PhoneNumber     string `gorm:"not null"`
	VehicleType     string `gorm:"type:varchar(20);not null"`
	VehicleNumber   string `gorm:"not null"`
	CurrentLocation string
	Rating          float64 `gorm:"not null;default:0"`
	IsAvailable     bool    `gorm:"not null;default:true"`
	AccountID       *int64  `gorm:"uniqueIndex"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for driver profiles.
func (DriverDTO) TableName() string {
	return "admin_drivers"
}

// fromDomain converts a driver profile to its database representation.
func fromDomain(profile *driver.Profile) DriverDTO {
	return DriverDTO{
		ID:              profile.ID(),
		Name:            profile.Name(),
		Email:           profile.Email(),
		PhoneNumber:     profile.PhoneNumber(),
		VehicleType:     string(profile.VehicleType()),
		VehicleNumber:   profile.VehicleNumber(),
		CurrentLocation: profile.CurrentLocation(),
		Rating:          profile.Rating(),
		IsAvailable:     profile.IsAvailable(),
		AccountID:       profile.AccountID(),
	}
}

// toDomain converts a database DTO to a driver profile.
func toDomain(dto DriverDTO) (*driver.Profile, error) {
	return driver.RestoreProfile(
		dto.ID,
		dto.Name,
		dto.Email,
		dto.PhoneNumber,
		driver.VehicleType(dto.VehicleType),
		dto.VehicleNumber,
		dto.CurrentLocation,
		dto.Rating,
		dto.IsAvailable,
		dto.AccountID,
	)
}
