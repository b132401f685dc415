// Package assignmentrepo provides data transfer objects and mapping functions
// for the two parcel-driver assignment records: the administrator-owned link
// to a driver profile and the driver-app-facing link to an account.
package assignmentrepo

import (
	"time"

	"parcelms/internal/core/domain/model/assignment"
)

// AdminAssignmentDTO represents the administrator-owned assignment row.
type AdminAssignmentDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ParcelID   int64     `gorm:"uniqueIndex;not null"`
	DriverID   int64     `gorm:"index;not null"`
	AssignedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for admin assignments.
func (AdminAssignmentDTO) TableName() string {
	return "admin_assignments"
}

// DeliveryAssignmentDTO represents the driver-app-facing assignment row.
type DeliveryAssignmentDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	ParcelID    int64 `gorm:"uniqueIndex;not null"`
	AccountID   int64 `gorm:"index;not null"`
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for delivery assignments.
func (DeliveryAssignmentDTO) TableName() string {
	return "driver_assignments"
}

func adminFromDomain(a *assignment.AdminAssignment) AdminAssignmentDTO {
	return AdminAssignmentDTO{
		ID:       a.ID(),
		ParcelID: a.ParcelID(),
		DriverID: a.DriverID(),
	}
}

func adminToDomain(dto AdminAssignmentDTO) (*assignment.AdminAssignment, error) {
	return assignment.RestoreAdminAssignment(dto.ID, dto.ParcelID, dto.DriverID, dto.AssignedAt)
}

func deliveryFromDomain(a *assignment.DeliveryAssignment) DeliveryAssignmentDTO {
	return DeliveryAssignmentDTO{
		ID:          a.ID(),
		ParcelID:    a.ParcelID(),
		AccountID:   a.AccountID(),
		StartedAt:   a.StartedAt(),
		CompletedAt: a.CompletedAt(),
	}
}

func deliveryToDomain(dto DeliveryAssignmentDTO) (*assignment.DeliveryAssignment, error) {
	return assignment.RestoreDeliveryAssignment(
		dto.ID, dto.ParcelID, dto.AccountID, dto.StartedAt, dto.CompletedAt)
}
