package assignmentrepo

import (
	"context"
	"errors"

	"parcelms/internal/core/domain/model/assignment"
	"parcelms/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAdminAssignmentRepository implements AdminAssignmentRepository using GORM.
type GormAdminAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAdminAssignmentRepository creates a new GORM admin assignment repository.
func NewGormAdminAssignmentRepository(db *gorm.DB) *GormAdminAssignmentRepository {
	return &GormAdminAssignmentRepository{db: db}
}

// Upsert stores the assignment for its parcel. A parcel holds at most one
// admin assignment, so a conflicting insert replaces the driver.
func (r *GormAdminAssignmentRepository) Upsert(ctx context.Context, a *assignment.AdminAssignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := adminFromDomain(a)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "parcel_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"driver_id", "assigned_at"}),
	}).Create(&dto).Error
}

// GetByParcel retrieves the assignment for a parcel.
func (r *GormAdminAssignmentRepository) GetByParcel(
	ctx context.Context, parcelID int64,
) (*assignment.AdminAssignment, error) {
	var dto AdminAssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "parcel_id = ?", parcelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("admin assignment", parcelID)
		}
		return nil, err
	}

	return adminToDomain(dto)
}

// GormDeliveryAssignmentRepository implements DeliveryAssignmentRepository using GORM.
type GormDeliveryAssignmentRepository struct {
	db *gorm.DB
}

// NewGormDeliveryAssignmentRepository creates a new GORM delivery assignment repository.
func NewGormDeliveryAssignmentRepository(db *gorm.DB) *GormDeliveryAssignmentRepository {
	return &GormDeliveryAssignmentRepository{db: db}
}

// Upsert stores the assignment for its parcel, replacing the account and
// progress timestamps when an assignment already exists.
func (r *GormDeliveryAssignmentRepository) Upsert(
	ctx context.Context, a *assignment.DeliveryAssignment,
) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := deliveryFromDomain(a)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "parcel_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"account_id", "started_at", "completed_at"}),
	}).Create(&dto).Error
}

// GetByParcel retrieves the assignment for a parcel.
func (r *GormDeliveryAssignmentRepository) GetByParcel(
	ctx context.Context, parcelID int64,
) (*assignment.DeliveryAssignment, error) {
	var dto DeliveryAssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "parcel_id = ?", parcelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery assignment", parcelID)
		}
		return nil, err
	}

	return deliveryToDomain(dto)
}

// GetByParcelAndAccount retrieves the assignment for a parcel held by the account.
func (r *GormDeliveryAssignmentRepository) GetByParcelAndAccount(
	ctx context.Context, parcelID, accountID int64,
) (*assignment.DeliveryAssignment, error) {
	var dto DeliveryAssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "parcel_id = ? AND account_id = ?", parcelID, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery assignment", parcelID)
		}
		return nil, err
	}

	return deliveryToDomain(dto)
}
