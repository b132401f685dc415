package driverrepo

import (
	"context"
	"errors"

	"parcelms/internal/core/domain/model/driver"
	"parcelms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver profile and assigns the generated identifier.
func (r *GormDriverRepository) Add(ctx context.Context, profile *driver.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := profile.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(profile.ID(), profile)
	return nil
}

// Update saves an existing driver profile.
func (r *GormDriverRepository) Update(ctx context.Context, profile *driver.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", dto.ID)
	}

	r.tracker.TrackAggregate(profile.ID(), profile)
	return nil
}

// Get retrieves a driver profile by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id int64) (*driver.Profile, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetUnlinked retrieves profiles with no linked account.
func (r *GormDriverRepository) GetUnlinked(ctx context.Context) ([]*driver.Profile, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "account_id IS NULL").Error; err != nil {
		return nil, err
	}

	return r.toProfiles(dtos)
}

func (r *GormDriverRepository) toProfiles(dtos []DriverDTO) ([]*driver.Profile, error) {
	profiles := make([]*driver.Profile, 0, len(dtos))
	for _, dto := range dtos {
		profile, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
