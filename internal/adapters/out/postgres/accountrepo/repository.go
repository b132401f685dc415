// Package accountrepo provides read-only access to the accounts owned by the
// auth subsystem. The parcel service never writes this table.
package accountrepo

import (
	"context"
	"errors"
	"time"

	"parcelms/internal/core/domain/model/account"
	"parcelms/internal/pkg/errs"

	"gorm.io/gorm"
)

// AccountDTO mirrors the auth subsystem's user rows.
type AccountDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	FullName    string `gorm:"not null"`
	Email       string `gorm:"index;not null"`
	PhoneNumber string
	Role        string    `gorm:"type:varchar(10);index;not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for accounts.
func (AccountDTO) TableName() string {
	return "users"
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	return account.RestoreAccount(
		dto.ID,
		dto.FullName,
		dto.Email,
		dto.PhoneNumber,
		account.Role(dto.Role),
		dto.IsActive,
	)
}

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id int64) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByEmailAndRole retrieves every account carrying both the email and the
// role. Callers decide what an empty or ambiguous result means.
func (r *GormAccountRepository) FindByEmailAndRole(
	ctx context.Context, email string, role account.Role,
) ([]*account.Account, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []AccountDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "email = ? AND role = ?", email, string(role)).Error
	if err != nil {
		return nil, err
	}

	accounts := make([]*account.Account, 0, len(dtos))
	for _, dto := range dtos {
		acc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, nil
}
