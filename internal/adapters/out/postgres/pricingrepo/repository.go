// Package pricingrepo provides read access to the configured pricing rules.
// Rules are operator-managed rows; the service itself never mutates them.
package pricingrepo

import (
	"context"

	"parcelms/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PricingRuleDTO represents one weight-tiered pricing rule row.
type PricingRuleDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	MinWeight  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MaxWeight  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BasePrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PricePerKm decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsActive   bool            `gorm:"not null;default:true"`
}

// TableName specifies the database table name for pricing rules.
func (PricingRuleDTO) TableName() string {
	return "pricing_rules"
}

func toDomain(dto PricingRuleDTO) (*pricing.Rule, error) {
	return pricing.NewRule(
		dto.ID,
		dto.MinWeight,
		dto.MaxWeight,
		dto.BasePrice,
		dto.PricePerKm,
		dto.IsActive,
	)
}

// GormPricingRuleRepository implements PricingRuleRepository using GORM.
type GormPricingRuleRepository struct {
	db *gorm.DB
}

// NewGormPricingRuleRepository creates a new GORM pricing rule repository.
func NewGormPricingRuleRepository(db *gorm.DB) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{db: db}
}

// GetActive retrieves all active rules.
func (r *GormPricingRuleRepository) GetActive(ctx context.Context) ([]*pricing.Rule, error) {
	var dtos []PricingRuleDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "is_active").Error; err != nil {
		return nil, err
	}

	rules := make([]*pricing.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
