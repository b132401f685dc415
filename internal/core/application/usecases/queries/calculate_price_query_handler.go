package queries

import (
	"context"

	"parcelms/internal/core/domain/model/pricing"
	"parcelms/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CalculatePriceQueryHandler quotes a delivery price from the stored rules.
// Shares the pricing engine with parcel creation so the quote always matches
// the price a parcel created with the same inputs would get.
type CalculatePriceQueryHandler struct {
	db            *gorm.DB
	pricingEngine *services.PricingEngine
}

// NewCalculatePriceQueryHandler creates a handler for price quotes.
func NewCalculatePriceQueryHandler(
	db *gorm.DB, pricingEngine *services.PricingEngine,
) CalculatePriceQueryHandler {
	return CalculatePriceQueryHandler{db: db, pricingEngine: pricingEngine}
}

// Handle loads the active rules and computes the quote.
func (h CalculatePriceQueryHandler) Handle(
	ctx context.Context, query CalculatePriceQuery,
) (CalculatePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	rules := make([]*pricing.Rule, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			min_weight,
			max_weight,
			base_price,
			price_per_km
		FROM pricing_rules
		WHERE is_active
		ORDER BY min_weight, id
	`).Rows()
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var minWeight, maxWeight, basePrice, pricePerKm decimal.Decimal
		if err = rows.Scan(&id, &minWeight, &maxWeight, &basePrice, &pricePerKm); err != nil {
			return CalculatePriceQueryResponse{}, err
		}

		rule, ruleErr := pricing.NewRule(id, minWeight, maxWeight, basePrice, pricePerKm, true)
		if ruleErr != nil {
			return CalculatePriceQueryResponse{}, ruleErr
		}
		rules = append(rules, rule)
	}
	if err = rows.Err(); err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	price, err := h.pricingEngine.Compute(query.Weight(), query.DistanceKm(), rules)
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	return CalculatePriceQueryResponse{
		Weight:     query.Weight(),
		DistanceKm: query.DistanceKm(),
		Price:      price,
	}, nil
}
