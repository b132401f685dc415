package services

import (
	"sort"

	"parcelms/internal/core/domain/model/pricing"
	"parcelms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// DefaultBasePrice is charged when no pricing rule matches the weight.
	DefaultBasePrice = decimal.RequireFromString("100.00")

	// DefaultPricePerKm is the per-kilometre rate when no rule matches.
	DefaultPricePerKm = decimal.RequireFromString("10.00")
)

// PricingEngine computes delivery prices from the configured rule set.
// Rules are matched in ascending min weight order and the first active
// rule covering the weight wins.
type PricingEngine struct{}

// NewPricingEngine creates the engine.
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// Compute returns the price for a parcel of the given weight carried over
// distanceKm, rounded to two decimal places. When no rule matches, the
// default base price and per-kilometre rate apply.
func (e *PricingEngine) Compute(
	weight, distanceKm decimal.Decimal, rules []*pricing.Rule,
) (decimal.Decimal, error) {
	if !weight.IsPositive() {
		return decimal.Zero, errs.NewValueIsInvalidError("weight")
	}
	if distanceKm.IsNegative() {
		return decimal.Zero, errs.NewValueIsInvalidError("distance")
	}

	ordered := make([]*pricing.Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		cmp := ordered[i].MinWeight().Cmp(ordered[j].MinWeight())
		if cmp != 0 {
			return cmp < 0
		}
		return ordered[i].ID() < ordered[j].ID()
	})

	for _, rule := range ordered {
		if rule.Matches(weight) {
			price := rule.BasePrice().Add(rule.PricePerKm().Mul(distanceKm))
			return price.Round(2), nil
		}
	}

	price := DefaultBasePrice.Add(DefaultPricePerKm.Mul(distanceKm))
	return price.Round(2), nil
}
