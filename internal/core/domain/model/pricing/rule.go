// Package pricing provides the weight-tiered pricing rules used to derive
// parcel delivery prices.
package pricing

import (
	"errors"
	"fmt"

	"parcelms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Rule prices parcels whose weight falls inside its closed interval
// [MinWeight, MaxWeight]: price = BasePrice + PricePerKm * distance.
// Overlapping active rules are permitted; the pricing engine resolves them
// deterministically by ascending MinWeight then identifier.
type Rule struct {
	id         int64
	minWeight  decimal.Decimal
	maxWeight  decimal.Decimal
	basePrice  decimal.Decimal
	pricePerKm decimal.Decimal
	isActive   bool

	isConstructed bool
}

// NewRule creates a pricing rule. All amounts must be strictly positive and
// the weight interval must be ordered.
func NewRule(id int64, minWeight, maxWeight, basePrice, pricePerKm decimal.Decimal, isActive bool) (*Rule, error) {
	r := &Rule{
		id:            id,
		isActive:      isActive,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setPositive("min_weight", minWeight, &r.minWeight),
		r.setPositive("max_weight", maxWeight, &r.maxWeight),
		r.setPositive("base_price", basePrice, &r.basePrice),
		r.setPositive("price_per_km", pricePerKm, &r.pricePerKm),
	); err != nil {
		return nil, err
	}

	if r.minWeight.GreaterThan(r.maxWeight) {
		return nil, errs.NewValueIsInvalidErrorWithCause("weight interval",
			fmt.Errorf("min_weight %s is greater than max_weight %s", minWeight, maxWeight))
	}

	return r, nil
}

// Validate ensures the rule was created via NewRule.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return errs.NewValueIsRequiredError("pricing rule must be created via NewRule")
	}
	return nil
}

// ID returns the persistent identifier.
func (r *Rule) ID() int64 { return r.id }

// MinWeight returns the lower bound of the weight interval in kilograms.
func (r *Rule) MinWeight() decimal.Decimal { return r.minWeight }

// MaxWeight returns the upper bound of the weight interval in kilograms.
func (r *Rule) MaxWeight() decimal.Decimal { return r.maxWeight }

// BasePrice returns the flat price for the weight interval.
func (r *Rule) BasePrice() decimal.Decimal { return r.basePrice }

// PricePerKm returns the per-kilometre surcharge.
func (r *Rule) PricePerKm() decimal.Decimal { return r.pricePerKm }

// IsActive reports whether the rule participates in lookups.
func (r *Rule) IsActive() bool { return r.isActive }

// Matches reports whether the rule is active and its interval contains weight.
func (r *Rule) Matches(weight decimal.Decimal) bool {
	return r.isActive &&
		r.minWeight.LessThanOrEqual(weight) &&
		r.maxWeight.GreaterThanOrEqual(weight)
}

func (r *Rule) setPositive(name string, value decimal.Decimal, field *decimal.Decimal) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%s is not greater than 0", value))
	}
	*field = value.Round(2)
	return nil
}
