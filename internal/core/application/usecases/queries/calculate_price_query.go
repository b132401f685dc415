package queries

import (
	"errors"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCalculatePriceQueryIsNotConstructed = errors.New(
	"CalculatePriceQuery must be created via NewCalculatePriceQuery constructor",
)

// CalculatePriceQuery produces a price quote without creating a parcel.
type CalculatePriceQuery struct {
	weight     decimal.Decimal
	distanceKm decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCalculatePriceQuery creates a quote query for the given weight and distance.
func NewCalculatePriceQuery(weight, distanceKm decimal.Decimal) (CalculatePriceQuery, error) {
	if !weight.IsPositive() {
		return CalculatePriceQuery{}, errs.NewValueIsInvalidError("weight")
	}
	if distanceKm.IsNegative() {
		return CalculatePriceQuery{}, errs.NewValueIsInvalidError("distance")
	}

	return CalculatePriceQuery{
		weight:     weight,
		distanceKm: distanceKm,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculatePriceQuery) Validate() error {
	return q.guard.Validate(ErrCalculatePriceQueryIsNotConstructed)
}

// Weight returns the quoted weight in kilograms.
func (q CalculatePriceQuery) Weight() decimal.Decimal { return q.weight }

// DistanceKm returns the quoted distance in kilometres.
func (q CalculatePriceQuery) DistanceKm() decimal.Decimal { return q.distanceKm }

// CalculatePriceQueryResponse is the price quote.
type CalculatePriceQueryResponse struct {
	Weight     decimal.Decimal
	DistanceKm decimal.Decimal
	Price      decimal.Decimal
}
