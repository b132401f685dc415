package kernel

import (
	"errors"
	"fmt"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// CoordinatePrecision is the number of decimal places stored for latitude
// and longitude. Part of the stable contract with the tracking clients.
const CoordinatePrecision = 7

// ErrGeoPointIsNotConstructed is returned when validating a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint")

// GeoPoint is a validated latitude/longitude pair, rounded to
// CoordinatePrecision decimal places. Immutable value object; the zero value
// is invalid and must be created via NewGeoPoint.
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   decimal.Decimal
	lng   decimal.Decimal
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(lat, lng decimal.Decimal) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created via its constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude, rounded to CoordinatePrecision places.
func (p GeoPoint) Lat() decimal.Decimal {
	return p.lat
}

// Lng returns the longitude, rounded to CoordinatePrecision places.
func (p GeoPoint) Lng() decimal.Decimal {
	return p.lng
}

// String returns a human-readable representation, useful for logging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%s,%s)", p.lat, p.lng)
}

// IsEqual compares two geo points for coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat.Equal(other.lat) && p.lng.Equal(other.lng), nil
}

func (p *GeoPoint) setLat(lat decimal.Decimal) error {
	if lat.LessThan(decimal.NewFromInt(-90)) || lat.GreaterThan(decimal.NewFromInt(90)) {
		return errs.NewValueIsOutOfRangeError("latitude", lat.String(), -90, 90)
	}

	p.lat = lat.Round(CoordinatePrecision)
	return nil
}

func (p *GeoPoint) setLng(lng decimal.Decimal) error {
	if lng.LessThan(decimal.NewFromInt(-180)) || lng.GreaterThan(decimal.NewFromInt(180)) {
		return errs.NewValueIsOutOfRangeError("longitude", lng.String(), -180, 180)
	}

	p.lng = lng.Round(CoordinatePrecision)
	return nil
}
