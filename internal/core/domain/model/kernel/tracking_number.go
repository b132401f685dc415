package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"

	"github.com/google/uuid"
)

// TrackingNumberPrefix is the fixed prefix of every tracking number.
// Other subsystems (client apps, label printers) depend on this format.
const TrackingNumberPrefix = "PMS-"

// ErrTrackingNumberIsNotConstructed is returned when validating a zero-value TrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber or TrackingNumberFromString")

var trackingNumberPattern = regexp.MustCompile(`^PMS-[0-9A-F]{8}$`)

// TrackingNumber is the public identifier of a parcel, in the stable format
// PMS-XXXXXXXX where X is an uppercase hexadecimal digit. It is a value
// object; the zero value is invalid and must be created via a constructor.
//
// Example:
//
//	tn := kernel.NewTrackingNumber()
//	fmt.Println(tn) // e.g. "PMS-3F9A01BC"
type TrackingNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewTrackingNumber generates a fresh tracking number from random UUID hex.
// Uniqueness across stored parcels is the caller's responsibility: generation
// is random, so callers check the store and retry on the rare collision.
func NewTrackingNumber() TrackingNumber {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return TrackingNumber{
		value: TrackingNumberPrefix + hex[:8],
		guard: guard.NewConstructorGuard(),
	}
}

// TrackingNumberFromString parses a tracking number from its string form.
// Returns an error unless the string matches PMS-XXXXXXXX exactly.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking number",
			fmt.Errorf("%q does not match format PMS-XXXXXXXX", s),
		)
	}
	return TrackingNumber{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the TrackingNumber was created via a constructor.
func (t TrackingNumber) Validate() error {
	return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
}

// String returns the tracking number in its wire format.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers by value.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}
