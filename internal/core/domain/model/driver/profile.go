// Package driver provides the administrative driver profile: the record an
// administrator maintains about a driver, independent of the driver's login
// identity. A profile may be linked to an authenticated account; unlinked
// profiles cannot receive delivery assignments.
package driver

import (
	"errors"
	"fmt"

	"parcelms/internal/pkg/errs"
)

// VehicleType enumerates the vehicle classes a driver can operate.
type VehicleType string

const (
	VehicleBike       VehicleType = "bike"
	VehicleCar        VehicleType = "car"
	VehicleVan        VehicleType = "van"
	VehicleMiniTruck  VehicleType = "mini_truck"
	VehicleLargeTruck VehicleType = "large_truck"
)

// Validate checks that the vehicle type is a known enum value.
func (v VehicleType) Validate() error {
	switch v {
	case VehicleBike, VehicleCar, VehicleVan, VehicleMiniTruck, VehicleLargeTruck:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("vehicle type",
			fmt.Errorf("%q is not a valid vehicle type", string(v)))
	}
}

var (
	// ErrProfileIsNotConstructed is returned when a Profile was not created
	// through NewProfile or RestoreProfile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile")

	// ErrProfileAlreadyLinked is returned when linking a profile that is
	// already linked to a different account.
	ErrProfileAlreadyLinked = errors.New("driver profile is already linked to an account")
)

// Profile is the administrative record describing a driver.
type Profile struct {
	id              int64
	name            string
	email           string
	phoneNumber     string
	vehicleType     VehicleType
	vehicleNumber   string
	currentLocation string
	rating          float64
	isAvailable     bool
	accountID       *int64

	isConstructed bool
}

// NewProfile creates a driver profile with no linked account, a zero rating
// and availability on.
func NewProfile(
	name, email, phoneNumber string,
	vehicleType VehicleType,
	vehicleNumber, currentLocation string,
) (*Profile, error) {
	p := &Profile{
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setEmail(email),
		p.setPhoneNumber(phoneNumber),
		p.setVehicleType(vehicleType),
		p.setVehicleNumber(vehicleNumber),
	); err != nil {
		return nil, err
	}

	p.currentLocation = currentLocation
	return p, nil
}

// RestoreProfile reconstructs a profile from persistence.
func RestoreProfile(
	id int64,
	name, email, phoneNumber string,
	vehicleType VehicleType,
	vehicleNumber, currentLocation string,
	rating float64,
	isAvailable bool,
	accountID *int64,
) (*Profile, error) {
	p, err := NewProfile(name, email, phoneNumber, vehicleType, vehicleNumber, currentLocation)
	if err != nil {
		return nil, err
	}

	if rating < 0 || rating > 5 {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}

	p.id = id
	p.rating = rating
	p.isAvailable = isAvailable
	p.accountID = accountID
	return p, nil
}

// Validate ensures the profile was created through a constructor.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// ID returns the persistent identifier, zero until persisted.
func (p *Profile) ID() int64 { return p.id }

// Name returns the driver's display name.
func (p *Profile) Name() string { return p.name }

// Email returns the driver's contact email. Used as the correlation key for
// the account-linking fallback.
func (p *Profile) Email() string { return p.email }

// PhoneNumber returns the driver's contact phone number.
func (p *Profile) PhoneNumber() string { return p.phoneNumber }

// VehicleType returns the driver's vehicle class.
func (p *Profile) VehicleType() VehicleType { return p.vehicleType }

// VehicleNumber returns the vehicle registration number.
func (p *Profile) VehicleNumber() string { return p.vehicleNumber }

// CurrentLocation returns the administrator-recorded location description.
func (p *Profile) CurrentLocation() string { return p.currentLocation }

// Rating returns the driver's rating on a 0-5 scale.
func (p *Profile) Rating() float64 { return p.rating }

// IsAvailable reports whether the driver can take new assignments.
func (p *Profile) IsAvailable() bool { return p.isAvailable }

// AccountID returns the linked authenticated account's identifier, or nil
// when the profile is unlinked.
func (p *Profile) AccountID() *int64 { return p.accountID }

// IsLinked reports whether the profile has an authenticated account.
func (p *Profile) IsLinked() bool { return p.accountID != nil }

// SetID assigns the persistent identifier after the first insert.
func (p *Profile) SetID(id int64) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidError("driver profile id is already set")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("driver profile id")
	}
	p.id = id
	return nil
}

// LinkAccount links the profile to an authenticated account. Linking is
// idempotent for the same account and fails for a different one: relinking
// is an explicit administrative action, not a silent overwrite.
func (p *Profile) LinkAccount(accountID int64) error {
	if accountID <= 0 {
		return errs.NewValueIsInvalidError("account id")
	}
	if p.accountID != nil {
		if *p.accountID == accountID {
			return nil
		}
		return ErrProfileAlreadyLinked
	}

	p.accountID = &accountID
	return nil
}

// SetAvailability toggles whether the driver can take new assignments.
func (p *Profile) SetAvailability(available bool) {
	p.isAvailable = available
}

func (p *Profile) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Profile) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	p.email = email
	return nil
}

func (p *Profile) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phone number")
	}
	p.phoneNumber = phoneNumber
	return nil
}

func (p *Profile) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	p.vehicleType = vehicleType
	return nil
}

func (p *Profile) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return errs.NewValueIsRequiredError("vehicle number")
	}
	p.vehicleNumber = vehicleNumber
	return nil
}
