package commands

import (
	"errors"

	"parcelms/internal/core/domain/model/driver"
	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents an administrator registering a driver profile.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	name            string
	email           string
	phoneNumber     string
	vehicleType     driver.VehicleType
	vehicleNumber   string
	currentLocation string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver profile.
func NewCreateDriverCommand(
	name, email, phoneNumber string,
	vehicleType driver.VehicleType,
	vehicleNumber, currentLocation string,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		currentLocation: currentLocation,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhoneNumber(phoneNumber),
		cmd.setVehicleType(vehicleType),
		cmd.setVehicleNumber(vehicleNumber),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string { return c.name }

// Email returns the driver's contact email, also used for account linking.
func (c CreateDriverCommand) Email() string { return c.email }

// PhoneNumber returns the driver's contact number.
func (c CreateDriverCommand) PhoneNumber() string { return c.phoneNumber }

// VehicleType returns the vehicle class.
func (c CreateDriverCommand) VehicleType() driver.VehicleType { return c.vehicleType }

// VehicleNumber returns the vehicle registration.
func (c CreateDriverCommand) VehicleNumber() string { return c.vehicleNumber }

// CurrentLocation returns the free-text starting location.
func (c CreateDriverCommand) CurrentLocation() string { return c.currentLocation }

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDriverCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateDriverCommand) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phone number")
	}
	c.phoneNumber = phoneNumber
	return nil
}

func (c *CreateDriverCommand) setVehicleType(vehicleType driver.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *CreateDriverCommand) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return errs.NewValueIsRequiredError("vehicle number")
	}
	c.vehicleNumber = vehicleNumber
	return nil
}
