package commands

import (
	"errors"

	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/core/domain/model/parcel"
	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a client's request for a new delivery.
// The route and dimensions are validated value objects; the price is not an
// input, it is derived by the pricing engine inside the handler.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	clientID     int64
	route        parcel.Route
	dims         parcel.Dimensions
	distanceKm   decimal.Decimal
	description  string
	instructions string

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates the client identifier, route, dimensions and distance.
func NewCreateParcelCommand(
	clientID int64,
	route parcel.Route,
	dims parcel.Dimensions,
	distanceKm decimal.Decimal,
	description, instructions string,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setRoute(route),
		cmd.setDims(dims),
		cmd.setDistanceKm(distanceKm),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	cmd.description = description
	cmd.instructions = instructions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ClientID returns the requesting client's account identifier.
func (c CreateParcelCommand) ClientID() int64 { return c.clientID }

// Route returns the requested route.
func (c CreateParcelCommand) Route() parcel.Route { return c.route }

// Dimensions returns the parcel geometry.
func (c CreateParcelCommand) Dimensions() parcel.Dimensions { return c.dims }

// DistanceKm returns the delivery distance in kilometres.
func (c CreateParcelCommand) DistanceKm() decimal.Decimal { return c.distanceKm }

// Description returns the optional free-text description.
func (c CreateParcelCommand) Description() string { return c.description }

// SpecialInstructions returns the optional handling instructions.
func (c CreateParcelCommand) SpecialInstructions() string { return c.instructions }

func (c *CreateParcelCommand) setClientID(clientID int64) error {
	if clientID <= 0 {
		return errs.NewValueIsInvalidError("client id")
	}
	c.clientID = clientID
	return nil
}

func (c *CreateParcelCommand) setRoute(route parcel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	c.route = route
	return nil
}

func (c *CreateParcelCommand) setDims(dims parcel.Dimensions) error {
	if err := dims.Validate(); err != nil {
		return err
	}
	c.dims = dims
	return nil
}

func (c *CreateParcelCommand) setDistanceKm(distanceKm decimal.Decimal) error {
	if distanceKm.IsNegative() {
		return errs.NewValueIsInvalidError("distance_km")
	}
	c.distanceKm = distanceKm
	return nil
}

// trackingNumberGenerator produces candidate tracking numbers. Swappable in
// tests; production uses kernel.NewTrackingNumber.
type trackingNumberGenerator func() kernel.TrackingNumber
