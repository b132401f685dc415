package parcel

import (
	"errors"
	"fmt"

	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/pkg/errs"
	"parcelms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

	// ErrParcelIDAlreadySet is returned when SetID is called on a parcel that
	// already carries a persistent identifier.
	ErrParcelIDAlreadySet = errors.New("parcel ID is already set")
)

// Route describes where a parcel travels: free-text endpoints plus optional
// coordinate pairs for both ends. Value object; create via NewRoute.
type Route struct { //nolint:recvcheck //using for validation
	from   string
	to     string
	pickup *kernel.GeoPoint
	drop   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRoute creates a Route. Both endpoint descriptions are required; the
// coordinate pairs are optional and may be nil independently.
func NewRoute(from, to string, pickup, drop *kernel.GeoPoint) (Route, error) {
	route := Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setFrom(from),
		route.setTo(to),
		route.setPickup(pickup),
		route.setDrop(drop),
	); err != nil {
		return Route{}, err
	}

	return route, nil
}

// Validate checks that the Route was created via NewRoute.
func (r Route) Validate() error {
	return r.guard.Validate(errs.NewValueIsRequiredError("route must be created via NewRoute"))
}

// From returns the pickup endpoint description.
func (r Route) From() string { return r.from }

// To returns the drop endpoint description.
func (r Route) To() string { return r.to }

// Pickup returns the pickup coordinates, or nil when not provided.
func (r Route) Pickup() *kernel.GeoPoint { return r.pickup }

// Drop returns the drop coordinates, or nil when not provided.
func (r Route) Drop() *kernel.GeoPoint { return r.drop }

// HasCoordinates reports whether both ends carry coordinate pairs.
func (r Route) HasCoordinates() bool {
	return r.pickup != nil && r.drop != nil
}

func (r *Route) setFrom(from string) error {
	if from == "" {
		return errs.NewValueIsRequiredError("from location")
	}
	r.from = from
	return nil
}

func (r *Route) setTo(to string) error {
	if to == "" {
		return errs.NewValueIsRequiredError("to location")
	}
	r.to = to
	return nil
}

func (r *Route) setPickup(pickup *kernel.GeoPoint) error {
	if pickup != nil {
		if err := pickup.Validate(); err != nil {
			return err
		}
	}
	r.pickup = pickup
	return nil
}

func (r *Route) setDrop(drop *kernel.GeoPoint) error {
	if drop != nil {
		if err := drop.Validate(); err != nil {
			return err
		}
	}
	r.drop = drop
	return nil
}

// Dimensions is the physical geometry of a parcel: weight in kilograms and
// height/width/breadth in centimetres, all positive decimals with two places.
type Dimensions struct { //nolint:recvcheck //using for validation
	weight  decimal.Decimal
	height  decimal.Decimal
	width   decimal.Decimal
	breadth decimal.Decimal

	guard guard.ConstructorGuard
}

// NewDimensions creates validated parcel geometry. Every measurement must be
// strictly positive.
func NewDimensions(weight, height, width, breadth decimal.Decimal) (Dimensions, error) {
	dims := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dims.set("weight", weight, &dims.weight),
		dims.set("height", height, &dims.height),
		dims.set("width", width, &dims.width),
		dims.set("breadth", breadth, &dims.breadth),
	); err != nil {
		return Dimensions{}, err
	}

	return dims, nil
}

// Validate checks that the Dimensions were created via NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(errs.NewValueIsRequiredError("dimensions must be created via NewDimensions"))
}

// Weight returns the weight in kilograms.
func (d Dimensions) Weight() decimal.Decimal { return d.weight }

// Height returns the height in centimetres.
func (d Dimensions) Height() decimal.Decimal { return d.height }

// Width returns the width in centimetres.
func (d Dimensions) Width() decimal.Decimal { return d.width }

// Breadth returns the breadth in centimetres.
func (d Dimensions) Breadth() decimal.Decimal { return d.breadth }

func (d *Dimensions) set(name string, value decimal.Decimal, field *decimal.Decimal) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%s is not greater than 0", value))
	}
	*field = value.Round(2)
	return nil
}

// StatusChanged is a domain event recorded by the Parcel aggregate on every
// successful status transition. Handlers consume the events to append history
// entries and emit client notifications; the aggregate itself performs no I/O.
type StatusChanged struct {
	From     Status
	To       Status
	Location string
	Notes    string
	ActorID  *int64
}

// Parcel is the aggregate root of a delivery request. It owns the status
// state machine, the derived price, and the geometry/route data, and records
// StatusChanged events as the only side channel of its transitions.
//
// Invariants:
//   - Tracking number, route and dimensions are validated value objects
//   - Price is strictly positive and set once at creation from the pricing engine
//   - Distance is non-negative with two decimal places
//   - Status only moves along the authorized transition graph
type Parcel struct {
	id             int64
	clientID       int64
	trackingNumber kernel.TrackingNumber
	route          Route
	dims           Dimensions
	price          decimal.Decimal
	distanceKm     decimal.Decimal
	status         Status
	description    string
	instructions   string
	version        int64

	events        []StatusChanged
	isConstructed bool
}

// NewParcel creates a parcel in requested status with a zero identifier;
// the repository assigns the identifier on first persist via SetID.
// The price must be the pricing-engine output for the parcel's weight and
// distance; it is stored as-is and never recomputed.
func NewParcel(
	clientID int64,
	trackingNumber kernel.TrackingNumber,
	route Route,
	dims Dimensions,
	distanceKm decimal.Decimal,
	price decimal.Decimal,
) (*Parcel, error) {
	p := &Parcel{
		status:        StatusRequested,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setClientID(clientID),
		p.setTrackingNumber(trackingNumber),
		p.setRoute(route),
		p.setDims(dims),
		p.setDistanceKm(distanceKm),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence without re-running the
// creation workflow. The stored status and version are taken as-is.
func RestoreParcel(
	id int64,
	clientID int64,
	trackingNumber kernel.TrackingNumber,
	route Route,
	dims Dimensions,
	distanceKm decimal.Decimal,
	price decimal.Decimal,
	status Status,
	description string,
	instructions string,
	version int64,
) (*Parcel, error) {
	p := &Parcel{
		id:            id,
		description:   description,
		instructions:  instructions,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setClientID(clientID),
		p.setTrackingNumber(trackingNumber),
		p.setRoute(route),
		p.setDims(dims),
		p.setDistanceKm(distanceKm),
		p.setPrice(price),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// ID returns the persistent identifier, zero until first persisted.
func (p *Parcel) ID() int64 { return p.id }

// ClientID returns the owning client's account identifier.
func (p *Parcel) ClientID() int64 { return p.clientID }

// TrackingNumber returns the public parcel identifier.
func (p *Parcel) TrackingNumber() kernel.TrackingNumber { return p.trackingNumber }

// Route returns the parcel's route.
func (p *Parcel) Route() Route { return p.route }

// Dimensions returns the parcel's geometry.
func (p *Parcel) Dimensions() Dimensions { return p.dims }

// Price returns the derived delivery price.
func (p *Parcel) Price() decimal.Decimal { return p.price }

// DistanceKm returns the delivery distance in kilometres.
func (p *Parcel) DistanceKm() decimal.Decimal { return p.distanceKm }

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status { return p.status }

// Description returns the optional free-text description.
func (p *Parcel) Description() string { return p.description }

// SpecialInstructions returns the optional handling instructions.
func (p *Parcel) SpecialInstructions() string { return p.instructions }

// Version returns the optimistic-concurrency token.
func (p *Parcel) Version() int64 { return p.version }

// AttachDetails sets the optional description and handling instructions.
func (p *Parcel) AttachDetails(description, instructions string) {
	p.description = description
	p.instructions = instructions
}

// SetID assigns the persistent identifier after the first insert.
// Fails when the parcel already has one.
func (p *Parcel) SetID(id int64) error {
	if p.id != 0 {
		return ErrParcelIDAlreadySet
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("parcel id")
	}
	p.id = id
	return nil
}

// Accept moves the parcel from requested to accepted (admin authority) and
// records the corresponding event.
func (p *Parcel) Accept(actorID *int64) error {
	next, err := p.status.Accept()
	if err != nil {
		return err
	}

	p.recordTransition(next, "", "", actorID)
	return nil
}

// Reject moves the parcel from requested to cancelled (admin authority).
// The optional notes end up in the history entry.
func (p *Parcel) Reject(actorID *int64, notes string) error {
	next, err := p.status.Reject()
	if err != nil {
		return err
	}

	p.recordTransition(next, "", notes, actorID)
	return nil
}

// Assign moves the parcel from accepted to assigned (admin authority).
// Assignment bookkeeping itself lives with the assignment reconciler; this
// method only advances the state machine.
func (p *Parcel) Assign(actorID *int64) error {
	next, err := p.status.Assign()
	if err != nil {
		return err
	}

	p.recordTransition(next, "", "", actorID)
	return nil
}

// UpdateStatusByDriver applies a driver-initiated transition to target.
// The history location is the drop endpoint for delivered and the pickup
// endpoint otherwise, matching the tracking contract.
func (p *Parcel) UpdateStatusByDriver(target Status, actorID int64) error {
	next, err := p.status.TransitionByDriver(target)
	if err != nil {
		return err
	}

	location := p.route.From()
	if next == StatusDelivered {
		location = p.route.To()
	}

	actor := actorID
	p.recordTransition(next, location,
		fmt.Sprintf("Status changed from %s to %s by driver", p.status, next), &actor)
	return nil
}

// Events returns the status-change events recorded since construction or the
// last DrainEvents call, oldest first.
func (p *Parcel) Events() []StatusChanged {
	return p.events
}

// DrainEvents returns the recorded events and clears the internal buffer.
// Handlers call it once per transaction to write history and notifications.
func (p *Parcel) DrainEvents() []StatusChanged {
	events := p.events
	p.events = nil
	return events
}

func (p *Parcel) recordTransition(next Status, location, notes string, actorID *int64) {
	p.events = append(p.events, StatusChanged{
		From:     p.status,
		To:       next,
		Location: location,
		Notes:    notes,
		ActorID:  actorID,
	})
	p.status = next
}

func (p *Parcel) setClientID(clientID int64) error {
	if clientID <= 0 {
		return errs.NewValueIsInvalidError("client id")
	}
	p.clientID = clientID
	return nil
}

func (p *Parcel) setTrackingNumber(tn kernel.TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	p.trackingNumber = tn
	return nil
}

func (p *Parcel) setRoute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	p.route = route
	return nil
}

func (p *Parcel) setDims(dims Dimensions) error {
	if err := dims.Validate(); err != nil {
		return err
	}
	p.dims = dims
	return nil
}

func (p *Parcel) setDistanceKm(distanceKm decimal.Decimal) error {
	if distanceKm.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("distance_km",
			fmt.Errorf("%s is negative", distanceKm))
	}
	p.distanceKm = distanceKm.Round(2)
	return nil
}

func (p *Parcel) setPrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	p.price = price.Round(2)
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
