package parcel

import (
	"fmt"

	"parcelms/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel. The string values are a
// stable wire contract shared with the client and driver applications and
// must be preserved bit-for-bit.
//
// Lifecycle:
//
//	requested ──> accepted ──> assigned ──> picked_up ──> in_transit ──┬──> out_for_delivery ──> delivered
//	    │                                                              └──> delivered
//	    └──> cancelled
//
// The driver-initiated transitions (assigned onward) are gated by the
// transition table; the admin-initiated transitions (accept, reject, assign)
// are a separate authority expressed as dedicated methods.
type Status string

const (
	StatusPending        Status = "pending"
	StatusRequested      Status = "requested"
	StatusAccepted       Status = "accepted"
	StatusAssigned       Status = "assigned"
	StatusPickedUp       Status = "picked_up"
	StatusInTransit      Status = "in_transit"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
	StatusFailed         Status = "failed"
)

// driverTransitions is the authorized transition table for driver-initiated
// status updates. A status with no entry cannot be moved by a driver at all.
func driverTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusAssigned:       {StatusPickedUp},
		StatusPickedUp:       {StatusInTransit},
		StatusInTransit:      {StatusOutForDelivery, StatusDelivered},
		StatusOutForDelivery: {StatusDelivered},
	}
}

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:        {},
		StatusRequested:      {},
		StatusAccepted:       {},
		StatusAssigned:       {},
		StatusPickedUp:       {},
		StatusInTransit:      {},
		StatusOutForDelivery: {},
		StatusDelivered:      {},
		StatusCancelled:      {},
		StatusFailed:         {},
	}
}

// Validate checks that the status is one of the known enum values.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid parcel status", string(s)))
	}
	return nil
}

// String returns the wire value of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status ends the parcel lifecycle.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusFailed
}

// Accept transitions requested -> accepted (admin authority).
func (s Status) Accept() (Status, error) {
	if s != StatusRequested {
		return "", errs.NewInvalidStateError("accept parcel", s.String())
	}
	return StatusAccepted, nil
}

// Reject transitions requested -> cancelled (admin authority).
func (s Status) Reject() (Status, error) {
	if s != StatusRequested {
		return "", errs.NewInvalidStateError("reject parcel", s.String())
	}
	return StatusCancelled, nil
}

// Assign transitions accepted -> assigned (admin authority).
func (s Status) Assign() (Status, error) {
	if s != StatusAccepted {
		return "", errs.NewInvalidStateError("assign driver", s.String())
	}
	return StatusAssigned, nil
}

// TransitionByDriver validates a driver-initiated move to target against the
// transition table and returns the new status. It fails with an invalid-state
// error naming both statuses when the current status has no table entry or
// the target is not among its allowed successors.
func (s Status) TransitionByDriver(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}

	successors, ok := driverTransitions()[s]
	if !ok {
		return "", errs.NewInvalidStateError(
			fmt.Sprintf("transition to %s", target), s.String())
	}

	for _, next := range successors {
		if next == target {
			return target, nil
		}
	}

	return "", errs.NewInvalidStateError(
		fmt.Sprintf("transition to %s", target), s.String())
}

// DriverSuccessors returns the statuses a driver may move this status to.
// Returns nil for statuses drivers cannot act on.
func (s Status) DriverSuccessors() []Status {
	return driverTransitions()[s]
}
