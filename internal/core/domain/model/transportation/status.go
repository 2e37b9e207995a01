package transportation

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of a transportation booking.
// It implements a state machine with defined transitions to ensure
// bookings follow the correct business workflow.
//
// State transitions:
//
//	Planned ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions, updates,
// or deletions are allowed once either is reached.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Planned is the initial status assigned on creation.
	// The booking is scheduled but the vehicle has not departed.
	Planned

	// InTransit indicates the vehicle has departed the origin storage.
	InTransit

	// Delivered indicates the item arrived at the destination storage.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the booking was abandoned before delivery.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Planned:   "PLANNED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planned:   "PLANNED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the canonical wire form ("PLANNED", "IN_TRANSIT",
// "DELIVERED", "CANCELLED") into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Planned, InTransit, Delivered, and Cancelled;
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status is absorbing.
// Terminal bookings reject every further mutation.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Start transitions the status to InTransit.
//
// Valid transitions:
//   - Planned -> InTransit
//
// Any other source status fails with OperationNotAllowed carrying the
// current status.
func (s Status) Start() (Status, error) {
	if s != Planned {
		return 0, errs.NewOperationNotAllowedError("start", fmt.Sprintf("status is %s", s))
	}
	return InTransit, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// Any other source status fails with OperationNotAllowed carrying the
// current status.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewOperationNotAllowedError("complete", fmt.Sprintf("status is %s", s))
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Planned -> Cancelled
//   - InTransit -> Cancelled
//
// Terminal statuses fail with OperationNotAllowed carrying the current status.
func (s Status) Cancel() (Status, error) {
	if s != Planned && s != InTransit {
		return 0, errs.NewOperationNotAllowedError("cancel", fmt.Sprintf("status is %s", s))
	}
	return Cancelled, nil
}

// validateActuals enforces the consistency rule between status and the
// actual timestamps: departure is set iff the booking started, arrival is
// set iff it was delivered. A cancelled booking is the exception on
// departure: cancellation from Planned leaves it empty, cancellation from
// InTransit keeps the stamp, so either is consistent.
func (s Status) validateActuals(hasDeparture, hasArrival bool) error {
	if s != Cancelled {
		wantDeparture := s == InTransit || s == Delivered
		if hasDeparture != wantDeparture {
			return errs.NewValueIsInvalidErrorWithCause(
				"actualDeparture",
				fmt.Errorf("departure timestamp presence does not match status %s", s),
			)
		}
	}

	wantArrival := s == Delivered
	if hasArrival != wantArrival {
		return errs.NewValueIsInvalidErrorWithCause(
			"actualArrival",
			fmt.Errorf("arrival timestamp presence does not match status %s", s),
		)
	}

	return nil
}
