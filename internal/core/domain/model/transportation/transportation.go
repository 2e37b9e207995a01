package transportation

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrTransportationIsNotConstructed is returned when a Transportation instance
	// was not created through NewTransportation or RestoreTransportation.
	ErrTransportationIsNotConstructed = errors.New(
		"Transportation must be created via NewTransportation or RestoreTransportation",
	)
)

// Transportation is the aggregate root for one movement of an inventory item
// between two storages using a vehicle and a driver.
//
// Invariants:
//   - fromStorage and toStorage are always distinct
//   - status only changes along the edges of the state machine in status.go;
//     Delivered and Cancelled are absorbing
//   - actualDeparture is set iff the booking started (InTransit, Delivered,
//     or a Cancelled booking that was in transit); actualArrival is set iff
//     status is Delivered; neither is ever overwritten
//   - the scheduled window, when present, covers both departure and arrival
//     (a half-open interval); an absent window means the booking is
//     unscheduled and exempt from conflict checking
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. References to the item, driver,
// vehicle, and storages are held by id only; resolution against the owning
// services happens in the application layer.
type Transportation struct {
	// id is the unique identifier for the booking, assigned on creation
	id kernel.UUID

	// itemID references the inventory item being moved
	itemID kernel.UUID

	// driverID references the user driving the vehicle
	driverID kernel.UUID

	// vehicleID references the vehicle performing the movement
	vehicleID kernel.UUID

	// fromStorageID and toStorageID reference the origin and destination
	fromStorageID kernel.UUID
	toStorageID   kernel.UUID

	// window is the scheduled [departure, arrival) interval; nil when unscheduled
	window *kernel.TimeWindow

	// actualDeparture is stamped once by the start transition
	actualDeparture *time.Time

	// actualArrival is stamped once by the complete transition
	actualArrival *time.Time

	// status is the current state in the booking lifecycle
	status Status

	// createdAt is set once at creation and never changes
	createdAt time.Time

	// isConstructed ensures the aggregate was created via a constructor
	isConstructed bool
}

// NewTransportation creates a new booking in Planned status.
//
// All five references must be valid UUIDs and the two storages must differ;
// a same-storage request fails with OperationNotAllowed. The window is
// optional: a nil window creates an unscheduled booking that neither
// conflicts with nor blocks other bookings.
func NewTransportation(
	id kernel.UUID,
	itemID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	fromStorageID kernel.UUID,
	toStorageID kernel.UUID,
	window *kernel.TimeWindow,
	createdAt time.Time,
) (*Transportation, error) {
	t := &Transportation{
		status:        Planned,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setItemID(itemID),
		t.setDriverID(driverID),
		t.setVehicleID(vehicleID),
		t.setRoute(fromStorageID, toStorageID),
		t.setWindow(window),
	); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return t, nil
}

// RestoreTransportation reconstructs a booking from persistence.
// Unlike NewTransportation it accepts any valid status together with the
// actual timestamps, and verifies that timestamp presence is consistent
// with the status.
func RestoreTransportation(
	id kernel.UUID,
	itemID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	fromStorageID kernel.UUID,
	toStorageID kernel.UUID,
	window *kernel.TimeWindow,
	status Status,
	actualDeparture *time.Time,
	actualArrival *time.Time,
	createdAt time.Time,
) (*Transportation, error) {
	t, err := NewTransportation(id, itemID, driverID, vehicleID, fromStorageID, toStorageID, window, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if err = status.validateActuals(actualDeparture != nil, actualArrival != nil); err != nil {
		return nil, err
	}

	t.status = status
	t.actualDeparture = actualDeparture
	t.actualArrival = actualArrival
	return t, nil
}

// Validate ensures the aggregate was properly constructed.
func (t *Transportation) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransportationIsNotConstructed
	}
	return nil
}

// IsEqual compares two bookings by their unique identifiers.
func (t *Transportation) IsEqual(other *Transportation) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the booking's unique identifier.
func (t *Transportation) ID() kernel.UUID {
	return t.id
}

// ItemID returns the id of the item being moved.
func (t *Transportation) ItemID() kernel.UUID {
	return t.itemID
}

// DriverID returns the id of the assigned driver.
func (t *Transportation) DriverID() kernel.UUID {
	return t.driverID
}

// VehicleID returns the id of the assigned vehicle.
func (t *Transportation) VehicleID() kernel.UUID {
	return t.vehicleID
}

// FromStorageID returns the id of the origin storage.
func (t *Transportation) FromStorageID() kernel.UUID {
	return t.fromStorageID
}

// ToStorageID returns the id of the destination storage.
func (t *Transportation) ToStorageID() kernel.UUID {
	return t.toStorageID
}

// Window returns the scheduled window, or nil for unscheduled bookings.
func (t *Transportation) Window() *kernel.TimeWindow {
	if t.window == nil {
		return nil
	}
	w := *t.window
	return &w
}

// IsScheduled reports whether the booking carries a scheduled window.
func (t *Transportation) IsScheduled() bool {
	return t.window != nil
}

// ActualDeparture returns the stamped departure time, or nil before start.
func (t *Transportation) ActualDeparture() *time.Time {
	if t.actualDeparture == nil {
		return nil
	}
	v := *t.actualDeparture
	return &v
}

// ActualArrival returns the stamped arrival time, or nil before completion.
func (t *Transportation) ActualArrival() *time.Time {
	if t.actualArrival == nil {
		return nil
	}
	v := *t.actualArrival
	return &v
}

// Status returns the current status of the booking.
func (t *Transportation) Status() Status {
	return t.status
}

// CreatedAt returns the creation timestamp.
func (t *Transportation) CreatedAt() time.Time {
	return t.createdAt
}

// Start transitions the booking from Planned to InTransit and stamps the
// actual departure if not already set. now comes from the injected clock.
func (t *Transportation) Start(now time.Time) error {
	newStatus, err := t.status.Start()
	if err != nil {
		return err
	}

	t.status = newStatus
	if t.actualDeparture == nil {
		t.actualDeparture = &now
	}
	return nil
}

// Complete transitions the booking from InTransit to Delivered and stamps the
// actual arrival if not already set.
func (t *Transportation) Complete(now time.Time) error {
	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}

	t.status = newStatus
	if t.actualArrival == nil {
		t.actualArrival = &now
	}
	return nil
}

// Cancel transitions the booking to Cancelled. Actual timestamps are left
// untouched: a cancelled in-transit booking keeps its departure stamp.
func (t *Transportation) Cancel() error {
	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// ChangeStatus applies a status supplied through a generic update.
//
// A target equal to the current status is a no-op. A target one legal edge
// away dispatches to the corresponding transition so the timestamp side
// effects are identical to start/complete/cancel. Any other jump (for example
// Planned directly to Delivered) is rejected with OperationNotAllowed rather
// than silently stamped.
func (t *Transportation) ChangeStatus(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == t.status {
		return nil
	}

	switch {
	case t.status == Planned && target == InTransit:
		return t.Start(now)
	case t.status == InTransit && target == Delivered:
		return t.Complete(now)
	case target == Cancelled:
		return t.Cancel()
	default:
		return errs.NewOperationNotAllowedError(
			"update",
			fmt.Sprintf("cannot change status from %s to %s", t.status, target),
		)
	}
}

// ChangeReferences replaces the five entity references on a non-terminal
// booking. The distinct-storage rule is re-checked against the new pair.
func (t *Transportation) ChangeReferences(
	itemID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	fromStorageID kernel.UUID,
	toStorageID kernel.UUID,
) error {
	if err := t.EnsureMutable("update"); err != nil {
		return err
	}

	return errors.Join(
		t.setItemID(itemID),
		t.setDriverID(driverID),
		t.setVehicleID(vehicleID),
		t.setRoute(fromStorageID, toStorageID),
	)
}

// Reschedule replaces the scheduled window on a non-terminal booking.
// A nil window makes the booking unscheduled.
func (t *Transportation) Reschedule(window *kernel.TimeWindow) error {
	if err := t.EnsureMutable("update"); err != nil {
		return err
	}

	return t.setWindow(window)
}

// EnsureMutable returns OperationNotAllowed, carrying the current status,
// when the booking is in a terminal state. operation names the caller's
// intent for the error message.
func (t *Transportation) EnsureMutable(operation string) error {
	if t.status.IsTerminal() {
		return errs.NewOperationNotAllowedError(operation, fmt.Sprintf("status is %s", t.status))
	}
	return nil
}

func (t *Transportation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transportation) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.itemID = id
	return nil
}

func (t *Transportation) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.driverID = id
	return nil
}

func (t *Transportation) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.vehicleID = id
	return nil
}

func (t *Transportation) setRoute(fromStorageID, toStorageID kernel.UUID) error {
	if err := fromStorageID.Validate(); err != nil {
		return err
	}
	if err := toStorageID.Validate(); err != nil {
		return err
	}
	if fromStorageID.IsEqual(toStorageID) {
		return errs.NewOperationNotAllowedError(
			"route",
			fmt.Sprintf("fromStorage and toStorage are the same: %s", fromStorageID),
		)
	}

	t.fromStorageID = fromStorageID
	t.toStorageID = toStorageID
	return nil
}

func (t *Transportation) setWindow(window *kernel.TimeWindow) error {
	if window == nil {
		t.window = nil
		return nil
	}
	if err := window.Validate(); err != nil {
		return err
	}

	w := *window
	t.window = &w
	return nil
}
