package order

import (
	"errors"
	"fmt"
	"time"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDriverIsRequired is returned when assigning an empty driver ID.
	ErrDriverIsRequired = errs.NewValueIsRequiredError("driverId")
)

// StatusChanged is raised whenever an order effectively moves to a new status.
// Handlers drain these events after commit to emit alerts.
type StatusChanged struct {
	OrderID string
	From    Status
	To      Status
	At      time.Time
}

// State is the full persistent image of an order. Repositories build it from
// storage and hand it to RestoreOrder; Snapshot produces it back.
type State struct {
	ID          string
	Details     Details
	Status      Status
	DriverID    *string
	VehicleID   *string
	ActivityLog []ActivityEntry
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Order represents a delivery or pickup job. It is the aggregate root that owns
// the status, the driver/vehicle assignment and the activity log.
//
// Order follows these invariants:
//   - ID, title, store and both locations are always present
//   - The activity log is never empty and its last entry carries the current status
//   - Activity timestamps are non-decreasing
//   - Status and assignment change only through SetStatus and AssignDriver
type Order struct {
	id          string
	details     Details
	status      Status
	driverID    *string
	vehicleID   *string
	activityLog []ActivityEntry
	version     int64
	createdAt   time.Time
	updatedAt   time.Time

	events []StatusChanged
	guard  guard.ConstructorGuard
}

// NewOrder creates an order in the given initial status with the activity log
// seeded by that status. Admin-created orders start Unassigned; inbound Tookan
// tasks with auto assignment start Assigned.
//
// Example:
//
//	origin, _ := kernel.NewLocation(-26.1076, 28.0567, "Sandton City")
//	dest, _ := kernel.NewLocation(-26.1450, 28.0410, "Rosebank")
//	o, err := order.NewOrder("ORD001", order.Details{
//	    Title:       "Groceries",
//	    Origin:      origin,
//	    Destination: dest,
//	    StoreID:     "S001",
//	}, order.Unassigned, time.Now())
func NewOrder(id string, details Details, initial Status, at time.Time) (*Order, error) {
	o := &Order{
		status:    initial,
		createdAt: at,
		updatedAt: at,
		guard:     guard.NewConstructorGuard(),
	}

	details = details.clone()
	if err := errors.Join(
		requireText("id", id),
		details.normalize(),
		initial.Validate(),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.details = details
	o.activityLog = []ActivityEntry{{Status: initial, Timestamp: at}}
	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage. The activity log
// invariants are checked so that corrupted rows surface as errors rather than
// as silently inconsistent aggregates.
func RestoreOrder(state State) (*Order, error) {
	details := state.Details.clone()
	if err := errors.Join(
		requireText("id", state.ID),
		details.normalize(),
		state.Status.Validate(),
		validateActivityLog(state.Status, state.ActivityLog),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:          state.ID,
		details:     details,
		status:      state.Status,
		driverID:    cloneString(state.DriverID),
		vehicleID:   cloneString(state.VehicleID),
		activityLog: append([]ActivityEntry(nil), state.ActivityLog...),
		version:     state.Version,
		createdAt:   state.CreatedAt,
		updatedAt:   state.UpdatedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's identifier.
func (o *Order) ID() string {
	return o.id
}

// Details returns a copy of the descriptive fields.
func (o *Order) Details() Details {
	return o.details.clone()
}

// StoreID returns the store the order is fulfilled from.
func (o *Order) StoreID() string {
	return o.details.StoreID
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// DriverID returns the assigned driver, or nil.
func (o *Order) DriverID() *string {
	return cloneString(o.driverID)
}

// VehicleID returns the assigned vehicle, or nil.
func (o *Order) VehicleID() *string {
	return cloneString(o.vehicleID)
}

// ActivityLog returns a copy of the status history, oldest first.
func (o *Order) ActivityLog() []ActivityEntry {
	return append([]ActivityEntry(nil), o.activityLog...)
}

// Version returns the persisted version the aggregate was loaded at.
// A freshly created, never persisted order is at version 0.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Snapshot returns the full state of the order.
func (o *Order) Snapshot() State {
	return State{
		ID:          o.id,
		Details:     o.details.clone(),
		Status:      o.status,
		DriverID:    cloneString(o.driverID),
		VehicleID:   cloneString(o.vehicleID),
		ActivityLog: o.ActivityLog(),
		Version:     o.version,
		CreatedAt:   o.createdAt,
		UpdatedAt:   o.updatedAt,
	}
}

// SetStatus moves the order to newStatus.
//
// Setting the current status is a no-op and returns false. Otherwise an activity
// entry is appended, a StatusChanged event is recorded and true is returned.
// Transitions are not restricted to the nominal flow.
func (o *Order) SetStatus(newStatus Status, at time.Time) (bool, error) {
	if err := errors.Join(o.Validate(), newStatus.Validate()); err != nil {
		return false, err
	}

	if newStatus == o.status {
		return false, nil
	}

	o.transition(newStatus, at)
	return true, nil
}

// AssignDriver sets the driver and vehicle of the order.
//
// If the order is Unassigned it also moves to Assigned, producing exactly one
// activity entry. For orders further along only the assignment changes.
// Repeating the current assignment returns false and changes nothing.
func (o *Order) AssignDriver(driverID string, vehicleID *string, at time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if driverID == "" {
		return false, ErrDriverIsRequired
	}

	sameAssignment := o.driverID != nil && *o.driverID == driverID && sameString(o.vehicleID, vehicleID)
	if sameAssignment && o.status != Unassigned {
		return false, nil
	}

	o.driverID = &driverID
	o.vehicleID = cloneString(vehicleID)
	o.updatedAt = laterOf(o.updatedAt, at)

	if o.status == Unassigned {
		o.transition(Assigned, at)
	}
	return true, nil
}

// ExpectVersion fails with a version conflict when the caller's last known
// version differs from the loaded one.
func (o *Order) ExpectVersion(expected int64) error {
	if o.version != expected {
		return errs.NewVersionConflictError("order", o.id, expected, o.version)
	}
	return nil
}

// BumpVersion advances the version after a successful write. Only repositories call it.
func (o *Order) BumpVersion() {
	o.version++
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []StatusChanged {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) transition(to Status, at time.Time) {
	last := o.activityLog[len(o.activityLog)-1]
	at = laterOf(last.Timestamp, at)

	from := o.status
	o.status = to
	o.activityLog = append(o.activityLog, ActivityEntry{Status: to, Timestamp: at})
	o.updatedAt = laterOf(o.updatedAt, at)
	o.events = append(o.events, StatusChanged{OrderID: o.id, From: from, To: to, At: at})
}

func validateActivityLog(current Status, log []ActivityEntry) error {
	if len(log) == 0 {
		return errs.NewValueIsRequiredError("activityLog")
	}
	for i := 1; i < len(log); i++ {
		if log[i].Timestamp.Before(log[i-1].Timestamp) {
			return errs.NewValueIsInvalidErrorWithCause("activityLog",
				fmt.Errorf("entry %d is older than entry %d", i, i-1))
		}
	}
	if last := log[len(log)-1].Status; last != current {
		return errs.NewValueIsInvalidErrorWithCause("activityLog",
			fmt.Errorf("last entry is %s but order is %s", last, current))
	}
	return nil
}

func laterOf(a, b time.Time) time.Time {
	if b.Before(a) {
		return a
	}
	return b
}
