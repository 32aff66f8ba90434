package driver

import (
	"errors"
	"fmt"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// Status is the availability of a driver.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusBusy      Status = "Busy"
	StatusOffline   Status = "Offline"
)

// Validate checks the status against the closed set.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusBusy, StatusOffline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("driverStatus", fmt.Errorf("%q is not a known driver status", string(s)))
	}
}

var (
	// ErrNameIsRequired is returned when a driver profile has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Profile is the contact and vehicle information of a driver. It is replaced
// as a whole by UpdateProfile, which is how inbound Tookan agent edits land.
type Profile struct {
	Name               string
	Phone              string
	Email              string
	License            string
	VehicleType        VehicleType
	VehicleDescription string
	TeamID             *string
	VehicleID          *string
}

func (p *Profile) normalize() error {
	if p.VehicleType == "" {
		p.VehicleType = VehicleCar
	}
	var nameErr error
	if p.Name == "" {
		nameErr = ErrNameIsRequired
	}
	return errors.Join(nameErr, p.VehicleType.Validate())
}

func (p Profile) clone() Profile {
	c := p
	c.TeamID = cloneString(p.TeamID)
	c.VehicleID = cloneString(p.VehicleID)
	return c
}

// State is the persistent image of a driver.
type State struct {
	ID                string
	Profile           Profile
	Status            Status
	Location          *kernel.Location
	LocationUpdatedAt time.Time
	Points            int
	Rank              int
}

// Driver represents a fleet driver. It is the aggregate root for identity,
// availability and position.
//
// Business rules:
//   - Driver must have a non-empty ID and name
//   - A new driver starts Available with no known location
//   - Location updates older than the last accepted one are ignored
//
// Example usage:
//
//	d, err := driver.NewDriver("D001", driver.Profile{
//	    Name:        "Sipho Ndlovu",
//	    Phone:       "+27 82 000 0001",
//	    VehicleType: driver.VehicleMotorCycle,
//	})
//	if err != nil {
//	    // Handle construction error
//	}
type Driver struct {
	// id uniquely identifies the driver
	id string
	// profile holds contact and vehicle data
	profile Profile
	// status is the current availability
	status Status
	// location is the last reported position, nil until the first report
	location *kernel.Location
	// locationUpdatedAt is the time of the last accepted location report
	locationUpdatedAt time.Time
	// points and rank are gamification counters maintained outside this core
	points int
	rank   int
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the given profile.
//
// Parameters:
//   - id: Unique identifier (e.g. "D001" or kernel.NewDriverID())
//   - profile: Contact and vehicle data; Name is required, VehicleType defaults to Car
//
// Returns:
//   - *Driver: An Available driver with no location
//   - error: Aggregated validation errors
func NewDriver(id string, profile Profile) (*Driver, error) {
	profile = profile.clone()
	if err := errors.Join(requireText("driverId", id), profile.normalize()); err != nil {
		return nil, err
	}

	return &Driver{
		id:      id,
		profile: profile,
		status:  StatusAvailable,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(state State) (*Driver, error) {
	profile := state.Profile.clone()
	var locErr error
	if state.Location != nil {
		locErr = state.Location.Validate()
	}
	if err := errors.Join(
		requireText("driverId", state.ID),
		profile.normalize(),
		state.Status.Validate(),
		locErr,
	); err != nil {
		return nil, err
	}

	return &Driver{
		id:                state.ID,
		profile:           profile,
		status:            state.Status,
		location:          cloneLocation(state.Location),
		locationUpdatedAt: state.LocationUpdatedAt,
		points:            state.Points,
		rank:              state.Rank,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Driver was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver identifier.
func (d *Driver) ID() string {
	return d.id
}

// Name returns the display name.
func (d *Driver) Name() string {
	return d.profile.Name
}

// Profile returns a copy of the contact and vehicle data.
func (d *Driver) Profile() Profile {
	return d.profile.clone()
}

// TeamID returns the team the driver belongs to, or nil.
func (d *Driver) TeamID() *string {
	return cloneString(d.profile.TeamID)
}

// VehicleID returns the driver's current vehicle, or nil.
func (d *Driver) VehicleID() *string {
	return cloneString(d.profile.VehicleID)
}

// Status returns the current availability.
func (d *Driver) Status() Status {
	return d.status
}

// Location returns the last reported location and whether one is known.
func (d *Driver) Location() (kernel.Location, bool) {
	if d.location == nil {
		return kernel.Location{}, false
	}
	return *d.location, true
}

// LocationUpdatedAt returns the time of the last accepted location report.
func (d *Driver) LocationUpdatedAt() time.Time {
	return d.locationUpdatedAt
}

// Points returns the driver's points.
func (d *Driver) Points() int {
	return d.points
}

// Rank returns the driver's rank.
func (d *Driver) Rank() int {
	return d.rank
}

// UpdateLocation records a new position reported at the given time.
//
// Returns:
//   - bool: false when the report is older than the last accepted one and was ignored
//   - error: validation error for a zero-value location
func (d *Driver) UpdateLocation(location kernel.Location, at time.Time) (bool, error) {
	if err := errors.Join(d.Validate(), location.Validate()); err != nil {
		return false, err
	}
	if d.location != nil && at.Before(d.locationUpdatedAt) {
		return false, nil
	}

	d.location = &location
	d.locationUpdatedAt = at
	return true, nil
}

// UpdateProfile replaces the contact and vehicle data.
func (d *Driver) UpdateProfile(profile Profile) error {
	if err := d.Validate(); err != nil {
		return err
	}
	profile = profile.clone()
	if err := profile.normalize(); err != nil {
		return err
	}
	d.profile = profile
	return nil
}

// SetStatus changes the availability.
func (d *Driver) SetStatus(status Status) error {
	if err := errors.Join(d.Validate(), status.Validate()); err != nil {
		return err
	}
	d.status = status
	return nil
}

// Snapshot returns the full state of the driver.
func (d *Driver) Snapshot() State {
	return State{
		ID:                d.id,
		Profile:           d.profile.clone(),
		Status:            d.status,
		Location:          cloneLocation(d.location),
		LocationUpdatedAt: d.locationUpdatedAt,
		Points:            d.points,
		Rank:              d.rank,
	}
}

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneLocation(l *kernel.Location) *kernel.Location {
	if l == nil {
		return nil
	}
	v := *l
	return &v
}
