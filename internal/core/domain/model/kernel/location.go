package kernel

import (
	"errors"
	"fmt"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Point is a bare latitude/longitude pair. It carries no validation and is the
// unit of geometry used by polygon containment; geometry treats Lng as X and
// Lat as Y on a plane.
type Point struct {
	Lat float64
	Lng float64
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%.6f,%.6f)", p.Lat, p.Lng)
}

// DistanceSquared returns the squared planar distance in degrees between two points.
// It is only meaningful for ranking nearby points against each other.
func (p Point) DistanceSquared(other Point) float64 {
	dLat := p.Lat - other.Lat
	dLng := p.Lng - other.Lng
	return dLat*dLat + dLng*dLng
}

// Location is an immutable value object: a validated point with an optional
// human-readable address. The zero value is invalid.
//
// Example:
//
//	loc, err := kernel.NewLocation(-26.1076, 28.0567, "Sandton City, Johannesburg")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Location(-26.107600,28.056700)
type Location struct { //nolint:recvcheck //using for validation
	point   Point
	address string
	guard   guard.ConstructorGuard
}

// NewLocation creates a Location. Latitude must be within [-90, 90] and
// longitude within [-180, 180]; both violations are reported together.
func NewLocation(lat, lng float64, address string) (Location, error) {
	loc := Location{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks that the Location was created with NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (l Location) Lat() float64 {
	return l.point.Lat
}

// Lng returns the longitude in degrees.
func (l Location) Lng() float64 {
	return l.point.Lng
}

// Address returns the free-form address, possibly empty.
func (l Location) Address() string {
	return l.address
}

// Point returns the coordinates without the address.
func (l Location) Point() Point {
	return l.point
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%.6f,%.6f)", l.point.Lat, l.point.Lng)
}

// IsEqual compares coordinates and address. Both locations must be valid.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

func (l *Location) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	l.point.Lat = lat
	return nil
}

func (l *Location) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}

	l.point.Lng = lng
	return nil
}
