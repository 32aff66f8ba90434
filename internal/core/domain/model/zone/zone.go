package zone

import (
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// Kind separates tracked geofences from restricted exclusion zones.
type Kind string

const (
	KindGeofence  Kind = "geofence"
	KindExclusion Kind = "exclusion"
)

// Validate checks the kind against the closed set.
func (k Kind) Validate() error {
	switch k {
	case KindGeofence, KindExclusion:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known zone kind", string(k)))
	}
}

// ExclusionType is the restriction an exclusion zone imposes.
type ExclusionType string

const (
	NoGo     ExclusionType = "No-go"
	SlowDown ExclusionType = "Slow-down"
)

// Validate checks the exclusion type against the closed set.
func (t ExclusionType) Validate() error {
	switch t {
	case NoGo, SlowDown:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("exclusionType", fmt.Errorf("%q is not a known exclusion type", string(t)))
	}
}

// Zone is a named polygon of one kind. Color is set for geofences,
// ExclusionType for exclusion zones.
type Zone struct {
	ID            string
	Name          string
	Kind          Kind
	Polygon       Polygon
	Color         string
	ExclusionType ExclusionType
	HubID         *string
}

// NewGeofence creates a tracked inclusion region.
func NewGeofence(id, name string, polygon Polygon, color string, hubID *string) (Zone, error) {
	if err := errors.Join(required("zoneId", id), required("name", name), polygon.Validate()); err != nil {
		return Zone{}, err
	}
	return Zone{ID: id, Name: name, Kind: KindGeofence, Polygon: polygon, Color: color, HubID: hubID}, nil
}

// NewExclusionZone creates a No-go or Slow-down region.
func NewExclusionZone(id, name string, polygon Polygon, exclusionType ExclusionType) (Zone, error) {
	if err := errors.Join(
		required("zoneId", id),
		required("name", name),
		polygon.Validate(),
		exclusionType.Validate(),
	); err != nil {
		return Zone{}, err
	}
	return Zone{ID: id, Name: name, Kind: KindExclusion, Polygon: polygon, ExclusionType: exclusionType}, nil
}

// Contains reports whether the zone's polygon contains the point.
func (z Zone) Contains(pt kernel.Point) bool {
	return z.Polygon.Contains(pt)
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
