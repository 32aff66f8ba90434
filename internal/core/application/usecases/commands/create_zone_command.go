package commands

import (
	"errors"

	"fleet/internal/core/domain/model/zone"
	"fleet/internal/pkg/guard"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewGeofenceCommand or NewExclusionZoneCommand",
)

// CreateZoneCommand registers a geofence or an exclusion zone.
type CreateZoneCommand struct {
	zone zone.Zone

	guard guard.ConstructorGuard
}

// NewGeofenceCommand validates a tracked inclusion region.
func NewGeofenceCommand(id, name string, polygon zone.Polygon, color string, hubID *string) (CreateZoneCommand, error) {
	z, err := zone.NewGeofence(id, name, polygon, color, hubID)
	if err != nil {
		return CreateZoneCommand{}, err
	}
	return CreateZoneCommand{zone: z, guard: guard.NewConstructorGuard()}, nil
}

// NewExclusionZoneCommand validates a No-go or Slow-down region.
func NewExclusionZoneCommand(id, name string, polygon zone.Polygon, exclusionType zone.ExclusionType) (CreateZoneCommand, error) {
	z, err := zone.NewExclusionZone(id, name, polygon, exclusionType)
	if err != nil {
		return CreateZoneCommand{}, err
	}
	return CreateZoneCommand{zone: z, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through a constructor.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

func (c CreateZoneCommand) Zone() zone.Zone { return c.zone }
