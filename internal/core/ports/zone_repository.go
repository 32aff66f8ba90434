package ports

import (
	"context"

	"fleet/internal/core/domain/model/zone"
)

// ZoneRepository stores geofences and exclusion zones.
type ZoneRepository interface {
	// Add persists a new zone.
	Add(ctx context.Context, z zone.Zone) error

	// GetAllByKind returns every zone of the kind ordered by ID.
	GetAllByKind(ctx context.Context, kind zone.Kind) ([]zone.Zone, error)
}
