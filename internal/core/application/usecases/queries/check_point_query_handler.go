package queries

import (
	"context"

	"fleet/internal/core/domain/services"
)

// CheckPointQueryHandler runs the geofence engine over stored zones.
type CheckPointQueryHandler struct {
	readers ZoneReaderFactory
	engine  services.GeofenceEngine
}

// NewCheckPointQueryHandler creates a handler for point classification.
func NewCheckPointQueryHandler(readers ZoneReaderFactory) CheckPointQueryHandler {
	return CheckPointQueryHandler{readers: readers, engine: services.NewGeofenceEngine()}
}

// Handle reports every zone of the requested kind that contains the point.
func (h CheckPointQueryHandler) Handle(ctx context.Context, query CheckPointQuery) (CheckPointResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckPointResponse{}, err
	}

	zones, err := h.readers.Create().ZoneRepository().GetAllByKind(ctx, query.Kind())
	if err != nil {
		return CheckPointResponse{}, err
	}

	result := h.engine.CheckPoint(query.Point(), zones)
	views := make([]ZoneView, len(result.Matches))
	for i, z := range result.Matches {
		views[i] = NewZoneView(z)
	}
	return CheckPointResponse{IsInside: result.IsInside, Zones: views}, nil
}
