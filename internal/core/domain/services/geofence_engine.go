package services

import (
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/zone"
)

// CheckResult is the outcome of classifying a point against a set of zones.
type CheckResult struct {
	IsInside bool
	Matches  []zone.Zone
}

// GeofenceEngine classifies points against zone polygons. It holds no state
// and is safe for concurrent use.
type GeofenceEngine struct{}

// NewGeofenceEngine creates a new GeofenceEngine instance.
func NewGeofenceEngine() GeofenceEngine {
	return GeofenceEngine{}
}

// Contains reports whether the polygon contains the point.
// See zone.Polygon.Contains for the boundary rule.
func (GeofenceEngine) Contains(polygon zone.Polygon, point kernel.Point) bool {
	return polygon.Contains(point)
}

// CheckPoint returns every zone containing the point, in input order.
// Overlapping zones are all reported.
func (GeofenceEngine) CheckPoint(point kernel.Point, zones []zone.Zone) CheckResult {
	var matches []zone.Zone
	for _, z := range zones {
		if z.Contains(point) {
			matches = append(matches, z)
		}
	}
	return CheckResult{IsInside: len(matches) > 0, Matches: matches}
}
