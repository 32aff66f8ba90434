package services

import (
	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
)

// NearestStore returns the store closest to point by squared planar distance
// in degrees. Ties keep the earlier store. ok is false for an empty slice.
func NearestStore(point kernel.Point, stores []fleet.Store) (store fleet.Store, ok bool) {
	best := -1.0
	for _, s := range stores {
		d := point.DistanceSquared(s.Location.Point())
		if !ok || d < best {
			store, best, ok = s, d, true
		}
	}
	return store, ok
}
