package services

import (
	"sync"
	"time"

	"fleet/internal/core/domain/model/zone"
)

// ZoneEntryTracker remembers, per driver, the zones the driver was last seen
// inside so that only transitions into a zone are reported.
//
// Observations are ordered by the time of the location they were computed
// from. An observation older than the last one recorded for the driver is
// ignored, so a sweep working from a stale snapshot cannot overwrite the
// containment of a newer location report.
//
// The memory is process-local. After a restart every driver currently inside a
// zone is reported once more on its next observation.
type ZoneEntryTracker struct {
	mu      sync.Mutex
	drivers map[string]observation
}

type observation struct {
	at     time.Time
	inside map[string]struct{}
}

// NewZoneEntryTracker creates an empty tracker.
func NewZoneEntryTracker() *ZoneEntryTracker {
	return &ZoneEntryTracker{drivers: make(map[string]observation)}
}

// Observe records that the driver's location reported at `at` lies inside
// matches and returns the zones that were not in the previous set, in the
// order given. It returns nil without recording anything when `at` is before
// the last recorded observation of the driver.
func (t *ZoneEntryTracker) Observe(driverID string, at time.Time, matches []zone.Zone) []zone.Zone {
	current := make(map[string]struct{}, len(matches))
	for _, z := range matches {
		current[z.ID] = struct{}{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	previous, seen := t.drivers[driverID]
	if seen && at.Before(previous.at) {
		return nil
	}

	var entered []zone.Zone
	for _, z := range matches {
		if _, was := previous.inside[z.ID]; !was {
			entered = append(entered, z)
		}
	}

	t.drivers[driverID] = observation{at: at, inside: current}
	return entered
}

// Forget drops the driver's containment memory.
func (t *ZoneEntryTracker) Forget(driverID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.drivers, driverID)
}
