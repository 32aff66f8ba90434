package commands

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/zone"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
)

// SweepDriverZonesCommandHandler feeds every located driver through the shared
// ZoneEntryTracker. It only reads; no transaction is opened.
//
// Each driver is observed at its LocationUpdatedAt, so a report accepted
// while the sweep runs is never overwritten by the sweep's older snapshot.
type SweepDriverZonesCommandHandler struct {
	uowFactory DriverUoWFactory
	alerts     ports.AlertEmitter
	tracker    *services.ZoneEntryTracker
	engine     services.GeofenceEngine
}

// NewSweepDriverZonesCommandHandler creates a sweep handler.
func NewSweepDriverZonesCommandHandler(
	uowFactory DriverUoWFactory,
	alerts ports.AlertEmitter,
	tracker *services.ZoneEntryTracker,
) SweepDriverZonesCommandHandler {
	return SweepDriverZonesCommandHandler{
		uowFactory: uowFactory,
		alerts:     alerts,
		tracker:    tracker,
		engine:     services.NewGeofenceEngine(),
	}
}

// Handle runs one sweep and returns the number of entry alerts emitted.
func (h SweepDriverZonesCommandHandler) Handle(ctx context.Context, cmd SweepDriverZonesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	drivers, err := uow.DriverRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}

	zones, err := uow.ZoneRepository().GetAllByKind(ctx, zone.KindExclusion)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	emitted := 0
	for _, drv := range drivers {
		loc, ok := drv.Location()
		if !ok {
			continue
		}

		check := h.engine.CheckPoint(loc.Point(), zones)
		for _, z := range h.tracker.Observe(drv.ID(), drv.LocationUpdatedAt(), check.Matches) {
			h.alerts.Emit(services.ZoneEntryAlert(drv.ID(), drv.Name(), z, now))
			emitted++
		}
	}

	return emitted, nil
}
