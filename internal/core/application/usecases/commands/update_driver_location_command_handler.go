package commands

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/zone"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// MaxReportClockSkew bounds how far a reported time may lie ahead of the
// server clock.
const MaxReportClockSkew = time.Minute

// UpdateDriverLocationResult reports what the location update detected.
type UpdateDriverLocationResult struct {
	// Inside holds every exclusion zone containing the new location.
	Inside []zone.Zone
	// Entered holds the zones the driver was not inside on the previous report.
	Entered []zone.Zone
}

// UpdateDriverLocationCommandHandler persists driver positions and raises one
// "Entered Exclusion Zone" alert per zone entry.
//
// Reports are ordered by their reported time, or by the processing time when
// the device sent none. A report older than the last accepted one is ignored
// and returns an empty result. Zone entries are observed with the same time,
// so the shared tracker never lets an older position win over a newer one.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
	alerts     ports.AlertEmitter
	tracker    *services.ZoneEntryTracker
	engine     services.GeofenceEngine
}

// NewUpdateDriverLocationCommandHandler creates a handler sharing the given
// tracker. The zone sweep job must use the same tracker instance.
func NewUpdateDriverLocationCommandHandler(
	uowFactory DriverUoWFactory,
	alerts ports.AlertEmitter,
	tracker *services.ZoneEntryTracker,
) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
		alerts:     alerts,
		tracker:    tracker,
		engine:     services.NewGeofenceEngine(),
	}
}

// Handle processes the location report.
func (h UpdateDriverLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDriverLocationCommand,
) (UpdateDriverLocationResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateDriverLocationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateDriverLocationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	drv, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return UpdateDriverLocationResult{}, err
	}

	now := time.Now()
	at := cmd.ReportedAt()
	if at.IsZero() {
		at = now
	}
	if limit := now.Add(MaxReportClockSkew); at.After(limit) {
		return UpdateDriverLocationResult{}, errs.NewValueIsOutOfRangeError("reportedAt", at, nil, limit)
	}

	accepted, err := drv.UpdateLocation(cmd.Location(), at)
	if err != nil {
		return UpdateDriverLocationResult{}, err
	}
	if !accepted {
		return UpdateDriverLocationResult{}, nil
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return UpdateDriverLocationResult{}, err
	}

	zones, err := uow.ZoneRepository().GetAllByKind(ctx, zone.KindExclusion)
	if err != nil {
		return UpdateDriverLocationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateDriverLocationResult{}, err
	}

	check := h.engine.CheckPoint(cmd.Location().Point(), zones)
	entered := h.tracker.Observe(drv.ID(), at, check.Matches)
	for _, z := range entered {
		h.alerts.Emit(services.ZoneEntryAlert(drv.ID(), drv.Name(), z, now))
	}

	return UpdateDriverLocationResult{Inside: check.Matches, Entered: entered}, nil
}
