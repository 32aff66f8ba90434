package commands

import (
	"context"

	"fleet/internal/core/domain/model/zone"
)

// CreateZoneCommandHandler persists new zones. New exclusion zones take part
// in the next location update and the next sweep.
type CreateZoneCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateZoneCommandHandler creates a handler for zone registration.
func NewCreateZoneCommandHandler(uowFactory FleetUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{uowFactory: uowFactory}
}

// Handle processes the zone command.
func (h CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) (zone.Zone, error) {
	if err := cmd.Validate(); err != nil {
		return zone.Zone{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zone.Zone{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ZoneRepository().Add(ctx, cmd.Zone()); err != nil {
		return zone.Zone{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return zone.Zone{}, err
	}
	return cmd.Zone(), nil
}
