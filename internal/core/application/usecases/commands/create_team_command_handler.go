package commands

import (
	"context"

	"fleet/internal/core/domain/model/fleet"
)

// CreateTeamCommandHandler persists new teams.
type CreateTeamCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateTeamCommandHandler creates a handler for team registration.
func NewCreateTeamCommandHandler(uowFactory FleetUoWFactory) CreateTeamCommandHandler {
	return CreateTeamCommandHandler{uowFactory: uowFactory}
}

// Handle processes the team command.
func (h CreateTeamCommandHandler) Handle(ctx context.Context, cmd CreateTeamCommand) (fleet.Team, error) {
	if err := cmd.Validate(); err != nil {
		return fleet.Team{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fleet.Team{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TeamRepository().Add(ctx, cmd.Team()); err != nil {
		return fleet.Team{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return fleet.Team{}, err
	}
	return cmd.Team(), nil
}
