package commands

import (
	"errors"

	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/pkg/guard"
)

var ErrCreateTeamCommandIsNotConstructed = errors.New(
	"CreateTeamCommand must be created via NewCreateTeamCommand constructor",
)

// CreateTeamCommand registers a driver team on a hub.
type CreateTeamCommand struct {
	team fleet.Team

	guard guard.ConstructorGuard
}

// NewCreateTeamCommand validates the team fields.
func NewCreateTeamCommand(id, name, hubID string) (CreateTeamCommand, error) {
	team, err := fleet.NewTeam(id, name, hubID)
	if err != nil {
		return CreateTeamCommand{}, err
	}
	return CreateTeamCommand{team: team, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTeamCommand) Validate() error {
	return c.guard.Validate(ErrCreateTeamCommandIsNotConstructed)
}

func (c CreateTeamCommand) Team() fleet.Team { return c.team }
