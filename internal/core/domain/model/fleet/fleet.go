// Package fleet holds the organisational entities orders and drivers hang off:
// the stores attached to hubs and the driver teams that serve them. Hubs are
// referenced by ID only. Hub membership decides which drivers may be dispatched to which orders.
package fleet

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// Store is a pickup origin. Every store belongs to exactly one hub.
type Store struct {
	ID       string
	Name     string
	Location kernel.Location
	HubID    string
}

// NewStore validates and returns a Store.
func NewStore(id, name string, location kernel.Location, hubID string) (Store, error) {
	if err := errors.Join(
		required("storeId", id),
		required("name", name),
		required("hubId", hubID),
		location.Validate(),
	); err != nil {
		return Store{}, err
	}
	return Store{ID: id, Name: name, Location: location, HubID: hubID}, nil
}

// Team is a group of drivers working out of one hub.
type Team struct {
	ID    string
	Name  string
	HubID string
}

// NewTeam validates and returns a Team.
func NewTeam(id, name, hubID string) (Team, error) {
	if err := errors.Join(
		required("teamId", id),
		required("name", name),
		required("hubId", hubID),
	); err != nil {
		return Team{}, err
	}
	return Team{ID: id, Name: name, HubID: hubID}, nil
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
