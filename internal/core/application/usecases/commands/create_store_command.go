package commands

import (
	"errors"

	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand registers a pickup store on a hub.
type CreateStoreCommand struct {
	store fleet.Store

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand validates the store fields.
func NewCreateStoreCommand(id, name string, location kernel.Location, hubID string) (CreateStoreCommand, error) {
	store, err := fleet.NewStore(id, name, location, hubID)
	if err != nil {
		return CreateStoreCommand{}, err
	}
	return CreateStoreCommand{store: store, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

func (c CreateStoreCommand) Store() fleet.Store { return c.store }
