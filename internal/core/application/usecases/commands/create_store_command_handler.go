package commands

import (
	"context"

	"fleet/internal/core/domain/model/fleet"
)

// CreateStoreCommandHandler persists new stores. A store ID that is taken
// fails with errs.ErrAlreadyExists.
type CreateStoreCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateStoreCommandHandler creates a handler for store registration.
func NewCreateStoreCommandHandler(uowFactory FleetUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{uowFactory: uowFactory}
}

// Handle processes the store command.
func (h CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) (fleet.Store, error) {
	if err := cmd.Validate(); err != nil {
		return fleet.Store{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fleet.Store{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.StoreRepository().Add(ctx, cmd.Store()); err != nil {
		return fleet.Store{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return fleet.Store{}, err
	}
	return cmd.Store(), nil
}
