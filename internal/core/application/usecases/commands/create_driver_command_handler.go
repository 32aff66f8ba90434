package commands

import (
	"context"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/ports"
)

// CreateDriverResult describes a freshly persisted driver.
type CreateDriverResult struct {
	Driver     *driver.Driver
	ExternalID *int64
}

// CreateDriverCommandHandler persists new drivers.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{uowFactory: uowFactory}
}

// Handle validates the profile through the aggregate and persists the driver.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (CreateDriverResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateDriverResult{}, err
	}

	drv, err := driver.NewDriver(cmd.DriverID(), cmd.Profile())
	if err != nil {
		return CreateDriverResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateDriverResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, drv); err != nil {
		return CreateDriverResult{}, err
	}

	result := CreateDriverResult{Driver: drv}
	if cmd.allocateExternalID {
		externalID, ensureErr := uow.IDMappingRepository().Ensure(ctx, ports.MappingDriver, drv.ID())
		if ensureErr != nil {
			return CreateDriverResult{}, ensureErr
		}
		result.ExternalID = &externalID
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateDriverResult{}, err
	}

	return result, nil
}
