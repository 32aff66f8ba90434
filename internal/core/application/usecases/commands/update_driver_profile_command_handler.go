package commands

import (
	"context"

	"fleet/internal/core/domain/model/driver"
)

// UpdateDriverProfileCommandHandler applies profile edits.
type UpdateDriverProfileCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverProfileCommandHandler creates a handler for profile edits.
func NewUpdateDriverProfileCommandHandler(uowFactory DriverUoWFactory) UpdateDriverProfileCommandHandler {
	return UpdateDriverProfileCommandHandler{uowFactory: uowFactory}
}

// Handle loads the driver, replaces the profile and persists it.
func (h UpdateDriverProfileCommandHandler) Handle(ctx context.Context, cmd UpdateDriverProfileCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	drv, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = drv.UpdateProfile(cmd.Profile()); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return drv, nil
}
