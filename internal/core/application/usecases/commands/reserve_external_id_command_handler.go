package commands

import (
	"context"
)

// ReserveExternalIDCommandHandler claims a local ID ahead of a remote call
// that will assign its external ID. A second claim fails with
// errs.ErrAlreadyExists until the first is bound or released.
type ReserveExternalIDCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReserveExternalIDCommandHandler creates a handler for reservations.
func NewReserveExternalIDCommandHandler(uowFactory OrderUoWFactory) ReserveExternalIDCommandHandler {
	return ReserveExternalIDCommandHandler{uowFactory: uowFactory}
}

// Handle processes the reservation command.
func (h ReserveExternalIDCommandHandler) Handle(ctx context.Context, cmd ReserveExternalIDCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := localEntityExists(ctx, uow, cmd.Kind(), cmd.LocalID()); err != nil {
		return err
	}
	if err := uow.IDMappingRepository().Reserve(ctx, cmd.Kind(), cmd.LocalID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ReleaseExternalIDCommandHandler drops a reservation whose remote call
// failed. Bound mappings are left alone.
type ReleaseExternalIDCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReleaseExternalIDCommandHandler creates a handler for releases.
func NewReleaseExternalIDCommandHandler(uowFactory OrderUoWFactory) ReleaseExternalIDCommandHandler {
	return ReleaseExternalIDCommandHandler{uowFactory: uowFactory}
}

// Handle processes the release command.
func (h ReleaseExternalIDCommandHandler) Handle(ctx context.Context, cmd ReserveExternalIDCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.IDMappingRepository().Release(ctx, cmd.Kind(), cmd.LocalID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
