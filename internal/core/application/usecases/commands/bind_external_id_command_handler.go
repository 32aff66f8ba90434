package commands

import (
	"context"

	"fleet/internal/core/ports"
)

// BindExternalIDCommandHandler writes ID mappings. The local entity must
// exist; binding over an existing mapping fails with errs.ErrAlreadyExists.
type BindExternalIDCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBindExternalIDCommandHandler creates a handler for ID bindings.
func NewBindExternalIDCommandHandler(uowFactory OrderUoWFactory) BindExternalIDCommandHandler {
	return BindExternalIDCommandHandler{uowFactory: uowFactory}
}

// Handle processes the binding command.
func (h BindExternalIDCommandHandler) Handle(ctx context.Context, cmd BindExternalIDCommand) error {
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

	if err := uow.IDMappingRepository().Bind(ctx, cmd.Kind(), cmd.LocalID(), cmd.ExternalID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// localEntityExists fails with errs.ErrObjectNotFound when the entity a
// mapping of kind would point at is missing.
func localEntityExists(ctx context.Context, uow OrderUoW, kind ports.MappingKind, localID string) error {
	var err error
	switch kind {
	case ports.MappingOrder, ports.MappingRemoteOrder:
		_, err = uow.OrderRepository().Get(ctx, localID)
	default:
		_, err = uow.DriverRepository().Get(ctx, localID)
	}
	return err
}
