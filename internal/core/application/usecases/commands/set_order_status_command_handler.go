package commands

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/ports"
)

// SetOrderStatusCommandHandler applies status changes.
//
// Setting the current status writes nothing and emits nothing. Any other change
// appends to the activity log, persists with a version check and, after commit,
// emits a "Status Changed" alert plus an "Order Failed" alert for Failed.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	alerts     ports.AlertEmitter
}

// NewSetOrderStatusCommandHandler creates a handler for status changes.
func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory, alerts ports.AlertEmitter) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{uowFactory: uowFactory, alerts: alerts}
}

// Handle processes the command and returns the resulting order.
// Returns errs.ErrObjectNotFound for an unknown order and
// errs.ErrVersionConflict when the expected or stored version moved on.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if v := cmd.ExpectedVersion(); v != nil {
		if err = o.ExpectVersion(*v); err != nil {
			return nil, err
		}
	}

	changed, err := o.SetStatus(cmd.Status(), time.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return o, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishStatusChanges(h.alerts, o.PullEvents())
	return o, nil
}
