package commands

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
)

// AssignDriverCommandHandler orchestrates driver assignment.
// Loads the order, the driver, the order's store and the teams, lets
// OrderDispatcher apply the assignment and persists it in one transaction.
// A repeated identical assignment writes nothing and keeps the version.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory, emitter)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // order or driver missing
//	case errors.Is(err, errs.ErrVersionConflict):
//	    // someone else changed the order
//	case err != nil:
//	    // ineligible driver or infrastructure failure
//	}
type AssignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
	alerts     ports.AlertEmitter
	dispatcher services.OrderDispatcher
}

// NewAssignDriverCommandHandler creates a handler for assignments.
func NewAssignDriverCommandHandler(uowFactory OrderUoWFactory, alerts ports.AlertEmitter) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		alerts:     alerts,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle processes the assignment command and returns the resulting order.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*order.Order, error) {
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

	drv, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	store, err := uow.StoreRepository().Get(ctx, o.StoreID())
	if err != nil {
		return nil, err
	}

	var teams []fleet.Team
	if !cmd.Override() {
		if teams, err = uow.TeamRepository().GetAll(ctx); err != nil {
			return nil, err
		}
	}

	changed, err := h.dispatcher.Assign(o, store, teams, drv, cmd.VehicleID(), !cmd.Override(), time.Now())
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
