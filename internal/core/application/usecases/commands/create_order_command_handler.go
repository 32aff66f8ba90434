package commands

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/ports"
)

// CreateOrderResult describes a freshly persisted order.
type CreateOrderResult struct {
	Order *order.Order
	// ExternalID is the allocated Tookan job_id when requested by WithExternalID.
	ExternalID *int64
}

// CreateOrderCommandHandler handles the business logic for order creation.
// The store and the optional driver are checked before anything is written.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, emitter)
//	cmd, _ := NewCreateOrderCommand("ORD001", details, order.Unassigned, nil, nil)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	alerts     ports.AlertEmitter
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, alerts ports.AlertEmitter) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		alerts:     alerts,
	}
}

// Handle processes the order creation command.
// Returns errs.ErrObjectNotFound for an unknown store or driver.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	details := cmd.Details()
	if _, err := uow.StoreRepository().Get(ctx, details.StoreID); err != nil {
		return CreateOrderResult{}, err
	}

	now := time.Now()
	o, err := order.NewOrder(cmd.OrderID(), details, cmd.InitialStatus(), now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if driverID := cmd.DriverID(); driverID != nil {
		drv, getErr := uow.DriverRepository().Get(ctx, *driverID)
		if getErr != nil {
			return CreateOrderResult{}, getErr
		}

		vehicleID := cmd.VehicleID()
		if vehicleID == nil {
			vehicleID = drv.VehicleID()
		}
		if _, err = o.AssignDriver(drv.ID(), vehicleID, now); err != nil {
			return CreateOrderResult{}, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	result := CreateOrderResult{Order: o}
	if cmd.allocateExternalID {
		externalID, ensureErr := uow.IDMappingRepository().Ensure(ctx, ports.MappingOrder, o.ID())
		if ensureErr != nil {
			return CreateOrderResult{}, ensureErr
		}
		result.ExternalID = &externalID
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	publishStatusChanges(h.alerts, o.PullEvents())
	return result, nil
}
