package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new order.
//
// An empty order ID is replaced with a generated one. When a driver is given
// the order is assigned in the same transaction; an Unassigned order then moves
// to Assigned with a second activity entry.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("", details, order.Unassigned, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, emitter)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	orderID            string
	details            order.Details
	initialStatus      order.Status
	driverID           *string
	vehicleID          *string
	allocateExternalID bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Only Unassigned and Assigned are accepted as initial statuses.
func NewCreateOrderCommand(
	orderID string,
	details order.Details,
	initialStatus order.Status,
	driverID *string,
	vehicleID *string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details:   details,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setInitialStatus(initialStatus),
		cmd.setDriverID(driverID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// WithExternalID asks the handler to allocate a Tookan job_id for the order
// inside the creating transaction.
func (c CreateOrderCommand) WithExternalID() CreateOrderCommand {
	c.allocateExternalID = true
	return c
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() string             { return c.orderID }
func (c CreateOrderCommand) Details() order.Details      { return c.details }
func (c CreateOrderCommand) InitialStatus() order.Status { return c.initialStatus }
func (c CreateOrderCommand) DriverID() *string           { return c.driverID }
func (c CreateOrderCommand) VehicleID() *string          { return c.vehicleID }

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		orderID = kernel.NewOrderID()
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setInitialStatus(status order.Status) error {
	if status != order.Unassigned && status != order.Assigned {
		return errs.NewValueIsInvalidError("initialStatus")
	}
	c.initialStatus = status
	return nil
}

func (c *CreateOrderCommand) setDriverID(driverID *string) error {
	if driverID != nil && *driverID == "" {
		return errs.NewValueIsRequiredError("driverId")
	}
	c.driverID = driverID
	return nil
}
