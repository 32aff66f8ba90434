package commands

import (
	"errors"

	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand moves an order to a new status. Any status may be set
// directly; a nil expected version skips the optimistic check.
type SetOrderStatusCommand struct {
	orderID         string
	status          order.Status
	expectedVersion *int64

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a status change command.
func NewSetOrderStatusCommand(orderID string, status order.Status, expectedVersion *int64) (SetOrderStatusCommand, error) {
	cmd := SetOrderStatusCommand{
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

func (c SetOrderStatusCommand) OrderID() string         { return c.orderID }
func (c SetOrderStatusCommand) Status() order.Status    { return c.status }
func (c SetOrderStatusCommand) ExpectedVersion() *int64 { return c.expectedVersion }

func (c *SetOrderStatusCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *SetOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
