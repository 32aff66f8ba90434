package commands

import (
	"errors"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand dispatches a driver, and optionally a vehicle, to an order.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand("ORD001", "D001", nil, nil, false)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type AssignDriverCommand struct {
	orderID         string
	driverID        string
	vehicleID       *string
	expectedVersion *int64
	override        bool

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates an assignment command. With override the hub
// eligibility check is skipped.
func NewAssignDriverCommand(
	orderID, driverID string,
	vehicleID *string,
	expectedVersion *int64,
	override bool,
) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		vehicleID:       vehicleID,
		expectedVersion: expectedVersion,
		override:        override,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) OrderID() string         { return c.orderID }
func (c AssignDriverCommand) DriverID() string        { return c.driverID }
func (c AssignDriverCommand) VehicleID() *string      { return c.vehicleID }
func (c AssignDriverCommand) ExpectedVersion() *int64 { return c.expectedVersion }
func (c AssignDriverCommand) Override() bool          { return c.override }

func (c *AssignDriverCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverId")
	}
	c.driverID = driverID
	return nil
}
