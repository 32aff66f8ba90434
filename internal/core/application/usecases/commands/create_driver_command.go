package commands

import (
	"errors"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand registers a new driver. An empty driver ID is replaced
// with a generated one.
type CreateDriverCommand struct {
	driverID           string
	profile            driver.Profile
	allocateExternalID bool

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a driver registration command. Profile rules
// are enforced by the driver aggregate when the handler runs.
func NewCreateDriverCommand(driverID string, profile driver.Profile) CreateDriverCommand {
	if driverID == "" {
		driverID = kernel.NewDriverID()
	}
	return CreateDriverCommand{
		driverID: driverID,
		profile:  profile,
		guard:    guard.NewConstructorGuard(),
	}
}

// WithExternalID asks the handler to allocate a Tookan fleet_id in the same transaction.
func (c CreateDriverCommand) WithExternalID() CreateDriverCommand {
	c.allocateExternalID = true
	return c
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() string        { return c.driverID }
func (c CreateDriverCommand) Profile() driver.Profile { return c.profile }
