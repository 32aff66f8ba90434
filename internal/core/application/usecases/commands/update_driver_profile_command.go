package commands

import (
	"errors"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrUpdateDriverProfileCommandIsNotConstructed = errors.New(
	"UpdateDriverProfileCommand must be created via NewUpdateDriverProfileCommand constructor",
)

// UpdateDriverProfileCommand replaces a driver's contact and vehicle data.
type UpdateDriverProfileCommand struct {
	driverID string
	profile  driver.Profile

	guard guard.ConstructorGuard
}

// NewUpdateDriverProfileCommand creates a profile update command.
func NewUpdateDriverProfileCommand(driverID string, profile driver.Profile) (UpdateDriverProfileCommand, error) {
	if driverID == "" {
		return UpdateDriverProfileCommand{}, errs.NewValueIsRequiredError("driverId")
	}
	return UpdateDriverProfileCommand{
		driverID: driverID,
		profile:  profile,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverProfileCommandIsNotConstructed)
}

func (c UpdateDriverProfileCommand) DriverID() string        { return c.driverID }
func (c UpdateDriverProfileCommand) Profile() driver.Profile { return c.profile }
