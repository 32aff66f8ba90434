package commands

import (
	"errors"

	"fleet/internal/pkg/guard"
)

var ErrSweepDriverZonesCommandIsNotConstructed = errors.New(
	"SweepDriverZonesCommand must be created via NewSweepDriverZonesCommand constructor",
)

// SweepDriverZonesCommand re-checks every located driver against the current
// exclusion zones. It catches zones created after a driver already stood in them.
type SweepDriverZonesCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepDriverZonesCommand creates a parameterless sweep command.
func NewSweepDriverZonesCommand() SweepDriverZonesCommand {
	return SweepDriverZonesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SweepDriverZonesCommand) Validate() error {
	return c.guard.Validate(ErrSweepDriverZonesCommandIsNotConstructed)
}
