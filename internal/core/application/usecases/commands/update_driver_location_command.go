package commands

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand reports a driver's current position.
type UpdateDriverLocationCommand struct {
	driverID   string
	location   kernel.Location
	reportedAt time.Time

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a location report command.
func NewUpdateDriverLocationCommand(driverID string, location kernel.Location) (UpdateDriverLocationCommand, error) {
	var idErr error
	if driverID == "" {
		idErr = errs.NewValueIsRequiredError("driverId")
	}
	if err := errors.Join(idErr, location.Validate()); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return UpdateDriverLocationCommand{
		driverID: driverID,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// WithReportedAt sets the time the device took the position. Without it the
// handler uses the time the report is processed.
func (c UpdateDriverLocationCommand) WithReportedAt(at time.Time) UpdateDriverLocationCommand {
	c.reportedAt = at
	return c
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

func (c UpdateDriverLocationCommand) DriverID() string          { return c.driverID }
func (c UpdateDriverLocationCommand) Location() kernel.Location { return c.location }
func (c UpdateDriverLocationCommand) ReportedAt() time.Time     { return c.reportedAt }
