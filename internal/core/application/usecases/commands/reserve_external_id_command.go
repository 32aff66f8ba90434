package commands

import (
	"errors"
	"fmt"
	"slices"

	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrReserveExternalIDCommandIsNotConstructed = errors.New(
	"ReserveExternalIDCommand must be created via NewReserveExternalIDCommand constructor",
)

// ReserveExternalIDCommand claims or releases a local ID whose external ID
// is not known yet.
type ReserveExternalIDCommand struct {
	kind    ports.MappingKind
	localID string

	guard guard.ConstructorGuard
}

// NewReserveExternalIDCommand creates a reservation command.
func NewReserveExternalIDCommand(kind ports.MappingKind, localID string) (ReserveExternalIDCommand, error) {
	var kindErr, localErr error
	if !slices.Contains(ports.MappingKinds(), kind) {
		kindErr = errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a mapping kind", string(kind)))
	}
	if localID == "" {
		localErr = errs.NewValueIsRequiredError("localId")
	}
	if err := errors.Join(kindErr, localErr); err != nil {
		return ReserveExternalIDCommand{}, err
	}

	return ReserveExternalIDCommand{
		kind:    kind,
		localID: localID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveExternalIDCommand) Validate() error {
	return c.guard.Validate(ErrReserveExternalIDCommandIsNotConstructed)
}

func (c ReserveExternalIDCommand) Kind() ports.MappingKind { return c.kind }
func (c ReserveExternalIDCommand) LocalID() string         { return c.localID }
