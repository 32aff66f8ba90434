package commands

import (
	"errors"
	"fmt"
	"slices"

	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrBindExternalIDCommandIsNotConstructed = errors.New(
	"BindExternalIDCommand must be created via NewBindExternalIDCommand constructor",
)

// BindExternalIDCommand records an ID assigned by Tookan for a local entity.
type BindExternalIDCommand struct {
	kind       ports.MappingKind
	localID    string
	externalID int64

	guard guard.ConstructorGuard
}

// NewBindExternalIDCommand creates a binding command.
func NewBindExternalIDCommand(kind ports.MappingKind, localID string, externalID int64) (BindExternalIDCommand, error) {
	var kindErr, localErr, externalErr error
	if !slices.Contains(ports.MappingKinds(), kind) {
		kindErr = errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a mapping kind", string(kind)))
	}
	if localID == "" {
		localErr = errs.NewValueIsRequiredError("localId")
	}
	if externalID <= 0 {
		externalErr = errs.NewValueIsInvalidErrorWithCause("externalId", fmt.Errorf("%d is not a positive id", externalID))
	}
	if err := errors.Join(kindErr, localErr, externalErr); err != nil {
		return BindExternalIDCommand{}, err
	}

	return BindExternalIDCommand{
		kind:       kind,
		localID:    localID,
		externalID: externalID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BindExternalIDCommand) Validate() error {
	return c.guard.Validate(ErrBindExternalIDCommandIsNotConstructed)
}

func (c BindExternalIDCommand) Kind() ports.MappingKind { return c.kind }
func (c BindExternalIDCommand) LocalID() string         { return c.localID }
func (c BindExternalIDCommand) ExternalID() int64       { return c.externalID }
