package queries

import (
	"context"
	"errors"
	"fmt"

	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrResolveExternalIDQueryIsNotConstructed = errors.New(
	"ResolveExternalIDQuery must be created via NewResolveExternalIDQuery constructor",
)

// ResolveExternalIDQuery maps a Tookan integer ID back to the local ID.
type ResolveExternalIDQuery struct {
	kind       ports.MappingKind
	externalID int64
	paramName  string

	guard guard.ConstructorGuard
}

// NewResolveExternalIDQuery creates a lookup. paramName names the wire field,
// such as "fleet_id", in the returned errors.
func NewResolveExternalIDQuery(kind ports.MappingKind, externalID int64, paramName string) (ResolveExternalIDQuery, error) {
	if externalID <= 0 {
		return ResolveExternalIDQuery{}, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%d is not a positive id", externalID))
	}
	return ResolveExternalIDQuery{
		kind:       kind,
		externalID: externalID,
		paramName:  paramName,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveExternalIDQuery) Validate() error {
	return q.guard.Validate(ErrResolveExternalIDQueryIsNotConstructed)
}

// ResolveExternalIDQueryHandler reads the ID mapping table.
type ResolveExternalIDQueryHandler struct {
	readers OrderReaderFactory
}

// NewResolveExternalIDQueryHandler creates a handler for ID lookups.
func NewResolveExternalIDQueryHandler(readers OrderReaderFactory) ResolveExternalIDQueryHandler {
	return ResolveExternalIDQueryHandler{readers: readers}
}

// Handle returns the local ID, or errs.ErrObjectNotFound naming the wire field.
func (h ResolveExternalIDQueryHandler) Handle(ctx context.Context, query ResolveExternalIDQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}
	localID, err := h.readers.Create().IDMappingRepository().FindLocal(ctx, query.kind, query.externalID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", errs.NewObjectNotFoundErrorWithCause(query.paramName, query.externalID, err)
	}
	return localID, err
}
