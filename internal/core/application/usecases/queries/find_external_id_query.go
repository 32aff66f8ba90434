package queries

import (
	"context"
	"errors"

	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrFindExternalIDQueryIsNotConstructed = errors.New(
	"FindExternalIDQuery must be created via NewFindExternalIDQuery constructor",
)

// FindExternalIDQuery looks up the Tookan ID bound to a local ID.
type FindExternalIDQuery struct {
	kind    ports.MappingKind
	localID string

	guard guard.ConstructorGuard
}

// NewFindExternalIDQuery creates a lookup for localID.
func NewFindExternalIDQuery(kind ports.MappingKind, localID string) (FindExternalIDQuery, error) {
	if localID == "" {
		return FindExternalIDQuery{}, errs.NewValueIsRequiredError("localId")
	}
	return FindExternalIDQuery{kind: kind, localID: localID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindExternalIDQuery) Validate() error {
	return q.guard.Validate(ErrFindExternalIDQueryIsNotConstructed)
}

// FindExternalIDQueryHandler reads the ID mapping table.
type FindExternalIDQueryHandler struct {
	readers OrderReaderFactory
}

// NewFindExternalIDQueryHandler creates a handler for reverse ID lookups.
func NewFindExternalIDQueryHandler(readers OrderReaderFactory) FindExternalIDQueryHandler {
	return FindExternalIDQueryHandler{readers: readers}
}

// Handle returns the external ID and whether one is bound.
func (h FindExternalIDQueryHandler) Handle(ctx context.Context, query FindExternalIDQuery) (int64, bool, error) {
	if err := query.Validate(); err != nil {
		return 0, false, err
	}
	id, err := h.readers.Create().IDMappingRepository().FindExternal(ctx, query.kind, query.localID)
	switch {
	case err == nil:
		return id, true, nil
	case errors.Is(err, errs.ErrObjectNotFound):
		return 0, false, nil
	default:
		return 0, false, err
	}
}
