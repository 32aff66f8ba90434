package queries

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrFindNearestStoreQueryIsNotConstructed = errors.New(
	"FindNearestStoreQuery must be created via NewFindNearestStoreQuery constructor",
)

// FindNearestStoreQuery resolves the store closest to a point. Distance is
// the squared planar distance in degrees.
type FindNearestStoreQuery struct {
	point kernel.Point

	guard guard.ConstructorGuard
}

// NewFindNearestStoreQuery validates the coordinates.
func NewFindNearestStoreQuery(lat, lng float64) (FindNearestStoreQuery, error) {
	loc, err := kernel.NewLocation(lat, lng, "")
	if err != nil {
		return FindNearestStoreQuery{}, err
	}
	return FindNearestStoreQuery{point: loc.Point(), guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindNearestStoreQuery) Validate() error {
	return q.guard.Validate(ErrFindNearestStoreQueryIsNotConstructed)
}

func (q FindNearestStoreQuery) Point() kernel.Point { return q.point }

// StoreView is the read model of a store.
type StoreView struct {
	ID       string
	Name     string
	HubID    string
	Location LocationView
}

// FindNearestStoreQueryHandler delegates to the store lookup.
type FindNearestStoreQueryHandler struct {
	readers OrderReaderFactory
}

// NewFindNearestStoreQueryHandler creates a handler for nearest store lookups.
func NewFindNearestStoreQueryHandler(readers OrderReaderFactory) FindNearestStoreQueryHandler {
	return FindNearestStoreQueryHandler{readers: readers}
}

// Handle returns errs.ErrObjectNotFound when no store exists.
func (h FindNearestStoreQueryHandler) Handle(ctx context.Context, query FindNearestStoreQuery) (StoreView, error) {
	if err := query.Validate(); err != nil {
		return StoreView{}, err
	}
	s, err := h.readers.Create().StoreRepository().FindNearest(ctx, query.Point())
	if err != nil {
		return StoreView{}, err
	}
	return StoreView{ID: s.ID, Name: s.Name, HubID: s.HubID, Location: newLocationView(s.Location)}, nil
}
