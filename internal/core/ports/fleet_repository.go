package ports

import (
	"context"

	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
)

// StoreLookup resolves the store closest to a point.
type StoreLookup interface {
	// FindNearest returns the store with the smallest squared planar distance
	// to point. Returns errs.ErrObjectNotFound when no store exists.
	FindNearest(ctx context.Context, point kernel.Point) (fleet.Store, error)
}

// StoreRepository reads stores.
type StoreRepository interface {
	StoreLookup

	// Get retrieves a store by ID. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id string) (fleet.Store, error)

	// Add persists a new store.
	Add(ctx context.Context, store fleet.Store) error
}

// TeamRepository reads driver teams.
type TeamRepository interface {
	// Get retrieves a team by ID. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id string) (fleet.Team, error)

	// GetAll retrieves every team ordered by ID.
	GetAll(ctx context.Context) ([]fleet.Team, error)

	// Add persists a new team.
	Add(ctx context.Context, team fleet.Team) error
}
