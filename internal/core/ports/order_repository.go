// Package ports defines the persistence and collaboration contracts of the
// dispatch core. Each entity has exactly one repository interface; the concrete
// backend (postgres or memory) is chosen once at process start.
package ports

import (
	"context"

	"fleet/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order at version 1 and bumps the aggregate to match.
	// Returns errs.ErrAlreadyExists if the ID is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, guarded by the version the
	// aggregate was loaded at. On success the aggregate's version is bumped.
	// Returns errs.ErrObjectNotFound if the order does not exist and
	// errs.ErrVersionConflict if it was modified in between.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its full activity log.
	// Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id string) (*order.Order, error)
}
