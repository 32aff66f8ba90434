package ports

import (
	"context"

	"fleet/internal/core/domain/model/driver"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver. Returns errs.ErrAlreadyExists if the ID is taken.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	// Returns errs.ErrObjectNotFound if absent.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by ID. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id string) (*driver.Driver, error)

	// GetAll retrieves every driver ordered by ID.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}
