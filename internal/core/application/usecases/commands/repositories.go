// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and alert emission after a successful commit.
package commands

import (
	"context"

	"fleet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// FleetRepoFactory provides access to stores and teams within a transaction.
	FleetRepoFactory interface {
		StoreRepository() ports.StoreRepository
		TeamRepository() ports.TeamRepository
	}

	// ZoneRepoFactory provides access to zones within a transaction.
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// IDMappingRepoFactory provides access to the external ID table within a transaction.
	IDMappingRepoFactory interface {
		IDMappingRepository() ports.IDMappingRepository
	}

	// OrderUoW manages transactions for order lifecycle operations.
	// Orders are validated against drivers, stores and teams in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, "ORD001")
	//   // ... mutate
	//   err = uow.OrderRepository().Update(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		FleetRepoFactory
		IDMappingRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW manages transactions for driver operations, including the
	// zone lookups of the location update path.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
		ZoneRepoFactory
		IDMappingRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// FleetUoW manages transactions for the reference data orders and drivers
	// are checked against: stores, teams and zones.
	FleetUoW interface {
		TxManager
		FleetRepoFactory
		ZoneRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}
)

// OrderUoWFactoryFunc adapts a function to OrderUoWFactory.
type OrderUoWFactoryFunc func() OrderUoW

func (f OrderUoWFactoryFunc) Create() OrderUoW { return f() }

// DriverUoWFactoryFunc adapts a function to DriverUoWFactory.
type DriverUoWFactoryFunc func() DriverUoW

func (f DriverUoWFactoryFunc) Create() DriverUoW { return f() }

// FleetUoWFactoryFunc adapts a function to FleetUoWFactory.
type FleetUoWFactoryFunc func() FleetUoW

func (f FleetUoWFactoryFunc) Create() FleetUoW { return f() }
