// Package queries contains read-only operations. Query handlers read through
// repositories without opening a transaction and return view structs that do
// not expose the aggregates.
package queries

import (
	"fleet/internal/core/ports"
)

type (
	// OrderReader exposes the repositories an order read needs.
	OrderReader interface {
		OrderRepository() ports.OrderRepository
		DriverRepository() ports.DriverRepository
		StoreRepository() ports.StoreRepository
		TeamRepository() ports.TeamRepository
		IDMappingRepository() ports.IDMappingRepository
	}

	// OrderReaderFactory creates readers. A ports.UnitOfWorkFactory satisfies it
	// through an adapter in the composition root.
	OrderReaderFactory interface {
		Create() OrderReader
	}

	// ZoneReader exposes the zone repository.
	ZoneReader interface {
		ZoneRepository() ports.ZoneRepository
	}

	// ZoneReaderFactory creates zone readers.
	ZoneReaderFactory interface {
		Create() ZoneReader
	}
)

// OrderReaderFactoryFunc adapts a function to OrderReaderFactory.
type OrderReaderFactoryFunc func() OrderReader

func (f OrderReaderFactoryFunc) Create() OrderReader { return f() }

// ZoneReaderFactoryFunc adapts a function to ZoneReaderFactory.
type ZoneReaderFactoryFunc func() ZoneReader

func (f ZoneReaderFactoryFunc) Create() ZoneReader { return f() }
