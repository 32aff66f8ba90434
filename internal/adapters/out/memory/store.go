// Package memory is the in-process storage backend. It keeps aggregate
// snapshots in maps behind one RWMutex and offers the same repository
// contracts as the postgres backend, including version checks and
// transactional rollback.
//
// A UnitOfWork holds the write lock from Begin until Commit or Rollback, so
// transactions are serialized. Repositories used outside a transaction lock
// per call.
package memory

import (
	"context"
	"errors"
	"sync"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoTransaction = errors.New("memory: no active transaction")

// Store is the shared state of the memory backend.
type Store struct {
	mu       sync.RWMutex
	orders   map[string]order.State
	drivers  map[string]driver.State
	stores   map[string]fleet.Store
	teams    map[string]fleet.Team
	zones    map[string]zone.Zone
	mappings map[ports.MappingKind]*mappingTable
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders:   make(map[string]order.State),
		drivers:  make(map[string]driver.State),
		stores:   make(map[string]fleet.Store),
		teams:    make(map[string]fleet.Team),
		zones:    make(map[string]zone.Zone),
		mappings: make(map[ports.MappingKind]*mappingTable),
	}
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork records an undo log while a transaction is open.
type UnitOfWork struct {
	store *Store
	inTx  bool
	undo  []func()
}

// Begin takes the store's write lock. A second Begin is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.inTx {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	u.store.mu.Lock()
	u.inTx = true
	return nil
}

// Commit keeps the changes and releases the lock.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.inTx {
		return ErrNoTransaction
	}
	u.undo = nil
	u.inTx = false
	u.store.mu.Unlock()
	return nil
}

// Rollback reverts the changes in reverse order and releases the lock.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.inTx {
		return ErrNoTransaction
	}
	for i := len(u.undo) - 1; i >= 0; i-- {
		u.undo[i]()
	}
	u.undo = nil
	u.inTx = false
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository         { return &orderRepository{uow: u} }
func (u *UnitOfWork) DriverRepository() ports.DriverRepository       { return &driverRepository{uow: u} }
func (u *UnitOfWork) StoreRepository() ports.StoreRepository         { return &storeRepository{uow: u} }
func (u *UnitOfWork) TeamRepository() ports.TeamRepository           { return &teamRepository{uow: u} }
func (u *UnitOfWork) ZoneRepository() ports.ZoneRepository           { return &zoneRepository{uow: u} }
func (u *UnitOfWork) IDMappingRepository() ports.IDMappingRepository { return &idMappingRepository{uow: u} }

func (u *UnitOfWork) read(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.inTx {
		return fn()
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	return fn()
}

// write runs fn under the lock. Inside a transaction the returned undo func is
// kept for Rollback.
func (u *UnitOfWork) write(ctx context.Context, fn func() (undo func(), err error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.inTx {
		undo, err := fn()
		if err == nil && undo != nil {
			u.undo = append(u.undo, undo)
		}
		return err
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	_, err := fn()
	return err
}

// restoreKey returns an undo func that puts back the previous value of key,
// or deletes it if there was none.
func restoreKey[K comparable, V any](m map[K]V, key K) func() {
	prev, existed := m[key]
	return func() {
		if existed {
			m[key] = prev
		} else {
			delete(m, key)
		}
	}
}
