package memory

import (
	"context"
	"sort"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/pkg/errs"
)

type driverRepository struct {
	uow *UnitOfWork
}

func (r *driverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func() (func(), error) {
		drivers := r.uow.store.drivers
		if _, ok := drivers[aggregate.ID()]; ok {
			return nil, errs.NewAlreadyExistsError("driver", aggregate.ID())
		}
		undo := restoreKey(drivers, aggregate.ID())
		drivers[aggregate.ID()] = aggregate.Snapshot()
		return undo, nil
	})
}

func (r *driverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func() (func(), error) {
		drivers := r.uow.store.drivers
		if _, ok := drivers[aggregate.ID()]; !ok {
			return nil, errs.NewObjectNotFoundError("driver", aggregate.ID())
		}
		undo := restoreKey(drivers, aggregate.ID())
		drivers[aggregate.ID()] = aggregate.Snapshot()
		return undo, nil
	})
}

func (r *driverRepository) Get(ctx context.Context, id string) (*driver.Driver, error) {
	var d *driver.Driver
	err := r.uow.read(ctx, func() error {
		state, ok := r.uow.store.drivers[id]
		if !ok {
			return errs.NewObjectNotFoundError("driver", id)
		}
		var restoreErr error
		d, restoreErr = driver.RestoreDriver(state)
		return restoreErr
	})
	return d, err
}

func (r *driverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var all []*driver.Driver
	err := r.uow.read(ctx, func() error {
		all = make([]*driver.Driver, 0, len(r.uow.store.drivers))
		for _, state := range r.uow.store.drivers {
			d, restoreErr := driver.RestoreDriver(state)
			if restoreErr != nil {
				return restoreErr
			}
			all = append(all, d)
		}
		return nil
	})
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return all, err
}
