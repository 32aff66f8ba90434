package memory

import (
	"context"

	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func() (func(), error) {
		orders := r.uow.store.orders
		if _, ok := orders[aggregate.ID()]; ok {
			return nil, errs.NewAlreadyExistsError("order", aggregate.ID())
		}
		undo := restoreKey(orders, aggregate.ID())
		aggregate.BumpVersion()
		orders[aggregate.ID()] = aggregate.Snapshot()
		return undo, nil
	})
}

func (r *orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func() (func(), error) {
		orders := r.uow.store.orders
		current, ok := orders[aggregate.ID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order", aggregate.ID())
		}
		if current.Version != aggregate.Version() {
			return nil, errs.NewVersionConflictError("order", aggregate.ID(), aggregate.Version(), current.Version)
		}
		undo := restoreKey(orders, aggregate.ID())
		aggregate.BumpVersion()
		orders[aggregate.ID()] = aggregate.Snapshot()
		return undo, nil
	})
}

func (r *orderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	var o *order.Order
	err := r.uow.read(ctx, func() error {
		state, ok := r.uow.store.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id)
		}
		var restoreErr error
		o, restoreErr = order.RestoreOrder(state)
		return restoreErr
	})
	return o, err
}
