package memory

import (
	"context"
	"sort"

	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/services"
	"fleet/internal/pkg/errs"
)

type storeRepository struct {
	uow *UnitOfWork
}

func (r *storeRepository) Add(ctx context.Context, store fleet.Store) error {
	return r.uow.write(ctx, func() (func(), error) {
		stores := r.uow.store.stores
		if _, ok := stores[store.ID]; ok {
			return nil, errs.NewAlreadyExistsError("store", store.ID)
		}
		undo := restoreKey(stores, store.ID)
		stores[store.ID] = store
		return undo, nil
	})
}

func (r *storeRepository) Get(ctx context.Context, id string) (fleet.Store, error) {
	var s fleet.Store
	err := r.uow.read(ctx, func() error {
		found, ok := r.uow.store.stores[id]
		if !ok {
			return errs.NewObjectNotFoundError("store", id)
		}
		s = found
		return nil
	})
	return s, err
}

func (r *storeRepository) FindNearest(ctx context.Context, point kernel.Point) (fleet.Store, error) {
	var nearest fleet.Store
	err := r.uow.read(ctx, func() error {
		all := make([]fleet.Store, 0, len(r.uow.store.stores))
		for _, s := range r.uow.store.stores {
			all = append(all, s)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

		s, ok := services.NearestStore(point, all)
		if !ok {
			return errs.NewObjectNotFoundError("store", "nearest to "+point.String())
		}
		nearest = s
		return nil
	})
	return nearest, err
}

type teamRepository struct {
	uow *UnitOfWork
}

func (r *teamRepository) Add(ctx context.Context, team fleet.Team) error {
	return r.uow.write(ctx, func() (func(), error) {
		teams := r.uow.store.teams
		if _, ok := teams[team.ID]; ok {
			return nil, errs.NewAlreadyExistsError("team", team.ID)
		}
		undo := restoreKey(teams, team.ID)
		teams[team.ID] = team
		return undo, nil
	})
}

func (r *teamRepository) Get(ctx context.Context, id string) (fleet.Team, error) {
	var t fleet.Team
	err := r.uow.read(ctx, func() error {
		found, ok := r.uow.store.teams[id]
		if !ok {
			return errs.NewObjectNotFoundError("team", id)
		}
		t = found
		return nil
	})
	return t, err
}

func (r *teamRepository) GetAll(ctx context.Context) ([]fleet.Team, error) {
	var all []fleet.Team
	err := r.uow.read(ctx, func() error {
		all = make([]fleet.Team, 0, len(r.uow.store.teams))
		for _, t := range r.uow.store.teams {
			all = append(all, t)
		}
		return nil
	})
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, err
}
