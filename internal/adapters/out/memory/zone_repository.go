package memory

import (
	"context"
	"sort"

	"fleet/internal/core/domain/model/zone"
	"fleet/internal/pkg/errs"
)

type zoneRepository struct {
	uow *UnitOfWork
}

func (r *zoneRepository) Add(ctx context.Context, z zone.Zone) error {
	if err := z.Polygon.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func() (func(), error) {
		zones := r.uow.store.zones
		if _, ok := zones[z.ID]; ok {
			return nil, errs.NewAlreadyExistsError("zone", z.ID)
		}
		undo := restoreKey(zones, z.ID)
		zones[z.ID] = z
		return undo, nil
	})
}

func (r *zoneRepository) GetAllByKind(ctx context.Context, kind zone.Kind) ([]zone.Zone, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	var all []zone.Zone
	err := r.uow.read(ctx, func() error {
		all = make([]zone.Zone, 0)
		for _, z := range r.uow.store.zones {
			if z.Kind == kind {
				all = append(all, z)
			}
		}
		return nil
	})
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, err
}
