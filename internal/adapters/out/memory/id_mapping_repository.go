package memory

import (
	"context"
	"fmt"

	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

type mappingTable struct {
	byLocal    map[string]int64
	byExternal map[int64]string
	reserved   map[string]struct{}
	maxID      int64
}

func (s *Store) table(kind ports.MappingKind) *mappingTable {
	t, ok := s.mappings[kind]
	if !ok {
		t = &mappingTable{
			byLocal:    make(map[string]int64),
			byExternal: make(map[int64]string),
			reserved:   make(map[string]struct{}),
		}
		s.mappings[kind] = t
	}
	return t
}

type idMappingRepository struct {
	uow *UnitOfWork
}

func (r *idMappingRepository) Ensure(ctx context.Context, kind ports.MappingKind, localID string) (int64, error) {
	var id int64
	err := r.uow.write(ctx, func() (func(), error) {
		t := r.uow.store.table(kind)
		if existing, ok := t.byLocal[localID]; ok {
			id = existing
			return nil, nil
		}
		if _, ok := t.reserved[localID]; ok {
			return nil, errs.NewAlreadyExistsError(string(kind)+" reservation", localID)
		}
		id = t.maxID + 1
		return t.bind(localID, id), nil
	})
	return id, err
}

func (r *idMappingRepository) Bind(ctx context.Context, kind ports.MappingKind, localID string, externalID int64) error {
	return r.uow.write(ctx, func() (func(), error) {
		t := r.uow.store.table(kind)
		if existing, ok := t.byLocal[localID]; ok {
			if existing == externalID {
				return nil, nil
			}
			return nil, errs.NewAlreadyExistsError(string(kind)+" mapping", localID)
		}
		if _, ok := t.byExternal[externalID]; ok {
			return nil, errs.NewAlreadyExistsError(string(kind)+" mapping", externalID)
		}
		if _, ok := t.reserved[localID]; ok {
			delete(t.reserved, localID)
			undoBind := t.bind(localID, externalID)
			return func() {
				undoBind()
				t.reserved[localID] = struct{}{}
			}, nil
		}
		return t.bind(localID, externalID), nil
	})
}

func (r *idMappingRepository) Reserve(ctx context.Context, kind ports.MappingKind, localID string) error {
	return r.uow.write(ctx, func() (func(), error) {
		t := r.uow.store.table(kind)
		if _, ok := t.byLocal[localID]; ok {
			return nil, errs.NewAlreadyExistsError(string(kind)+" mapping", localID)
		}
		if _, ok := t.reserved[localID]; ok {
			return nil, errs.NewAlreadyExistsError(string(kind)+" reservation", localID)
		}
		t.reserved[localID] = struct{}{}
		return func() { delete(t.reserved, localID) }, nil
	})
}

func (r *idMappingRepository) Release(ctx context.Context, kind ports.MappingKind, localID string) error {
	return r.uow.write(ctx, func() (func(), error) {
		t := r.uow.store.table(kind)
		if _, ok := t.reserved[localID]; !ok {
			return nil, nil
		}
		delete(t.reserved, localID)
		return func() { t.reserved[localID] = struct{}{} }, nil
	})
}

func (r *idMappingRepository) FindExternal(ctx context.Context, kind ports.MappingKind, localID string) (int64, error) {
	var id int64
	err := r.uow.read(ctx, func() error {
		t, ok := r.uow.store.mappings[kind]
		if ok {
			id, ok = t.byLocal[localID]
		}
		if !ok {
			return errs.NewObjectNotFoundError(string(kind), localID)
		}
		return nil
	})
	return id, err
}

func (r *idMappingRepository) FindLocal(ctx context.Context, kind ports.MappingKind, externalID int64) (string, error) {
	var id string
	err := r.uow.read(ctx, func() error {
		t, ok := r.uow.store.mappings[kind]
		if ok {
			id, ok = t.byExternal[externalID]
		}
		if !ok {
			return errs.NewObjectNotFoundError(string(kind), fmt.Sprintf("external %d", externalID))
		}
		return nil
	})
	return id, err
}

func (t *mappingTable) bind(localID string, externalID int64) func() {
	prevMax := t.maxID
	t.byLocal[localID] = externalID
	t.byExternal[externalID] = localID
	if externalID > t.maxID {
		t.maxID = externalID
	}
	return func() {
		delete(t.byLocal, localID)
		delete(t.byExternal, externalID)
		t.maxID = prevMax
	}
}
