// Package idmaprepo persists the bidirectional table between local string IDs
// and Tookan's integer job and fleet IDs.
package idmaprepo

import (
	"context"
	"errors"
	"fmt"

	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxAllocateAttempts = 5

// MappingDTO is one mapping row. Both (kind, local_id) and
// (kind, external_id) are unique. A row without an external ID is a
// reservation.
type MappingDTO struct {
	Kind       string `gorm:"type:varchar(16);primaryKey;uniqueIndex:idx_id_mappings_external,priority:1"`
	LocalID    string `gorm:"type:varchar(64);primaryKey"`
	ExternalID *int64 `gorm:"uniqueIndex:idx_id_mappings_external,priority:2"`
}

// TableName overrides GORM's default "mapping_dtos".
func (MappingDTO) TableName() string {
	return "id_mappings"
}

// GormIDMappingRepository implements IDMappingRepository using GORM.
type GormIDMappingRepository struct {
	db *gorm.DB
}

// NewGormIDMappingRepository creates a new GORM ID mapping repository.
func NewGormIDMappingRepository(db *gorm.DB) *GormIDMappingRepository {
	return &GormIDMappingRepository{db: db}
}

// Ensure returns the bound external ID or allocates max+1 of the kind.
// Inserts use ON CONFLICT DO NOTHING so a lost race never aborts the
// surrounding transaction; the allocation is retried instead.
func (r *GormIDMappingRepository) Ensure(ctx context.Context, kind ports.MappingKind, localID string) (int64, error) {
	db := r.db.WithContext(ctx)

	for range maxAllocateAttempts {
		row, err := r.find(ctx, kind, localID)
		if err != nil {
			return 0, err
		}
		if row != nil {
			if row.ExternalID == nil {
				return 0, errs.NewAlreadyExistsError(string(kind)+" reservation", localID)
			}
			return *row.ExternalID, nil
		}

		var next int64
		if err = db.Model(&MappingDTO{}).
			Select("COALESCE(MAX(external_id), 0) + 1").
			Where("kind = ?", string(kind)).
			Scan(&next).Error; err != nil {
			return 0, err
		}

		inserted, err := r.insert(ctx, kind, localID, &next)
		if err != nil {
			return 0, err
		}
		if inserted {
			return next, nil
		}
	}
	return 0, fmt.Errorf("allocate %s id for %q: gave up after %d attempts", kind, localID, maxAllocateAttempts)
}

// Bind records an externally assigned ID, filling in a reservation when one
// is held. Binding the same pair again is a no-op.
func (r *GormIDMappingRepository) Bind(ctx context.Context, kind ports.MappingKind, localID string, externalID int64) error {
	// settled reports whether localID already carries externalID, and fails
	// when it carries another one.
	settled := func() (*MappingDTO, bool, error) {
		row, err := r.find(ctx, kind, localID)
		switch {
		case err != nil:
			return nil, false, err
		case row == nil || row.ExternalID == nil:
			return row, false, nil
		case *row.ExternalID == externalID:
			return row, true, nil
		default:
			return row, false, errs.NewAlreadyExistsError(string(kind)+" mapping", localID)
		}
	}

	row, done, err := settled()
	if done || err != nil {
		return err
	}
	if _, err = r.FindLocal(ctx, kind, externalID); err == nil {
		return errs.NewAlreadyExistsError(string(kind)+" mapping", externalID)
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if row != nil {
		return r.complete(ctx, kind, localID, externalID)
	}

	inserted, err := r.insert(ctx, kind, localID, &externalID)
	if err != nil || inserted {
		return err
	}

	// A concurrent Bind of the same pair wins the insert; anything else means
	// the local ID was taken meanwhile.
	row, done, err = settled()
	if done || err != nil {
		return err
	}
	if row != nil {
		return r.complete(ctx, kind, localID, externalID)
	}
	return errs.NewAlreadyExistsError(string(kind)+" mapping", externalID)
}

// Reserve inserts a row without an external ID.
func (r *GormIDMappingRepository) Reserve(ctx context.Context, kind ports.MappingKind, localID string) error {
	inserted, err := r.insert(ctx, kind, localID, nil)
	if err != nil {
		return err
	}
	if !inserted {
		return errs.NewAlreadyExistsError(string(kind)+" reservation", localID)
	}
	return nil
}

// Release deletes the reservation of localID. Bound rows are kept.
func (r *GormIDMappingRepository) Release(ctx context.Context, kind ports.MappingKind, localID string) error {
	return r.db.WithContext(ctx).
		Where("kind = ? AND local_id = ? AND external_id IS NULL", string(kind), localID).
		Delete(&MappingDTO{}).Error
}

// FindExternal returns the external ID of localID. Reservations are not found.
func (r *GormIDMappingRepository) FindExternal(ctx context.Context, kind ports.MappingKind, localID string) (int64, error) {
	row, err := r.find(ctx, kind, localID)
	if err != nil {
		return 0, err
	}
	if row == nil || row.ExternalID == nil {
		return 0, errs.NewObjectNotFoundError(string(kind), localID)
	}
	return *row.ExternalID, nil
}

// FindLocal returns the local ID of externalID.
func (r *GormIDMappingRepository) FindLocal(ctx context.Context, kind ports.MappingKind, externalID int64) (string, error) {
	var dto MappingDTO
	err := r.db.WithContext(ctx).Take(&dto, "kind = ? AND external_id = ?", string(kind), externalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errs.NewObjectNotFoundError(string(kind), fmt.Sprintf("external %d", externalID))
	}
	if err != nil {
		return "", err
	}
	return dto.LocalID, nil
}

// find returns the row of localID, or nil when there is none.
func (r *GormIDMappingRepository) find(ctx context.Context, kind ports.MappingKind, localID string) (*MappingDTO, error) {
	var dto MappingDTO
	err := r.db.WithContext(ctx).Take(&dto, "kind = ? AND local_id = ?", string(kind), localID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// complete sets the external ID of a reservation.
func (r *GormIDMappingRepository) complete(ctx context.Context, kind ports.MappingKind, localID string, externalID int64) error {
	result := r.db.WithContext(ctx).Model(&MappingDTO{}).
		Where("kind = ? AND local_id = ? AND external_id IS NULL", string(kind), localID).
		Update("external_id", externalID)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return errs.NewAlreadyExistsError(string(kind)+" mapping", externalID)
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewAlreadyExistsError(string(kind)+" mapping", localID)
	}
	return nil
}

func (r *GormIDMappingRepository) insert(ctx context.Context, kind ports.MappingKind, localID string, externalID *int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&MappingDTO{Kind: string(kind), LocalID: localID, ExternalID: externalID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
