package zonerepo

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/zone"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db *gorm.DB
}

// NewGormZoneRepository creates a new GORM zone repository.
func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// Add saves a new zone.
func (r *GormZoneRepository) Add(ctx context.Context, z zone.Zone) error {
	if err := errors.Join(z.Kind.Validate(), z.Polygon.Validate()); err != nil {
		return err
	}

	dto := fromDomain(z)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("zone", z.ID)
		}
		return err
	}
	return nil
}

// GetAllByKind returns every zone of the kind ordered by ID.
func (r *GormZoneRepository) GetAllByKind(ctx context.Context, kind zone.Kind) ([]zone.Zone, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Where("kind = ?", string(kind)).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]zone.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}
