package fleetrepo

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GORM store repository.
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// Add saves a new store.
func (r *GormStoreRepository) Add(ctx context.Context, store fleet.Store) error {
	dto := storeFromDomain(store)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("store", store.ID)
		}
		return err
	}
	return nil
}

// Get retrieves a store by ID.
func (r *GormStoreRepository) Get(ctx context.Context, id string) (fleet.Store, error) {
	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fleet.Store{}, errs.NewObjectNotFoundError("store", id)
		}
		return fleet.Store{}, err
	}
	return storeToDomain(dto)
}

// FindNearest orders stores by squared planar distance in SQL. Ties go to the
// smallest ID.
func (r *GormStoreRepository) FindNearest(ctx context.Context, point kernel.Point) (fleet.Store, error) {
	var dto StoreDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "(location_lat - ?) * (location_lat - ?) + (location_lng - ?) * (location_lng - ?), id",
			Vars:               []any{point.Lat, point.Lat, point.Lng, point.Lng},
			WithoutParentheses: true,
		}}).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fleet.Store{}, errs.NewObjectNotFoundError("store", "nearest to "+point.String())
		}
		return fleet.Store{}, err
	}
	return storeToDomain(dto)
}

// GormTeamRepository implements TeamRepository using GORM.
type GormTeamRepository struct {
	db *gorm.DB
}

// NewGormTeamRepository creates a new GORM team repository.
func NewGormTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{db: db}
}

// Add saves a new team.
func (r *GormTeamRepository) Add(ctx context.Context, team fleet.Team) error {
	dto := teamFromDomain(team)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("team", team.ID)
		}
		return err
	}
	return nil
}

// Get retrieves a team by ID.
func (r *GormTeamRepository) Get(ctx context.Context, id string) (fleet.Team, error) {
	var dto TeamDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fleet.Team{}, errs.NewObjectNotFoundError("team", id)
		}
		return fleet.Team{}, err
	}
	return teamToDomain(dto)
}

// GetAll retrieves every team ordered by ID.
func (r *GormTeamRepository) GetAll(ctx context.Context) ([]fleet.Team, error) {
	var dtos []TeamDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	teams := make([]fleet.Team, 0, len(dtos))
	for _, dto := range dtos {
		t, err := teamToDomain(dto)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, nil
}
