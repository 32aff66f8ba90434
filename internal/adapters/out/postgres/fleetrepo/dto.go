// Package fleetrepo persists stores and driver teams.
package fleetrepo

import (
	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
)

// StoreDTO represents a pickup store row.
type StoreDTO struct {
	ID       string      `gorm:"type:varchar(64);primaryKey"`
	Name     string      `gorm:"type:varchar(255);not null"`
	Location LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	HubID    string      `gorm:"type:varchar(64);not null;index"`
}

// TableName overrides GORM's default "store_dtos".
func (StoreDTO) TableName() string {
	return "stores"
}

// LocationDTO represents the embedded store position.
type LocationDTO struct {
	Lat     float64 `gorm:"not null"`
	Lng     float64 `gorm:"not null"`
	Address string  `gorm:"type:varchar(512)"`
}

// TeamDTO represents a driver team row.
type TeamDTO struct {
	ID    string `gorm:"type:varchar(64);primaryKey"`
	Name  string `gorm:"type:varchar(255);not null"`
	HubID string `gorm:"type:varchar(64);not null;index"`
}

// TableName overrides GORM's default "team_dtos".
func (TeamDTO) TableName() string {
	return "teams"
}

func storeFromDomain(s fleet.Store) StoreDTO {
	return StoreDTO{
		ID:   s.ID,
		Name: s.Name,
		Location: LocationDTO{
			Lat:     s.Location.Lat(),
			Lng:     s.Location.Lng(),
			Address: s.Location.Address(),
		},
		HubID: s.HubID,
	}
}

func storeToDomain(dto StoreDTO) (fleet.Store, error) {
	loc, err := kernel.NewLocation(dto.Location.Lat, dto.Location.Lng, dto.Location.Address)
	if err != nil {
		return fleet.Store{}, err
	}
	return fleet.NewStore(dto.ID, dto.Name, loc, dto.HubID)
}

func teamFromDomain(t fleet.Team) TeamDTO {
	return TeamDTO{ID: t.ID, Name: t.Name, HubID: t.HubID}
}

func teamToDomain(dto TeamDTO) (fleet.Team, error) {
	return fleet.NewTeam(dto.ID, dto.Name, dto.HubID)
}
