// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence.
package driverrepo

import (
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The last known position is nullable; HasLocation tells a stored (0, 0) apart
// from no position at all.
type DriverDTO struct {
	ID                 string      `gorm:"type:varchar(64);primaryKey"`
	Name               string      `gorm:"type:varchar(255);not null"`
	Phone              string      `gorm:"type:varchar(64)"`
	Email              string      `gorm:"type:varchar(255)"`
	License            string      `gorm:"type:varchar(64)"`
	VehicleType        string      `gorm:"type:varchar(32);not null"`
	VehicleDescription string      `gorm:"type:varchar(255)"`
	TeamID             *string     `gorm:"type:varchar(64);index"`
	VehicleID          *string     `gorm:"type:varchar(64)"`
	Status             string      `gorm:"type:varchar(16);not null"`
	HasLocation        bool        `gorm:"not null;default:false"`
	Location           LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	LocationUpdatedAt  *time.Time
	Points             int `gorm:"not null;default:0"`
	Rank               int `gorm:"not null;default:0"`
}

// TableName overrides GORM's default "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

// LocationDTO represents the embedded position of the driver.
type LocationDTO struct {
	Lat     float64
	Lng     float64
	Address string `gorm:"type:varchar(512)"`
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	state := aggregate.Snapshot()
	p := state.Profile

	dto := DriverDTO{
		ID:                 state.ID,
		Name:               p.Name,
		Phone:              p.Phone,
		Email:              p.Email,
		License:            p.License,
		VehicleType:        string(p.VehicleType),
		VehicleDescription: p.VehicleDescription,
		TeamID:             p.TeamID,
		VehicleID:          p.VehicleID,
		Status:             string(state.Status),
		Points:             state.Points,
		Rank:               state.Rank,
	}
	if state.Location != nil {
		at := state.LocationUpdatedAt.UTC()
		dto.HasLocation = true
		dto.Location = LocationDTO{
			Lat:     state.Location.Lat(),
			Lng:     state.Location.Lng(),
			Address: state.Location.Address(),
		}
		dto.LocationUpdatedAt = &at
	}
	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	state := driver.State{
		ID: dto.ID,
		Profile: driver.Profile{
			Name:               dto.Name,
			Phone:              dto.Phone,
			Email:              dto.Email,
			License:            dto.License,
			VehicleType:        driver.VehicleType(dto.VehicleType),
			VehicleDescription: dto.VehicleDescription,
			TeamID:             dto.TeamID,
			VehicleID:          dto.VehicleID,
		},
		Status: driver.Status(dto.Status),
		Points: dto.Points,
		Rank:   dto.Rank,
	}

	if dto.HasLocation {
		loc, err := kernel.NewLocation(dto.Location.Lat, dto.Location.Lng, dto.Location.Address)
		if err != nil {
			return nil, err
		}
		state.Location = &loc
		if dto.LocationUpdatedAt != nil {
			state.LocationUpdatedAt = *dto.LocationUpdatedAt
		}
	}

	return driver.RestoreDriver(state)
}
