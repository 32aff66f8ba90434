// Package zonerepo persists geofences and exclusion zones. Polygon vertices
// are kept in a jsonb column in ring order.
package zonerepo

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/zone"
)

// ZoneDTO represents a zone row.
type ZoneDTO struct {
	ID            string   `gorm:"type:varchar(64);primaryKey"`
	Name          string   `gorm:"type:varchar(255);not null"`
	Kind          string   `gorm:"type:varchar(16);not null;index"`
	Color         string   `gorm:"type:varchar(32)"`
	ExclusionType string   `gorm:"type:varchar(16)"`
	HubID         *string  `gorm:"type:varchar(64)"`
	Vertices      Vertices `gorm:"type:jsonb;not null"`
}

// TableName overrides GORM's default "zone_dtos".
func (ZoneDTO) TableName() string {
	return "zones"
}

// VertexDTO is one polygon vertex.
type VertexDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Vertices stores the polygon ring as a jsonb array.
type Vertices []VertexDTO

// Value implements driver.Valuer.
func (v Vertices) Value() (driver.Value, error) {
	b, err := json.Marshal([]VertexDTO(v))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (v *Vertices) Scan(src any) error {
	switch raw := src.(type) {
	case []byte:
		return json.Unmarshal(raw, (*[]VertexDTO)(v))
	case string:
		return json.Unmarshal([]byte(raw), (*[]VertexDTO)(v))
	case nil:
		return errors.New("zonerepo: vertices column is null")
	default:
		return fmt.Errorf("zonerepo: unsupported vertices column type %T", src)
	}
}

func fromDomain(z zone.Zone) ZoneDTO {
	points := z.Polygon.Vertices()
	vertices := make(Vertices, 0, len(points))
	for _, p := range points {
		vertices = append(vertices, VertexDTO{Lat: p.Lat, Lng: p.Lng})
	}
	return ZoneDTO{
		ID:            z.ID,
		Name:          z.Name,
		Kind:          string(z.Kind),
		Color:         z.Color,
		ExclusionType: string(z.ExclusionType),
		HubID:         z.HubID,
		Vertices:      vertices,
	}
}

func toDomain(dto ZoneDTO) (zone.Zone, error) {
	points := make([]kernel.Point, 0, len(dto.Vertices))
	for _, v := range dto.Vertices {
		points = append(points, kernel.Point{Lat: v.Lat, Lng: v.Lng})
	}
	polygon, err := zone.NewPolygon(points)
	if err != nil {
		return zone.Zone{}, err
	}

	switch zone.Kind(dto.Kind) {
	case zone.KindGeofence:
		return zone.NewGeofence(dto.ID, dto.Name, polygon, dto.Color, dto.HubID)
	case zone.KindExclusion:
		return zone.NewExclusionZone(dto.ID, dto.Name, polygon, zone.ExclusionType(dto.ExclusionType))
	default:
		return zone.Zone{}, zone.Kind(dto.Kind).Validate()
	}
}
