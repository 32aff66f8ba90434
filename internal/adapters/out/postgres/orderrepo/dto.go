// Package orderrepo persists order aggregates with GORM. An order is stored
// as one row in orders plus its append-only activity log in order_activity.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            string        `gorm:"type:varchar(64);primaryKey"`
	Title         string        `gorm:"type:varchar(255);not null"`
	Description   string        `gorm:"type:text"`
	CustomerName  string        `gorm:"type:varchar(255)"`
	CustomerPhone string        `gorm:"type:varchar(64)"`
	CustomerEmail string        `gorm:"type:varchar(255)"`
	PickupName    string        `gorm:"type:varchar(255)"`
	PickupPhone   string        `gorm:"type:varchar(64)"`
	Origin        LocationDTO   `gorm:"embedded;embeddedPrefix:origin_"`
	Destination   LocationDTO   `gorm:"embedded;embeddedPrefix:destination_"`
	Priority      string        `gorm:"type:varchar(16);not null"`
	OrderType     string        `gorm:"type:varchar(16);not null"`
	StoreID       string        `gorm:"type:varchar(64);not null;index"`
	TeamID        *string       `gorm:"type:varchar(64)"`
	Status        int           `gorm:"type:smallint;not null;index"`
	DriverID      *string       `gorm:"type:varchar(64);index"`
	VehicleID     *string       `gorm:"type:varchar(64)"`
	Items         Items         `gorm:"type:jsonb;not null"`
	Version       int64         `gorm:"not null"`
	CreatedAt     time.Time     `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime:false"`
	Activity      []ActivityDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO is an embedded coordinate pair with its address.
type LocationDTO struct {
	Lat     float64 `gorm:"not null"`
	Lng     float64 `gorm:"not null"`
	Address string  `gorm:"type:varchar(512)"`
}

// ActivityDTO is one activity log entry. Seq keeps the log order.
type ActivityDTO struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_order_activity_seq"`
	Seq       int       `gorm:"not null;uniqueIndex:idx_order_activity_seq"`
	Status    int       `gorm:"type:smallint;not null"`
	Timestamp time.Time `gorm:"not null"`
}

// TableName overrides GORM's default "activity_dtos".
func (ActivityDTO) TableName() string {
	return "order_activity"
}

// ItemDTO is one line item inside the items column.
type ItemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Items stores line items as a jsonb document.
type Items []ItemDTO

// Value implements driver.Valuer.
func (i Items) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]ItemDTO(i))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (i *Items) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*i = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("orderrepo: unsupported items column type")
	}
	return json.Unmarshal(raw, (*[]ItemDTO)(i))
}

func fromDomain(aggregate *order.Order) OrderDTO {
	state := aggregate.Snapshot()
	d := state.Details

	items := make(Items, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, ItemDTO{Name: it.Name, Quantity: it.Quantity})
	}

	activity := make([]ActivityDTO, 0, len(state.ActivityLog))
	for i, entry := range state.ActivityLog {
		activity = append(activity, ActivityDTO{
			OrderID:   state.ID,
			Seq:       i,
			Status:    int(entry.Status),
			Timestamp: entry.Timestamp.UTC(),
		})
	}

	return OrderDTO{
		ID:            state.ID,
		Title:         d.Title,
		Description:   d.Description,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		CustomerEmail: d.CustomerEmail,
		PickupName:    d.PickupName,
		PickupPhone:   d.PickupPhone,
		Origin:        locationFromDomain(d.Origin),
		Destination:   locationFromDomain(d.Destination),
		Priority:      string(d.Priority),
		OrderType:     string(d.Type),
		StoreID:       d.StoreID,
		TeamID:        d.TeamID,
		Status:        int(state.Status),
		DriverID:      state.DriverID,
		VehicleID:     state.VehicleID,
		Items:         items,
		Version:       state.Version,
		CreatedAt:     state.CreatedAt.UTC(),
		UpdatedAt:     state.UpdatedAt.UTC(),
		Activity:      activity,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	origin, err := kernel.NewLocation(dto.Origin.Lat, dto.Origin.Lng, dto.Origin.Address)
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewLocation(dto.Destination.Lat, dto.Destination.Lng, dto.Destination.Address)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		items = append(items, order.Item{Name: it.Name, Quantity: it.Quantity})
	}

	log := make([]order.ActivityEntry, 0, len(dto.Activity))
	for _, a := range dto.Activity {
		log = append(log, order.ActivityEntry{Status: order.Status(a.Status), Timestamp: a.Timestamp})
	}

	return order.RestoreOrder(order.State{
		ID: dto.ID,
		Details: order.Details{
			Title:         dto.Title,
			Description:   dto.Description,
			CustomerName:  dto.CustomerName,
			CustomerPhone: dto.CustomerPhone,
			CustomerEmail: dto.CustomerEmail,
			PickupName:    dto.PickupName,
			PickupPhone:   dto.PickupPhone,
			Origin:        origin,
			Destination:   destination,
			Priority:      order.Priority(dto.Priority),
			Type:          order.Type(dto.OrderType),
			StoreID:       dto.StoreID,
			TeamID:        dto.TeamID,
			Items:         items,
		},
		Status:      order.Status(dto.Status),
		DriverID:    dto.DriverID,
		VehicleID:   dto.VehicleID,
		ActivityLog: log,
		Version:     dto.Version,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}

func locationFromDomain(l kernel.Location) LocationDTO {
	return LocationDTO{Lat: l.Lat(), Lng: l.Lng(), Address: l.Address()}
}
