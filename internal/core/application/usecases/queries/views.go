package queries

import (
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/zone"
)

// LocationView is a read-only location.
type LocationView struct {
	Lat     float64
	Lng     float64
	Address string
}

// ItemView is a read-only order line.
type ItemView struct {
	Name     string
	Quantity int
}

// ActivityView is one activity log entry.
type ActivityView struct {
	Status    order.Status
	Timestamp time.Time
}

// OrderView is the full read model of an order.
type OrderView struct {
	ID            string
	Title         string
	Description   string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	PickupName    string
	PickupPhone   string
	Origin        LocationView
	Destination   LocationView
	Status        order.Status
	Priority      order.Priority
	OrderType     order.Type
	DriverID      *string
	VehicleID     *string
	TeamID        *string
	StoreID       string
	Items         []ItemView
	ActivityLog   []ActivityView
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DriverView is the read model of a driver.
type DriverView struct {
	ID                 string
	Name               string
	Phone              string
	Email              string
	License            string
	Status             driver.Status
	VehicleType        driver.VehicleType
	VehicleDescription string
	VehicleID          *string
	TeamID             *string
	Location           *LocationView
}

// ZoneView is the read model of a geofence or exclusion zone.
type ZoneView struct {
	ID            string
	Name          string
	Kind          zone.Kind
	Color         string
	ExclusionType zone.ExclusionType
	HubID         *string
	Vertices      []LocationView
}

func newLocationView(l kernel.Location) LocationView {
	return LocationView{Lat: l.Lat(), Lng: l.Lng(), Address: l.Address()}
}

// NewOrderView builds the read model of o.
func NewOrderView(o *order.Order) OrderView {
	s := o.Snapshot()
	d := s.Details

	items := make([]ItemView, len(d.Items))
	for i, it := range d.Items {
		items[i] = ItemView{Name: it.Name, Quantity: it.Quantity}
	}
	activity := make([]ActivityView, len(s.ActivityLog))
	for i, e := range s.ActivityLog {
		activity[i] = ActivityView{Status: e.Status, Timestamp: e.Timestamp}
	}

	return OrderView{
		ID:            s.ID,
		Title:         d.Title,
		Description:   d.Description,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		CustomerEmail: d.CustomerEmail,
		PickupName:    d.PickupName,
		PickupPhone:   d.PickupPhone,
		Origin:        newLocationView(d.Origin),
		Destination:   newLocationView(d.Destination),
		Status:        s.Status,
		Priority:      d.Priority,
		OrderType:     d.Type,
		DriverID:      s.DriverID,
		VehicleID:     s.VehicleID,
		TeamID:        d.TeamID,
		StoreID:       d.StoreID,
		Items:         items,
		ActivityLog:   activity,
		Version:       s.Version,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// NewDriverView builds the read model of d.
func NewDriverView(d *driver.Driver) DriverView {
	p := d.Profile()
	v := DriverView{
		ID:                 d.ID(),
		Name:               p.Name,
		Phone:              p.Phone,
		Email:              p.Email,
		License:            p.License,
		Status:             d.Status(),
		VehicleType:        p.VehicleType,
		VehicleDescription: p.VehicleDescription,
		VehicleID:          p.VehicleID,
		TeamID:             p.TeamID,
	}
	if loc, ok := d.Location(); ok {
		lv := newLocationView(loc)
		v.Location = &lv
	}
	return v
}

// NewZoneView builds the read model of z.
func NewZoneView(z zone.Zone) ZoneView {
	vertices := z.Polygon.Vertices()
	vs := make([]LocationView, len(vertices))
	for i, p := range vertices {
		vs[i] = LocationView{Lat: p.Lat, Lng: p.Lng}
	}
	return ZoneView{
		ID:            z.ID,
		Name:          z.Name,
		Kind:          z.Kind,
		Color:         z.Color,
		ExclusionType: z.ExclusionType,
		HubID:         z.HubID,
		Vertices:      vs,
	}
}
