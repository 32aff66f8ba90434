package http

import (
	"time"

	"fleet/internal/core/application/usecases/queries"
)

// Error is the body of every failed admin request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location is a coordinate pair with an optional address.
type Location struct {
	Lat     *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng     *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Address string   `json:"address,omitempty"`
}

// LocationReport is the body of PUT /api/v1/drivers/:id/location. ReportedAt
// is the device time of the fix; reports older than the last accepted one are
// ignored.
type LocationReport struct {
	Location
	ReportedAt *time.Time `json:"reportedAt,omitempty"`
}

// Item is an order line.
type Item struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// NewOrder is the body of POST /api/v1/orders. Status is the initial status,
// Unassigned when empty.
type NewOrder struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description,omitempty"`
	CustomerName  string   `json:"customerName,omitempty"`
	CustomerPhone string   `json:"customerPhone,omitempty"`
	CustomerEmail string   `json:"customerEmail,omitempty" validate:"omitempty,email"`
	PickupName    string   `json:"pickupName,omitempty"`
	PickupPhone   string   `json:"pickupPhone,omitempty"`
	Origin        Location `json:"origin" validate:"required"`
	Destination   Location `json:"destination" validate:"required"`
	Priority      string   `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High Urgent"`
	OrderType     string   `json:"orderType,omitempty" validate:"omitempty,oneof=Pickup Delivery"`
	StoreID       string   `json:"storeId" validate:"required"`
	TeamID        *string  `json:"teamId,omitempty"`
	Status        string   `json:"status,omitempty"`
	DriverID      *string  `json:"driverId,omitempty"`
	VehicleID     *string  `json:"vehicleId,omitempty"`
	Items         []Item   `json:"items,omitempty" validate:"dive"`
}

// StatusChange is the body of PUT /api/v1/orders/:id/status.
type StatusChange struct {
	Status  string `json:"status" validate:"required"`
	Version *int64 `json:"version,omitempty" validate:"omitempty,gte=0"`
}

// Assignment is the body of PUT /api/v1/orders/:id/assignment.
type Assignment struct {
	DriverID  string  `json:"driverId" validate:"required"`
	VehicleID *string `json:"vehicleId,omitempty"`
	Version   *int64  `json:"version,omitempty" validate:"omitempty,gte=0"`
	Override  bool    `json:"override,omitempty"`
}

// PointCheck is the body of POST /api/v1/zones/check.
type PointCheck struct {
	Lat  *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng  *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Kind string   `json:"kind" validate:"required,oneof=geofence exclusion"`
}

// NewStore is the body of POST /api/v1/stores.
type NewStore struct {
	ID       string   `json:"id" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Location Location `json:"location" validate:"required"`
	HubID    string   `json:"hubId" validate:"required"`
}

// NewTeam is the body of POST /api/v1/teams.
type NewTeam struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	HubID string `json:"hubId" validate:"required"`
}

// Vertex is a polygon corner.
type Vertex struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

// NewZone is the body of POST /api/v1/zones. Color and HubID apply to
// geofences, ExclusionType to exclusion zones.
type NewZone struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Kind          string   `json:"kind" validate:"required,oneof=geofence exclusion"`
	Vertices      []Vertex `json:"vertices" validate:"required,min=3,dive"`
	Color         string   `json:"color,omitempty"`
	ExclusionType string   `json:"exclusionType,omitempty" validate:"required_if=Kind exclusion"`
	HubID         *string  `json:"hubId,omitempty"`
}

// NewDriver is the body of POST /api/v1/drivers. A driver ID is generated
// when empty.
type NewDriver struct {
	ID                 string  `json:"id,omitempty"`
	Name               string  `json:"name" validate:"required"`
	Phone              string  `json:"phone,omitempty"`
	Email              string  `json:"email,omitempty" validate:"omitempty,email"`
	License            string  `json:"license,omitempty"`
	VehicleType        string  `json:"vehicleType,omitempty"`
	VehicleDescription string  `json:"vehicleDescription,omitempty"`
	TeamID             *string `json:"teamId,omitempty"`
	VehicleID          *string `json:"vehicleId,omitempty"`
}

// OrderItem is an order line in responses.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Activity is an activity log entry in responses.
type Activity struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationResponse is a coordinate pair in responses.
type LocationResponse struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// Order is the admin representation of an order.
type Order struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	CustomerName  string           `json:"customerName,omitempty"`
	CustomerPhone string           `json:"customerPhone,omitempty"`
	CustomerEmail string           `json:"customerEmail,omitempty"`
	PickupName    string           `json:"pickupName,omitempty"`
	PickupPhone   string           `json:"pickupPhone,omitempty"`
	Origin        LocationResponse `json:"origin"`
	Destination   LocationResponse `json:"destination"`
	Status        string           `json:"status"`
	Priority      string           `json:"priority"`
	OrderType     string           `json:"orderType"`
	DriverID      *string          `json:"driverId"`
	VehicleID     *string          `json:"vehicleId"`
	TeamID        *string          `json:"teamId,omitempty"`
	StoreID       string           `json:"storeId"`
	Items         []OrderItem      `json:"items"`
	ActivityLog   []Activity       `json:"activityLog"`
	Version       int64            `json:"version"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// Driver is the admin representation of a driver.
type Driver struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Phone       string            `json:"phone,omitempty"`
	Email       string            `json:"email,omitempty"`
	Status      string            `json:"status"`
	VehicleType string            `json:"vehicleType"`
	VehicleID   *string           `json:"vehicleId,omitempty"`
	TeamID      *string           `json:"teamId,omitempty"`
	Location    *LocationResponse `json:"location,omitempty"`
}

// CreatedDriver is the response of POST /api/v1/drivers. FleetID is the
// fleet_id Tookan clients address the driver by.
type CreatedDriver struct {
	Driver
	FleetID *int64 `json:"fleetId,omitempty"`
}

// Store is the admin representation of a store.
type Store struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Location LocationResponse `json:"location"`
	HubID    string           `json:"hubId"`
}

// Team is the admin representation of a driver team.
type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	HubID string `json:"hubId"`
}

// Zone is the admin representation of a geofence or exclusion zone.
type Zone struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Kind          string             `json:"kind"`
	Color         string             `json:"color,omitempty"`
	ExclusionType string             `json:"exclusionType,omitempty"`
	HubID         *string            `json:"hubId,omitempty"`
	Vertices      []LocationResponse `json:"vertices"`
}

// PointCheckResult is the response of POST /api/v1/zones/check.
type PointCheckResult struct {
	IsInside bool   `json:"isInside"`
	Zones    []Zone `json:"zones"`
}

// LocationResult is the response of PUT /api/v1/drivers/:id/location.
type LocationResult struct {
	Inside  []Zone `json:"inside"`
	Entered []Zone `json:"entered"`
}

// Export is the response of POST /api/v1/orders/:id/tookan-export.
type Export struct {
	OrderID string `json:"orderId"`
	JobID   int64  `json:"jobId"`
}

func toLocation(l queries.LocationView) LocationResponse {
	return LocationResponse{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}

func toOrder(v queries.OrderView) Order {
	items := make([]OrderItem, len(v.Items))
	for i, it := range v.Items {
		items[i] = OrderItem{Name: it.Name, Quantity: it.Quantity}
	}
	activity := make([]Activity, len(v.ActivityLog))
	for i, a := range v.ActivityLog {
		activity[i] = Activity{Status: a.Status.String(), Timestamp: a.Timestamp}
	}
	return Order{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		CustomerName:  v.CustomerName,
		CustomerPhone: v.CustomerPhone,
		CustomerEmail: v.CustomerEmail,
		PickupName:    v.PickupName,
		PickupPhone:   v.PickupPhone,
		Origin:        toLocation(v.Origin),
		Destination:   toLocation(v.Destination),
		Status:        v.Status.String(),
		Priority:      string(v.Priority),
		OrderType:     string(v.OrderType),
		DriverID:      v.DriverID,
		VehicleID:     v.VehicleID,
		TeamID:        v.TeamID,
		StoreID:       v.StoreID,
		Items:         items,
		ActivityLog:   activity,
		Version:       v.Version,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toDriver(v queries.DriverView) Driver {
	d := Driver{
		ID:          v.ID,
		Name:        v.Name,
		Phone:       v.Phone,
		Email:       v.Email,
		Status:      string(v.Status),
		VehicleType: string(v.VehicleType),
		VehicleID:   v.VehicleID,
		TeamID:      v.TeamID,
	}
	if v.Location != nil {
		loc := toLocation(*v.Location)
		d.Location = &loc
	}
	return d
}

func toZones(views []queries.ZoneView) []Zone {
	out := make([]Zone, len(views))
	for i, z := range views {
		vertices := make([]LocationResponse, len(z.Vertices))
		for j, p := range z.Vertices {
			vertices[j] = toLocation(p)
		}
		out[i] = Zone{
			ID:            z.ID,
			Name:          z.Name,
			Kind:          string(z.Kind),
			Color:         z.Color,
			ExclusionType: string(z.ExclusionType),
			HubID:         z.HubID,
			Vertices:      vertices,
		}
	}
	return out
}
