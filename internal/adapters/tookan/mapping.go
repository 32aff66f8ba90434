package tookan

import (
	"errors"
	"strings"

	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
)

// Tookan layout_type codes.
const (
	LayoutPickup      = 0
	LayoutDelivery    = 1
	LayoutAppointment = 2
)

// DefaultTaskTitle is the title of tasks created without an order_id.
const DefaultTaskTitle = "Tookan task"

// Task is an inbound create_task in fleet terms. Details.StoreID is left
// empty; the adapter resolves it from the pickup coordinates.
type Task struct {
	Details       order.Details
	InitialStatus order.Status
	FleetID       *int64
}

// TaskToOrder translates a validated create_task payload.
func TaskToOrder(req CreateTaskRequest) (Task, error) {
	origin, originErr := kernel.NewLocation(
		floatOf(req.JobPickupLatitude), floatOf(req.JobPickupLongitude), req.JobPickupAddress)
	destination, destErr := kernel.NewLocation(
		floatOf(req.JobDeliveryLatitude), floatOf(req.JobDeliveryLongitude), req.JobDeliveryAddress)
	if err := errors.Join(originErr, destErr); err != nil {
		return Task{}, err
	}

	title := strings.TrimSpace(string(req.OrderID))
	if title == "" {
		title = DefaultTaskTitle
	}
	phone := req.JobDeliveryPhone
	if phone == "" {
		phone = req.JobPickupPhone
	}
	orderType := order.TypeDelivery
	if int(req.LayoutType) == LayoutPickup {
		orderType = order.TypePickup
	}

	task := Task{
		Details: order.Details{
			Title:         title,
			Description:   req.JobDescription,
			CustomerName:  req.CustomerName,
			CustomerPhone: phone,
			CustomerEmail: req.CustomerEmail,
			PickupName:    req.JobPickupName,
			PickupPhone:   req.JobPickupPhone,
			Origin:        origin,
			Destination:   destination,
			Type:          orderType,
			TeamID:        optional(string(req.TeamID)),
		},
		InitialStatus: order.Unassigned,
	}
	if req.AutoAssignment {
		task.InitialStatus = order.Assigned
	}
	if req.FleetID != nil {
		id := int64(*req.FleetID)
		task.FleetID = &id
	}
	return task, nil
}

// OrderToTask renders an order as Tookan task details.
func OrderToTask(o queries.OrderView, jobID int64, fleetID *int64) TaskDetails {
	layout := LayoutDelivery
	if o.OrderType == order.TypePickup {
		layout = LayoutPickup
	}
	var teamID string
	if o.TeamID != nil {
		teamID = *o.TeamID
	}

	return TaskDetails{
		JobID:                jobID,
		JobStatus:            StatusToCode(o.Status),
		FleetID:              fleetID,
		OrderID:              o.Title,
		JobDescription:       o.Description,
		JobPickupPhone:       o.PickupPhone,
		JobPickupName:        o.PickupName,
		JobPickupAddress:     o.Origin.Address,
		JobPickupLatitude:    o.Origin.Lat,
		JobPickupLongitude:   o.Origin.Lng,
		JobDeliveryPhone:     o.CustomerPhone,
		JobDeliveryAddress:   o.Destination.Address,
		JobDeliveryLatitude:  o.Destination.Lat,
		JobDeliveryLongitude: o.Destination.Lng,
		CustomerName:         o.CustomerName,
		CustomerEmail:        o.CustomerEmail,
		LayoutType:           layout,
		TeamID:               teamID,
	}
}

// OrderToCreateTask builds the outbound create_task payload for an order.
// The API key is set by the client.
func OrderToCreateTask(o queries.OrderView, fleetID *int64) CreateTaskRequest {
	d := OrderToTask(o, 0, fleetID)
	lat, lng := FlexFloat(d.JobPickupLatitude), FlexFloat(d.JobPickupLongitude)
	dlat, dlng := FlexFloat(d.JobDeliveryLatitude), FlexFloat(d.JobDeliveryLongitude)

	req := CreateTaskRequest{
		OrderID:              FlexString(d.OrderID),
		JobDescription:       d.JobDescription,
		JobPickupPhone:       d.JobPickupPhone,
		JobPickupName:        d.JobPickupName,
		JobPickupAddress:     d.JobPickupAddress,
		JobPickupLatitude:    &lat,
		JobPickupLongitude:   &lng,
		JobDeliveryPhone:     d.JobDeliveryPhone,
		JobDeliveryAddress:   d.JobDeliveryAddress,
		JobDeliveryLatitude:  &dlat,
		JobDeliveryLongitude: &dlng,
		CustomerName:         d.CustomerName,
		CustomerEmail:        d.CustomerEmail,
		LayoutType:           FlexInt(d.LayoutType),
		TeamID:               FlexString(d.TeamID),
		AutoAssignment:       FlexBool(fleetID != nil),
	}
	if fleetID != nil {
		id := FlexInt64(*fleetID)
		req.FleetID = &id
	}
	return req
}

// AgentToProfile translates an add_agent payload. The name is first and last
// name, or the username when both are empty. Only the first of the
// comma-separated team_ids is kept.
func AgentToProfile(req AgentRequest) driver.Profile {
	return driver.Profile{
		Name:               agentName(req),
		Phone:              req.Phone,
		Email:              req.Email,
		License:            req.License,
		VehicleType:        TransportToVehicle(int(req.TransportType)),
		VehicleDescription: req.TransportDesc,
		TeamID:             firstTeam(string(req.TeamIDs)),
	}
}

// MergeAgent applies an edit_agent payload to a driver. Empty wire fields
// keep the current value.
func MergeAgent(current queries.DriverView, req AgentRequest) driver.Profile {
	p := driver.Profile{
		Name:               current.Name,
		Phone:              current.Phone,
		Email:              current.Email,
		License:            current.License,
		VehicleType:        current.VehicleType,
		VehicleDescription: current.VehicleDescription,
		TeamID:             current.TeamID,
		VehicleID:          current.VehicleID,
	}

	if name := agentName(req); name != "" {
		p.Name = name
	}
	setIfPresent(&p.Phone, req.Phone)
	setIfPresent(&p.Email, req.Email)
	setIfPresent(&p.License, req.License)
	setIfPresent(&p.VehicleDescription, req.TransportDesc)
	if req.TransportType != 0 {
		p.VehicleType = TransportToVehicle(int(req.TransportType))
	}
	if team := firstTeam(string(req.TeamIDs)); team != nil {
		p.TeamID = team
	}
	return p
}

// DriverToAgent builds the outbound add_agent payload for a driver.
// The API key is set by the client.
func DriverToAgent(d queries.DriverView) AgentRequest {
	first, last, _ := strings.Cut(d.Name, " ")
	req := AgentRequest{
		Email:         d.Email,
		Phone:         d.Phone,
		Username:      d.ID,
		FirstName:     first,
		LastName:      last,
		TransportType: FlexInt(VehicleToTransport(d.VehicleType)),
		TransportDesc: d.VehicleDescription,
		License:       d.License,
	}
	if d.TeamID != nil {
		req.TeamIDs = FlexString(*d.TeamID)
	}
	return req
}

func agentName(req AgentRequest) string {
	name := strings.TrimSpace(strings.TrimSpace(req.FirstName) + " " + strings.TrimSpace(req.LastName))
	if name == "" {
		name = strings.TrimSpace(req.Username)
	}
	return name
}

func firstTeam(teamIDs string) *string {
	first, _, _ := strings.Cut(teamIDs, ",")
	return optional(strings.TrimSpace(first))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func floatOf(f *FlexFloat) float64 {
	if f == nil {
		return 0
	}
	return float64(*f)
}
