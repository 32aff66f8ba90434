package tookan_test

import (
	"testing"

	"fleet/internal/adapters/tookan"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flexFloat(f float64) *tookan.FlexFloat {
	v := tookan.FlexFloat(f)
	return &v
}

func fleetID(id int64) *tookan.FlexInt64 {
	v := tookan.FlexInt64(id)
	return &v
}

func strPtr(s string) *string { return &s }

func taskRequest() tookan.CreateTaskRequest {
	return tookan.CreateTaskRequest{
		APIKey:               "secret",
		OrderID:              "A-17",
		JobDescription:       "Two boxes",
		JobPickupPhone:       "+27 11 000 0000",
		JobPickupName:        "Sandton Store",
		JobPickupAddress:     "Sandton City",
		JobPickupLatitude:    flexFloat(-26.10),
		JobPickupLongitude:   flexFloat(28.05),
		JobDeliveryPhone:     "+27 82 000 0002",
		JobDeliveryAddress:   "Rosebank",
		JobDeliveryLatitude:  flexFloat(-26.14),
		JobDeliveryLongitude: flexFloat(28.04),
		CustomerName:         "Naledi",
		CustomerEmail:        "naledi@example.com",
		LayoutType:           tookan.LayoutDelivery,
		TeamID:               "T1",
	}
}

func TestTaskToOrder(t *testing.T) {
	t.Run("should map fields", func(t *testing.T) {
		task, err := tookan.TaskToOrder(taskRequest())

		require.NoError(t, err)
		d := task.Details
		assert.Equal(t, "A-17", d.Title)
		assert.Equal(t, "Two boxes", d.Description)
		assert.Equal(t, "Naledi", d.CustomerName)
		assert.Equal(t, "+27 82 000 0002", d.CustomerPhone)
		assert.Equal(t, "Sandton Store", d.PickupName)
		assert.Equal(t, "Sandton City", d.Origin.Address())
		assert.InDelta(t, -26.14, d.Destination.Lat(), 1e-9)
		assert.Equal(t, order.TypeDelivery, d.Type)
		assert.Equal(t, "T1", *d.TeamID)
		assert.Empty(t, d.StoreID)
		assert.Equal(t, order.Unassigned, task.InitialStatus)
		assert.Nil(t, task.FleetID)
	})

	t.Run("layout type 0 is a pickup, 2 a delivery", func(t *testing.T) {
		req := taskRequest()
		req.LayoutType = tookan.LayoutPickup
		task, err := tookan.TaskToOrder(req)
		require.NoError(t, err)
		assert.Equal(t, order.TypePickup, task.Details.Type)

		req.LayoutType = tookan.LayoutAppointment
		task, err = tookan.TaskToOrder(req)
		require.NoError(t, err)
		assert.Equal(t, order.TypeDelivery, task.Details.Type)
	})

	t.Run("auto assignment starts Assigned and fleet id is carried", func(t *testing.T) {
		req := taskRequest()
		req.AutoAssignment = true
		req.FleetID = fleetID(3)

		task, err := tookan.TaskToOrder(req)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, task.InitialStatus)
		assert.Equal(t, int64(3), *task.FleetID)
	})

	t.Run("missing order id falls back to default title", func(t *testing.T) {
		req := taskRequest()
		req.OrderID = " "
		req.JobDeliveryPhone = ""

		task, err := tookan.TaskToOrder(req)

		require.NoError(t, err)
		assert.Equal(t, tookan.DefaultTaskTitle, task.Details.Title)
		assert.Equal(t, "+27 11 000 0000", task.Details.CustomerPhone)
	})
}

func TestOrderToTask(t *testing.T) {
	fleet := int64(9)
	view := queries.OrderView{
		ID:            "ORD001",
		Title:         "A-17",
		Status:        order.Failed,
		OrderType:     order.TypePickup,
		Origin:        queries.LocationView{Lat: -26.1, Lng: 28.05, Address: "Sandton"},
		Destination:   queries.LocationView{Lat: -26.14, Lng: 28.04, Address: "Rosebank"},
		CustomerPhone: "+27 82",
	}

	d := tookan.OrderToTask(view, 42, &fleet)

	assert.Equal(t, int64(42), d.JobID)
	assert.Equal(t, tookan.CodeFailed, d.JobStatus)
	assert.Equal(t, int64(9), *d.FleetID)
	assert.Equal(t, "A-17", d.OrderID)
	assert.Equal(t, tookan.LayoutPickup, d.LayoutType)
	assert.Equal(t, "Sandton", d.JobPickupAddress)
	assert.Equal(t, "+27 82", d.JobDeliveryPhone)

	req := tookan.OrderToCreateTask(view, &fleet)
	assert.Equal(t, tookan.FlexInt64(9), *req.FleetID)
	assert.True(t, bool(req.AutoAssignment))
	assert.InDelta(t, -26.1, float64(*req.JobPickupLatitude), 1e-9)
}

func TestAgentToProfile(t *testing.T) {
	p := tookan.AgentToProfile(tookan.AgentRequest{
		FirstName:     "Sipho",
		LastName:      "Ndlovu",
		Username:      "sipho",
		Email:         "sipho@example.com",
		TransportType: tookan.TransportScooter,
		TransportDesc: "Red scooter",
		License:       "GP-123",
		TeamIDs:       " T2 , T3",
	})

	assert.Equal(t, "Sipho Ndlovu", p.Name)
	assert.Equal(t, driver.VehicleScooter, p.VehicleType)
	assert.Equal(t, "Red scooter", p.VehicleDescription)
	assert.Equal(t, "GP-123", p.License)
	assert.Equal(t, "T2", *p.TeamID)

	p = tookan.AgentToProfile(tookan.AgentRequest{Username: "sipho", TransportType: 99})
	assert.Equal(t, "sipho", p.Name)
	assert.Equal(t, driver.VehicleCar, p.VehicleType)
	assert.Nil(t, p.TeamID)
}

func TestMergeAgent(t *testing.T) {
	current := queries.DriverView{
		ID:          "D001",
		Name:        "Sipho",
		Phone:       "+27 1",
		VehicleType: driver.VehicleTruck,
		TeamID:      strPtr("T1"),
		VehicleID:   strPtr("V1"),
	}

	p := tookan.MergeAgent(current, tookan.AgentRequest{Phone: "+27 2"})

	assert.Equal(t, "Sipho", p.Name)
	assert.Equal(t, "+27 2", p.Phone)
	assert.Equal(t, driver.VehicleTruck, p.VehicleType)
	assert.Equal(t, "T1", *p.TeamID)
	assert.Equal(t, "V1", *p.VehicleID)
}

func TestDriverToAgent(t *testing.T) {
	req := tookan.DriverToAgent(queries.DriverView{
		ID:          "D001",
		Name:        "Sipho Ndlovu",
		VehicleType: driver.VehicleBicycle,
		TeamID:      strPtr("T1"),
	})

	assert.Equal(t, "Sipho", req.FirstName)
	assert.Equal(t, "Ndlovu", req.LastName)
	assert.Equal(t, tookan.FlexInt(tookan.TransportBicycle), req.TransportType)
	assert.Equal(t, tookan.FlexString("T1"), req.TeamIDs)
}
