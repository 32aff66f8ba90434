// Package tookan translates between the Tookan dispatch API wire format and
// the fleet model. It owns the status and transport code tables, the JSON
// payload shapes, and the Adapter that drives order and driver commands
// from inbound Tookan calls.
package tookan

import (
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/order"
)

// Tookan job_status codes. 5, 7 and 8 are unused by Tookan.
const (
	CodeUnassigned = 0
	CodeAssigned   = 1
	CodeAtStore    = 2
	CodePickedUp   = 3
	CodeInProgress = 4
	CodeSuccessful = 6
	CodeFailed     = 9
	CodeCancelled  = 10
)

var statusByCode = map[int]order.Status{
	CodeUnassigned: order.Unassigned,
	CodeAssigned:   order.Assigned,
	CodeAtStore:    order.AtStore,
	CodePickedUp:   order.PickedUp,
	CodeInProgress: order.InProgress,
	CodeSuccessful: order.Successful,
	CodeFailed:     order.Failed,
	CodeCancelled:  order.Cancelled,
}

var codeByStatus = invert(statusByCode)

// StatusCodes returns every defined job_status code in ascending order.
func StatusCodes() []int {
	return []int{CodeUnassigned, CodeAssigned, CodeAtStore, CodePickedUp, CodeInProgress, CodeSuccessful, CodeFailed, CodeCancelled}
}

// CodeToStatus maps a job_status code. Unknown codes map to Unassigned.
func CodeToStatus(code int) order.Status {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return order.Unassigned
}

// StatusToCode maps an order status. Invalid statuses map to 0.
func StatusToCode(s order.Status) int {
	if c, ok := codeByStatus[s]; ok {
		return c
	}
	return CodeUnassigned
}

// Tookan transport_type codes.
const (
	TransportCar        = 1
	TransportMotorCycle = 2
	TransportBicycle    = 3
	TransportScooter    = 4
	TransportFoot       = 5
	TransportTruck      = 6
)

var vehicleByTransport = map[int]driver.VehicleType{
	TransportCar:        driver.VehicleCar,
	TransportMotorCycle: driver.VehicleMotorCycle,
	TransportBicycle:    driver.VehicleBicycle,
	TransportScooter:    driver.VehicleScooter,
	TransportFoot:       driver.VehicleFoot,
	TransportTruck:      driver.VehicleTruck,
}

var transportByVehicle = invert(vehicleByTransport)

// TransportToVehicle maps a transport_type code. Unknown codes map to Car.
func TransportToVehicle(code int) driver.VehicleType {
	if v, ok := vehicleByTransport[code]; ok {
		return v
	}
	return driver.VehicleCar
}

// VehicleToTransport maps a vehicle type. Unknown types map to Car.
func VehicleToTransport(v driver.VehicleType) int {
	if c, ok := transportByVehicle[v]; ok {
		return c
	}
	return TransportCar
}

func invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
