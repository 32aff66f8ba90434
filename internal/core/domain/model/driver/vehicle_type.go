package driver

import (
	"fmt"
	"strings"

	"fleet/internal/pkg/errs"
)

// VehicleType is the kind of transport a driver uses.
type VehicleType string

const (
	VehicleCar        VehicleType = "Car"
	VehicleMotorCycle VehicleType = "Motor Cycle"
	VehicleBicycle    VehicleType = "Bicycle"
	VehicleScooter    VehicleType = "Scooter"
	VehicleFoot       VehicleType = "Foot"
	VehicleTruck      VehicleType = "Truck"
)

// VehicleTypes returns every known vehicle type.
func VehicleTypes() []VehicleType {
	return []VehicleType{VehicleCar, VehicleMotorCycle, VehicleBicycle, VehicleScooter, VehicleFoot, VehicleTruck}
}

// ParseVehicleType resolves a vehicle type name ignoring case. "MotorCycle" is
// accepted as an alias for "Motor Cycle".
func ParseVehicleType(name string) (VehicleType, error) {
	trimmed := strings.TrimSpace(name)
	if strings.EqualFold(trimmed, "MotorCycle") {
		return VehicleMotorCycle, nil
	}
	for _, vt := range VehicleTypes() {
		if strings.EqualFold(string(vt), trimmed) {
			return vt, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("vehicleType", fmt.Errorf("%q is not a known vehicle type", name))
}

// Validate checks the vehicle type against the closed set.
func (vt VehicleType) Validate() error {
	for _, known := range VehicleTypes() {
		if vt == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("vehicleType", fmt.Errorf("%q is not a known vehicle type", string(vt)))
}
