package services

import (
	"fmt"
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"
)

// OrderDispatcher is a domain service that decides which drivers may serve an
// order and applies the assignment to the order aggregate.
//
// Business rules:
//   - A driver is eligible only if the driver's team belongs to the hub of the order's store
//   - Drivers without a team, or with an unknown team, are never eligible
//   - Manual override skips the eligibility check
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	eligible, err := dispatcher.EligibleDrivers(o, store, teams, drivers)
//	if err != nil {
//	    return err
//	}
//	changed, err := dispatcher.Assign(o, store, teams, eligible[0], nil, true, time.Now())
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// EligibleDrivers filters drivers down to those whose team's hub equals the
// hub of the order's store. It performs no mutation; input order is preserved.
//
// Parameters:
//   - o: The order being dispatched (must be valid)
//   - store: The order's store; its ID must equal o.StoreID()
//   - teams: All known teams
//   - drivers: Candidate drivers
//
// Returns:
//   - []*driver.Driver: Eligible drivers, possibly empty
//   - error: Validation error for an invalid order or a mismatched store
func (d OrderDispatcher) EligibleDrivers(
	o *order.Order,
	store fleet.Store,
	teams []fleet.Team,
	drivers []*driver.Driver,
) ([]*driver.Driver, error) {
	if err := d.checkStore(o, store); err != nil {
		return nil, err
	}

	hubByTeam := indexTeams(teams)
	eligible := make([]*driver.Driver, 0, len(drivers))
	for _, drv := range drivers {
		if err := drv.Validate(); err != nil {
			return nil, err
		}
		if belongsToHub(drv, hubByTeam, store.HubID) {
			eligible = append(eligible, drv)
		}
	}
	return eligible, nil
}

// IsEligible reports whether a single driver may serve the order.
func (d OrderDispatcher) IsEligible(o *order.Order, store fleet.Store, teams []fleet.Team, drv *driver.Driver) (bool, error) {
	if err := d.checkStore(o, store); err != nil {
		return false, err
	}
	if err := drv.Validate(); err != nil {
		return false, err
	}
	return belongsToHub(drv, indexTeams(teams), store.HubID), nil
}

// Assign assigns drv to the order. When vehicleID is nil the driver's current
// vehicle is used. With enforceEligibility the driver must pass IsEligible,
// otherwise a driverId validation error is returned and the order is untouched.
//
// Returns false when the assignment was already in place.
func (d OrderDispatcher) Assign(
	o *order.Order,
	store fleet.Store,
	teams []fleet.Team,
	drv *driver.Driver,
	vehicleID *string,
	enforceEligibility bool,
	at time.Time,
) (bool, error) {
	if enforceEligibility {
		ok, err := d.IsEligible(o, store, teams, drv)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, errs.NewValueIsInvalidErrorWithCause("driverId",
				fmt.Errorf("driver %s does not serve hub %s", drv.ID(), store.HubID))
		}
	} else if err := drv.Validate(); err != nil {
		return false, err
	}

	if vehicleID == nil {
		vehicleID = drv.VehicleID()
	}
	return o.AssignDriver(drv.ID(), vehicleID, at)
}

func (d OrderDispatcher) checkStore(o *order.Order, store fleet.Store) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if store.ID != o.StoreID() {
		return errs.NewValueIsInvalidErrorWithCause("storeId",
			fmt.Errorf("store %s is not the store of order %s", store.ID, o.ID()))
	}
	return nil
}

func indexTeams(teams []fleet.Team) map[string]string {
	hubByTeam := make(map[string]string, len(teams))
	for _, t := range teams {
		hubByTeam[t.ID] = t.HubID
	}
	return hubByTeam
}

func belongsToHub(drv *driver.Driver, hubByTeam map[string]string, hubID string) bool {
	teamID := drv.TeamID()
	if teamID == nil {
		return false
	}
	hub, ok := hubByTeam[*teamID]
	return ok && hub == hubID
}
