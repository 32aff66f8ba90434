package services_test

import (
	"testing"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/services"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchFixture(t *testing.T) (fleet.Store, []fleet.Team, []*driver.Driver) {
	t.Helper()
	store := mustStore(t, "S001", "H001", -26.10, 28.05)
	teams := []fleet.Team{
		{ID: "T001", Name: "North", HubID: "H001"},
		{ID: "T002", Name: "South", HubID: "H002"},
	}
	drivers := []*driver.Driver{
		mustDriver(t, "D001", strPtr("T001")),
		mustDriver(t, "D002", strPtr("T002")),
		mustDriver(t, "D003", nil),
		mustDriver(t, "D004", strPtr("T404")),
		mustDriver(t, "D005", strPtr("T001")),
	}
	return store, teams, drivers
}

func TestOrderDispatcher_EligibleDrivers(t *testing.T) {
	store, teams, drivers := dispatchFixture(t)
	o := mustOrder(t, "S001")
	dispatcher := services.NewOrderDispatcher()

	t.Run("should keep only drivers of the store's hub", func(t *testing.T) {
		eligible, err := dispatcher.EligibleDrivers(o, store, teams, drivers)

		require.NoError(t, err)
		require.Len(t, eligible, 2)
		assert.Equal(t, "D001", eligible[0].ID())
		assert.Equal(t, "D005", eligible[1].ID())
		assert.Equal(t, order.Unassigned, o.Status(), "filtering must not mutate the order")
	})

	t.Run("should reject a store that is not the order's", func(t *testing.T) {
		other := mustStore(t, "S999", "H001", 0, 0)

		_, err := dispatcher.EligibleDrivers(o, other, teams, drivers)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return empty slice when nobody qualifies", func(t *testing.T) {
		eligible, err := dispatcher.EligibleDrivers(o, store, nil, drivers)

		require.NoError(t, err)
		assert.Empty(t, eligible)
	})
}

func TestOrderDispatcher_Assign(t *testing.T) {
	store, teams, drivers := dispatchFixture(t)
	dispatcher := services.NewOrderDispatcher()

	t.Run("should assign eligible driver with their vehicle", func(t *testing.T) {
		o := mustOrder(t, "S001")

		changed, err := dispatcher.Assign(o, store, teams, drivers[0], nil, true, now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.Assigned, o.Status())
		assert.Equal(t, "D001", *o.DriverID())
		assert.Equal(t, "V-D001", *o.VehicleID())
	})

	t.Run("should reject ineligible driver when enforced", func(t *testing.T) {
		o := mustOrder(t, "S001")

		changed, err := dispatcher.Assign(o, store, teams, drivers[1], nil, true, now)

		assert.False(t, changed)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Unassigned, o.Status())
		assert.Nil(t, o.DriverID())
	})

	t.Run("should allow ineligible driver on override", func(t *testing.T) {
		o := mustOrder(t, "S001")

		changed, err := dispatcher.Assign(o, store, teams, drivers[1], strPtr("V-X"), false, now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "V-X", *o.VehicleID())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		o := mustOrder(t, "S001")
		_, err := dispatcher.Assign(o, store, teams, drivers[0], nil, true, now)
		require.NoError(t, err)
		before := o.Snapshot()

		changed, err := dispatcher.Assign(o, store, teams, drivers[0], nil, true, now)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, before, o.Snapshot())
	})
}
