package services_test

import (
	"testing"
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/zone"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func mustLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng, "")
	require.NoError(t, err)
	return loc
}

func mustStore(t *testing.T, id, hubID string, lat, lng float64) fleet.Store {
	t.Helper()
	s, err := fleet.NewStore(id, "Store "+id, mustLocation(t, lat, lng), hubID)
	require.NoError(t, err)
	return s
}

func mustOrder(t *testing.T, storeID string) *order.Order {
	t.Helper()
	o, err := order.NewOrder("ORD001", order.Details{
		Title:       "Groceries",
		Origin:      mustLocation(t, -26.10, 28.05),
		Destination: mustLocation(t, -26.14, 28.04),
		StoreID:     storeID,
	}, order.Unassigned, now)
	require.NoError(t, err)
	return o
}

func mustDriver(t *testing.T, id string, teamID *string) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, driver.Profile{Name: "Driver " + id, TeamID: teamID, VehicleID: strPtr("V-" + id)})
	require.NoError(t, err)
	return d
}

func mustSquare(t *testing.T, minLat, minLng, maxLat, maxLng float64) zone.Polygon {
	t.Helper()
	p, err := zone.NewPolygon([]kernel.Point{
		{Lat: minLat, Lng: minLng},
		{Lat: minLat, Lng: maxLng},
		{Lat: maxLat, Lng: maxLng},
		{Lat: maxLat, Lng: minLng},
	})
	require.NoError(t, err)
	return p
}
