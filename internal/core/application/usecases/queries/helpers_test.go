package queries_test

import (
	"context"
	"testing"
	"time"

	"fleet/internal/adapters/out/memory"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/core/ports"

	"github.com/stretchr/testify/require"
)

type readers struct {
	factory *memory.UnitOfWorkFactory
}

func (r readers) Create() queries.OrderReader { return r.factory.Create() }

type zoneReaders struct {
	factory *memory.UnitOfWorkFactory
}

func (r zoneReaders) Create() queries.ZoneReader { return r.factory.Create() }

func strPtr(s string) *string { return &s }

func mustLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng, "")
	require.NoError(t, err)
	return loc
}

// seed stores S001 on hub H1, teams T1 (H1) and T2 (H2), drivers D001 (T1),
// D002 (T2) and D003 (T1), and order ORD001 from S001.
func seed(t *testing.T) (*memory.UnitOfWorkFactory, ports.UnitOfWork) {
	t.Helper()
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	uow := factory.Create()

	store, err := fleet.NewStore("S001", "Sandton", mustLocation(t, -26.10, 28.05), "H1")
	require.NoError(t, err)
	require.NoError(t, uow.StoreRepository().Add(ctx, store))

	for _, tm := range [][2]string{{"T1", "H1"}, {"T2", "H2"}} {
		team, teamErr := fleet.NewTeam(tm[0], "Team "+tm[0], tm[1])
		require.NoError(t, teamErr)
		require.NoError(t, uow.TeamRepository().Add(ctx, team))
	}

	for _, d := range [][2]string{{"D003", "T1"}, {"D002", "T2"}, {"D001", "T1"}} {
		drv, drvErr := driver.NewDriver(d[0], driver.Profile{Name: "Driver " + d[0], TeamID: strPtr(d[1])})
		require.NoError(t, drvErr)
		require.NoError(t, uow.DriverRepository().Add(ctx, drv))
	}

	o, err := order.NewOrder("ORD001", order.Details{
		Title:       "Groceries",
		Origin:      mustLocation(t, -26.10, 28.05),
		Destination: mustLocation(t, -26.14, 28.04),
		StoreID:     "S001",
		Items:       []order.Item{{Name: "Milk", Quantity: 2}},
	}, order.Unassigned, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, uow.OrderRepository().Add(ctx, o))

	return factory, uow
}

func mustPolygon(t *testing.T, pts ...kernel.Point) zone.Polygon {
	t.Helper()
	p, err := zone.NewPolygon(pts)
	require.NoError(t, err)
	return p
}
