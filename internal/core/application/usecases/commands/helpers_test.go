package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fleet/internal/adapters/out/memory"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/alert"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/ports"

	"github.com/stretchr/testify/require"
)

type orderUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f orderUoWFactory) Create() commands.OrderUoW { return f.factory.Create() }

type driverUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f driverUoWFactory) Create() commands.DriverUoW { return f.factory.Create() }

// recordingEmitter collects alerts synchronously.
type recordingEmitter struct {
	mu     sync.Mutex
	alerts []alert.Alert
}

func (e *recordingEmitter) Emit(a alert.Alert) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.alerts = append(e.alerts, a)
}

func (e *recordingEmitter) types() []alert.Type {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]alert.Type, len(e.alerts))
	for i, a := range e.alerts {
		out[i] = a.Type
	}
	return out
}

func strPtr(s string) *string { return &s }

func mustLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng, "")
	require.NoError(t, err)
	return loc
}

func validDetails(t *testing.T) order.Details {
	t.Helper()
	return order.Details{
		Title:       "Groceries",
		Origin:      mustLocation(t, -26.10, 28.05),
		Destination: mustLocation(t, -26.14, 28.04),
		StoreID:     "S001",
	}
}

// fixture seeds store S001 on hub H1, team T1 on H1, team T2 on H2, driver
// D001 in T1 with vehicle V1 and driver D002 in T2.
type fixture struct {
	factory *memory.UnitOfWorkFactory
	uow     ports.UnitOfWork
	emitter *recordingEmitter
}

func newFixture(t *testing.T) fixture {
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

	d1, err := driver.NewDriver("D001", driver.Profile{Name: "Sipho", TeamID: strPtr("T1"), VehicleID: strPtr("V1")})
	require.NoError(t, err)
	require.NoError(t, uow.DriverRepository().Add(ctx, d1))
	d2, err := driver.NewDriver("D002", driver.Profile{Name: "Thandi", TeamID: strPtr("T2")})
	require.NoError(t, err)
	require.NoError(t, uow.DriverRepository().Add(ctx, d2))

	return fixture{factory: factory, uow: uow, emitter: &recordingEmitter{}}
}

func (f fixture) orders() orderUoWFactory   { return orderUoWFactory{f.factory} }
func (f fixture) drivers() driverUoWFactory { return driverUoWFactory{f.factory} }

func (f fixture) fleet() commands.FleetUoWFactoryFunc {
	return func() commands.FleetUoW { return f.factory.Create() }
}

func (f fixture) addOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, validDetails(t), order.Unassigned, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.uow.OrderRepository().Add(context.Background(), o))
	return o
}

func (f fixture) getOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	o, err := f.uow.OrderRepository().Get(context.Background(), id)
	require.NoError(t, err)
	return o
}
