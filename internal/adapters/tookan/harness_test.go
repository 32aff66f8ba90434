package tookan_test

import (
	"context"
	"testing"

	"fleet/internal/adapters/out/memory"
	"fleet/internal/adapters/tookan"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/alert"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/validate"

	"github.com/stretchr/testify/require"
)

type discardEmitter struct{}

func (discardEmitter) Emit(alert.Alert) {}

// harness wires the application handlers over a memory store seeded with
// stores S001 (Sandton, H1) and S002 (Pretoria, H2), team T1 on H1, and
// driver D001 in T1 mapped to fleet_id 7.
type harness struct {
	uow     ports.UnitOfWork
	orders  commands.OrderUoWFactoryFunc
	drivers commands.DriverUoWFactoryFunc
	readers queries.OrderReaderFactoryFunc
	adapter *tookan.Adapter
}

func newHarness(t *testing.T) harness {
	t.Helper()
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	uow := factory.Create()

	for _, s := range []struct {
		id, name, hub string
		lat, lng      float64
	}{
		{"S001", "Sandton", "H1", -26.10, 28.05},
		{"S002", "Pretoria", "H2", -25.75, 28.19},
	} {
		loc, err := kernel.NewLocation(s.lat, s.lng, s.name)
		require.NoError(t, err)
		store, err := fleet.NewStore(s.id, s.name, loc, s.hub)
		require.NoError(t, err)
		require.NoError(t, uow.StoreRepository().Add(ctx, store))
	}

	team, err := fleet.NewTeam("T1", "Sandton riders", "H1")
	require.NoError(t, err)
	require.NoError(t, uow.TeamRepository().Add(ctx, team))

	drv, err := driver.NewDriver("D001", driver.Profile{Name: "Sipho", TeamID: strPtr("T1"), VehicleID: strPtr("V1")})
	require.NoError(t, err)
	require.NoError(t, uow.DriverRepository().Add(ctx, drv))
	require.NoError(t, uow.IDMappingRepository().Bind(ctx, ports.MappingDriver, "D001", 7))

	h := harness{
		uow:     uow,
		orders:  func() commands.OrderUoW { return factory.Create() },
		drivers: func() commands.DriverUoW { return factory.Create() },
		readers: func() queries.OrderReader { return factory.Create() },
	}
	h.adapter = tookan.NewAdapter(tookan.Handlers{
		CreateOrder:   commands.NewCreateOrderCommandHandler(h.orders, discardEmitter{}),
		AssignDriver:  commands.NewAssignDriverCommandHandler(h.orders, discardEmitter{}),
		CreateDriver:  commands.NewCreateDriverCommandHandler(h.drivers),
		UpdateProfile: commands.NewUpdateDriverProfileCommandHandler(h.drivers),
		GetDriver:     queries.NewGetDriverQueryHandler(h.readers),
		JobDetails:    queries.NewGetJobDetailsQueryHandler(h.readers),
		NearestStore:  queries.NewFindNearestStoreQueryHandler(h.readers),
		ResolveID:     queries.NewResolveExternalIDQueryHandler(h.readers),
	}, validate.New())
	return h
}

func mustLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng, "")
	require.NoError(t, err)
	return loc
}
