package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	httpin "fleet/internal/adapters/in/http"
	"fleet/internal/adapters/out/memory"
	"fleet/internal/adapters/tookan"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/alert"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/validate"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingEmitter struct {
	mu     sync.Mutex
	alerts []alert.Alert
}

func (e *recordingEmitter) Emit(a alert.Alert) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.alerts = append(e.alerts, a)
}

type MockRemoteTasks struct {
	mock.Mock
}

func (m *MockRemoteTasks) CreateTask(ctx context.Context, req tookan.CreateTaskRequest) (tookan.TaskCreated, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(tookan.TaskCreated), args.Error(1)
}

func strPtr(s string) *string { return &s }

// testApp serves the full route table over a memory store.
type testApp struct {
	echo    *echo.Echo
	uow     ports.UnitOfWork
	emitter *recordingEmitter
	remote  *MockRemoteTasks
}

// newTestApp seeds store S001 on hub H1, teams T1 (H1) and T2 (H2), drivers
// D001 (T1, fleet_id 7) and D002 (T2), and exclusion zone X1 around the store.
func newTestApp(t *testing.T, tookanAPIKey string) testApp {
	t.Helper()
	ctx := context.Background()
	app := newEmptyApp(t, tookanAPIKey)
	uow := app.uow

	loc, err := kernel.NewLocation(-26.10, 28.05, "Sandton City")
	require.NoError(t, err)
	store, err := fleet.NewStore("S001", "Sandton", loc, "H1")
	require.NoError(t, err)
	require.NoError(t, uow.StoreRepository().Add(ctx, store))
	for _, tm := range [][2]string{{"T1", "H1"}, {"T2", "H2"}} {
		team, teamErr := fleet.NewTeam(tm[0], "Team "+tm[0], tm[1])
		require.NoError(t, teamErr)
		require.NoError(t, uow.TeamRepository().Add(ctx, team))
	}
	for _, d := range [][2]string{{"D001", "T1"}, {"D002", "T2"}} {
		drv, drvErr := driver.NewDriver(d[0], driver.Profile{Name: "Driver " + d[0], TeamID: strPtr(d[1])})
		require.NoError(t, drvErr)
		require.NoError(t, uow.DriverRepository().Add(ctx, drv))
	}
	require.NoError(t, uow.IDMappingRepository().Bind(ctx, ports.MappingDriver, "D001", 7))

	polygon, err := zone.NewPolygon([]kernel.Point{
		{Lat: -26.12, Lng: 28.04},
		{Lat: -26.12, Lng: 28.06},
		{Lat: -26.08, Lng: 28.06},
		{Lat: -26.08, Lng: 28.04},
	})
	require.NoError(t, err)
	x1, err := zone.NewExclusionZone("X1", "Sandton works", polygon, zone.NoGo)
	require.NoError(t, err)
	require.NoError(t, uow.ZoneRepository().Add(ctx, x1))
	return app
}

// newEmptyApp serves the full route table over an empty memory store.
func newEmptyApp(t *testing.T, tookanAPIKey string) testApp {
	t.Helper()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	uow := factory.Create()

	orders := commands.OrderUoWFactoryFunc(func() commands.OrderUoW { return factory.Create() })
	drivers := commands.DriverUoWFactoryFunc(func() commands.DriverUoW { return factory.Create() })
	readers := queries.OrderReaderFactoryFunc(func() queries.OrderReader { return factory.Create() })
	zoneReaders := queries.ZoneReaderFactoryFunc(func() queries.ZoneReader { return factory.Create() })
	fleetUoWs := commands.FleetUoWFactoryFunc(func() commands.FleetUoW { return factory.Create() })
	emitter := &recordingEmitter{}
	remote := &MockRemoteTasks{}
	v := validate.New()

	handlers := httpin.Handlers{
		CreateOrder:     commands.NewCreateOrderCommandHandler(orders, emitter),
		SetOrderStatus:  commands.NewSetOrderStatusCommandHandler(orders, emitter),
		AssignDriver:    commands.NewAssignDriverCommandHandler(orders, emitter),
		UpdateLocation:  commands.NewUpdateDriverLocationCommandHandler(drivers, emitter, services.NewZoneEntryTracker()),
		CreateStore:     commands.NewCreateStoreCommandHandler(fleetUoWs),
		CreateTeam:      commands.NewCreateTeamCommandHandler(fleetUoWs),
		CreateZone:      commands.NewCreateZoneCommandHandler(fleetUoWs),
		CreateDriver:    commands.NewCreateDriverCommandHandler(drivers),
		GetOrder:        queries.NewGetOrderQueryHandler(readers),
		EligibleDrivers: queries.NewGetEligibleDriversQueryHandler(readers),
		CheckPoint:      queries.NewCheckPointQueryHandler(zoneReaders),
		Tookan: tookan.NewAdapter(tookan.Handlers{
			CreateOrder:   commands.NewCreateOrderCommandHandler(orders, emitter),
			AssignDriver:  commands.NewAssignDriverCommandHandler(orders, emitter),
			CreateDriver:  commands.NewCreateDriverCommandHandler(drivers),
			UpdateProfile: commands.NewUpdateDriverProfileCommandHandler(drivers),
			GetDriver:     queries.NewGetDriverQueryHandler(readers),
			JobDetails:    queries.NewGetJobDetailsQueryHandler(readers),
			NearestStore:  queries.NewFindNearestStoreQueryHandler(readers),
			ResolveID:     queries.NewResolveExternalIDQueryHandler(readers),
		}, v),
		TookanExporter: tookan.NewExporter(
			remote,
			queries.NewGetOrderQueryHandler(readers),
			queries.NewFindExternalIDQueryHandler(readers),
			commands.NewReserveExternalIDCommandHandler(orders),
			commands.NewBindExternalIDCommandHandler(orders),
			commands.NewReleaseExternalIDCommandHandler(orders),
		),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpin.NewServer(handlers, tookanAPIKey, logger)
	return testApp{
		echo:    httpin.NewEcho(server, v),
		uow:     uow,
		emitter: emitter,
		remote:  remote,
	}
}

func (a testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, "")

	rec := app.do(t, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Healthy", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, "")

	rec := app.do(t, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}
