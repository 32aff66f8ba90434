package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	httpin "fleet/internal/adapters/in/http"
	"fleet/internal/adapters/out/alerts"
	"fleet/internal/adapters/out/memory"
	"fleet/internal/adapters/out/postgres"
	"fleet/internal/adapters/out/postgres/alertrepo"
	"fleet/internal/adapters/out/tookanclient"
	"fleet/internal/adapters/tookan"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
	"fleet/internal/jobs"
	"fleet/internal/pkg/validate"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	dispatcher *alerts.Dispatcher
	tracker    *services.ZoneEntryTracker
	validator  *validate.Validator
}

// NewCompositionRoot opens the configured storage backend and starts the
// alert dispatcher. Close releases both.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	var (
		uowFactory ports.UnitOfWorkFactory
		sink       ports.AlertSink
	)

	switch config.StorageBackend {
	case BackendPostgres:
		db, err := postgres.Open(config.Connection().DSN())
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err = postgres.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		uowFactory = postgres.NewGormUnitOfWorkFactory(db)
		sink = alertrepo.NewGormAlertSink(db)
	default:
		uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
		sink = memory.NewAlertLog()
	}
	logger.Info("storage ready", "backend", config.StorageBackend)

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: uowFactory,
		dispatcher: alerts.NewDispatcher(sink, logger, config.AlertQueueSize, config.AlertSinkTimeout),
		tracker:    services.NewZoneEntryTracker(),
		validator:  validate.New(),
	}, nil
}

// Close flushes queued alerts.
func (c *CompositionRoot) Close(ctx context.Context) error {
	return c.dispatcher.Close(ctx)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return commands.OrderUoWFactoryFunc(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return commands.DriverUoWFactoryFunc(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return commands.FleetUoWFactoryFunc(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderReaders() queries.OrderReaderFactory {
	return queries.OrderReaderFactoryFunc(func() queries.OrderReader {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) zoneReaders() queries.ZoneReaderFactory {
	return queries.ZoneReaderFactoryFunc(func() queries.ZoneReader {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateBindExternalIDCommandHandler() commands.BindExternalIDCommandHandler {
	return commands.NewBindExternalIDCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverProfileCommandHandler() commands.UpdateDriverProfileCommandHandler {
	return commands.NewUpdateDriverProfileCommandHandler(c.driverUoWFactory())
}

// The location handler and the sweep share the tracker so a driver gets one
// alert per zone entry whichever path sees it first.
func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.driverUoWFactory(), c.dispatcher, c.tracker)
}

func (c *CompositionRoot) CreateSweepDriverZonesCommandHandler() commands.SweepDriverZonesCommandHandler {
	return commands.NewSweepDriverZonesCommandHandler(c.driverUoWFactory(), c.dispatcher, c.tracker)
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	return commands.NewCreateStoreCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCreateTeamCommandHandler() commands.CreateTeamCommandHandler {
	return commands.NewCreateTeamCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	return commands.NewCreateZoneCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReaders())
}

func (c *CompositionRoot) CreateGetEligibleDriversQueryHandler() queries.GetEligibleDriversQueryHandler {
	return queries.NewGetEligibleDriversQueryHandler(c.orderReaders())
}

func (c *CompositionRoot) CreateCheckPointQueryHandler() queries.CheckPointQueryHandler {
	return queries.NewCheckPointQueryHandler(c.zoneReaders())
}

func (c *CompositionRoot) CreateTookanAdapter() *tookan.Adapter {
	return tookan.NewAdapter(tookan.Handlers{
		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		AssignDriver:  c.CreateAssignDriverCommandHandler(),
		CreateDriver:  c.CreateCreateDriverCommandHandler(),
		UpdateProfile: c.CreateUpdateDriverProfileCommandHandler(),
		GetDriver:     queries.NewGetDriverQueryHandler(c.orderReaders()),
		JobDetails:    queries.NewGetJobDetailsQueryHandler(c.orderReaders()),
		NearestStore:  queries.NewFindNearestStoreQueryHandler(c.orderReaders()),
		ResolveID:     queries.NewResolveExternalIDQueryHandler(c.orderReaders()),
	}, c.validator)
}

// CreateTookanExporter returns nil when no Tookan API key is configured.
func (c *CompositionRoot) CreateTookanExporter() *tookan.Exporter {
	if c.config.TookanAPIKey == "" {
		return nil
	}
	client := tookanclient.New(c.config.Tookan(), &http.Client{}, c.logger)
	return tookan.NewExporter(
		client,
		c.CreateGetOrderQueryHandler(),
		queries.NewFindExternalIDQueryHandler(c.orderReaders()),
		commands.NewReserveExternalIDCommandHandler(c.orderUoWFactory()),
		c.CreateBindExternalIDCommandHandler(),
		commands.NewReleaseExternalIDCommandHandler(c.orderUoWFactory()),
	)
}

// CreateEcho builds the HTTP server with every route mounted.
func (c *CompositionRoot) CreateEcho() *echo.Echo {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		SetOrderStatus:  c.CreateSetOrderStatusCommandHandler(),
		AssignDriver:    c.CreateAssignDriverCommandHandler(),
		UpdateLocation:  c.CreateUpdateDriverLocationCommandHandler(),
		CreateStore:     c.CreateCreateStoreCommandHandler(),
		CreateTeam:      c.CreateCreateTeamCommandHandler(),
		CreateZone:      c.CreateCreateZoneCommandHandler(),
		CreateDriver:    c.CreateCreateDriverCommandHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		EligibleDrivers: c.CreateGetEligibleDriversQueryHandler(),
		CheckPoint:      c.CreateCheckPointQueryHandler(),
		Tookan:          c.CreateTookanAdapter(),
		TookanExporter:  c.CreateTookanExporter(),
	}, c.config.TookanAPIKey, c.logger)
	return httpin.NewEcho(server, c.validator)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepDriverZonesCommandHandler(), c.config.ZoneSweepSchedule, c.logger)
}
