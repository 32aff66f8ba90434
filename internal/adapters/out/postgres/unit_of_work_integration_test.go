package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fleet/internal/adapters/out/postgres"
	"fleet/internal/adapters/out/postgres/pgtest"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/alert"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type discardEmitter struct{}

func (discardEmitter) Emit(alert.Alert) {}

// UnitOfWorkIntegrationTestSuite tests transaction handling of the GORM unit
// of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	db, container, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.db = db
	suite.container = container
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedFleet() {
	ctx := context.Background()
	uow := suite.factory.Create()

	loc, err := kernel.NewLocation(-26.10, 28.05, "Sandton City")
	suite.Require().NoError(err)
	store, err := fleet.NewStore("S001", "Sandton", loc, "H1")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.StoreRepository().Add(ctx, store))

	team, err := fleet.NewTeam("T1", "Sandton riders", "H1")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TeamRepository().Add(ctx, team))

	teamID := "T1"
	d, err := driver.NewDriver("D001", driver.Profile{Name: "Sipho", TeamID: &teamID})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DriverRepository().Add(ctx, d))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(id string) *order.Order {
	origin, err := kernel.NewLocation(-26.10, 28.05, "Sandton City")
	suite.Require().NoError(err)
	destination, err := kernel.NewLocation(-26.14, 28.04, "Rosebank")
	suite.Require().NoError(err)
	o, err := order.NewOrder(id, order.Details{
		Title:       "Groceries",
		Origin:      origin,
		Destination: destination,
		StoreID:     "S001",
	}, order.Unassigned, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryCommit() {
	ctx := context.Background()
	suite.seedFleet()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("ORD001")))
	jobID, err := uow.IDMappingRepository().Ensure(ctx, ports.MappingOrder, "ORD001")
	suite.Require().NoError(err)
	d, err := uow.DriverRepository().Get(ctx, "D001")
	suite.Require().NoError(err)
	suite.Require().NoError(d.SetStatus(driver.StatusBusy))
	suite.Require().NoError(uow.DriverRepository().Update(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, "ORD001")
	suite.Require().NoError(err)
	local, err := reader.IDMappingRepository().FindLocal(ctx, ports.MappingOrder, jobID)
	suite.Require().NoError(err)
	suite.Equal("ORD001", local)
	stored, err := reader.DriverRepository().Get(ctx, "D001")
	suite.Require().NoError(err)
	suite.Equal(driver.StatusBusy, stored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	suite.seedFleet()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("ORD001")))
	suite.Require().NoError(uow.IDMappingRepository().Bind(ctx, ports.MappingOrder, "ORD001", 5501))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err := reader.OrderRepository().Get(ctx, "ORD001")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = reader.IDMappingRepository().FindLocal(ctx, ports.MappingOrder, 5501)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UncommittedWritesAreInvisibleToOthers() {
	ctx := context.Background()
	suite.seedFleet()
	writer := suite.factory.Create()

	suite.Require().NoError(writer.Begin(ctx))
	defer func() { _ = writer.Rollback(ctx) }()
	suite.Require().NoError(writer.OrderRepository().Add(ctx, suite.newOrder("ORD001")))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, "ORD001")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = writer.OrderRepository().Get(ctx, "ORD001")
	suite.Require().NoError(err, "the writer sees its own insert")
}

// TestUnitOfWork_CommandHandlers drives the order handlers end to end over
// the GORM backend.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommandHandlers() {
	ctx := context.Background()
	suite.seedFleet()
	orders := commands.OrderUoWFactoryFunc(func() commands.OrderUoW { return suite.factory.Create() })

	o := suite.newOrder("ORD001")
	createCmd, err := commands.NewCreateOrderCommand("ORD001", o.Details(), order.Unassigned, nil, nil)
	suite.Require().NoError(err)
	created, err := commands.NewCreateOrderCommandHandler(orders, discardEmitter{}).Handle(ctx, createCmd.WithExternalID())
	suite.Require().NoError(err)
	suite.Require().NotNil(created.ExternalID)
	suite.Equal(int64(1), *created.ExternalID)

	stale := int64(0)
	assign := commands.NewAssignDriverCommandHandler(orders, discardEmitter{})
	staleCmd, err := commands.NewAssignDriverCommand("ORD001", "D001", nil, &stale, false)
	suite.Require().NoError(err)
	_, err = assign.Handle(ctx, staleCmd)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)

	assignCmd, err := commands.NewAssignDriverCommand("ORD001", "D001", nil, nil, false)
	suite.Require().NoError(err)
	assigned, err := assign.Handle(ctx, assignCmd)
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, assigned.Status())
	suite.Equal(int64(2), assigned.Version())

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, "ORD001")
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, stored.Status())
	suite.Len(stored.ActivityLog(), 2)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
