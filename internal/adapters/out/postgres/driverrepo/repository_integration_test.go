package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"fleet/internal/adapters/out/postgres/driverrepo"
	"fleet/internal/adapters/out/postgres/pgtest"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// DriverRepositoryIntegrationTestSuite tests the driver repository against a
// real PostgreSQL container.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	db, container, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.db = db
	suite.container = container
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = driverrepo.NewGormDriverRepository(suite.db)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) newDriver(id, team string) *driver.Driver {
	d, err := driver.NewDriver(id, driver.Profile{
		Name:        "Sipho",
		Phone:       "+27 82 111 2222",
		VehicleType: driver.VehicleMotorCycle,
		TeamID:      &team,
	})
	suite.Require().NoError(err)
	return d
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_WithoutLocation() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver("D001", "T1")))

	got, err := suite.repository.Get(ctx, "D001")
	suite.Require().NoError(err)
	suite.Equal("Sipho", got.Name())
	suite.Equal(driver.StatusAvailable, got.Status())
	suite.Equal(driver.VehicleMotorCycle, got.Profile().VehicleType)
	suite.Require().NotNil(got.TeamID())
	suite.Equal("T1", *got.TeamID())
	_, hasLocation := got.Location()
	suite.False(hasLocation)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver("D001", "T1")))

	err := suite.repository.Add(ctx, suite.newDriver("D001", "T2"))

	suite.Require().ErrorIs(err, errs.ErrAlreadyExists)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_LocationAndProfile() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver("D001", "T1")))

	d, err := suite.repository.Get(ctx, "D001")
	suite.Require().NoError(err)
	at := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	loc, err := kernel.NewLocation(0, 0, "Null Island")
	suite.Require().NoError(err)
	_, err = d.UpdateLocation(loc, at)
	suite.Require().NoError(err)
	suite.Require().NoError(d.UpdateProfile(driver.Profile{Name: "Sipho M", VehicleType: driver.VehicleCar}))
	suite.Require().NoError(d.SetStatus(driver.StatusBusy))

	suite.Require().NoError(suite.repository.Update(ctx, d))

	got, err := suite.repository.Get(ctx, "D001")
	suite.Require().NoError(err)
	stored, hasLocation := got.Location()
	suite.Require().True(hasLocation, "a (0, 0) position is still a position")
	suite.Equal("Null Island", stored.Address())
	suite.True(at.Equal(got.LocationUpdatedAt()))
	suite.Equal("Sipho M", got.Name())
	suite.Nil(got.TeamID(), "cleared team is cleared in storage")
	suite.Empty(got.Profile().Phone)
	suite.Equal(driver.StatusBusy, got.Status())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_NonExistentDriver_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newDriver("D404", "T1"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAll_OrderedByID() {
	ctx := context.Background()
	for _, id := range []string{"D003", "D001", "D002"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver(id, "T1")))
	}

	all, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("D001", all[0].ID())
	suite.Equal("D002", all[1].ID())
	suite.Equal("D003", all[2].ID())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonExistentDriver_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), "D404")

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
