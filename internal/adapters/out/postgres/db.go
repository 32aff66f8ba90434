package postgres

import (
	"fmt"

	"fleet/internal/adapters/out/postgres/alertrepo"
	"fleet/internal/adapters/out/postgres/driverrepo"
	"fleet/internal/adapters/out/postgres/fleetrepo"
	"fleet/internal/adapters/out/postgres/idmaprepo"
	"fleet/internal/adapters/out/postgres/orderrepo"
	"fleet/internal/adapters/out/postgres/zonerepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionConfig holds the libpq connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the keyword/value connection string.
func (c ConnectionConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Open connects to PostgreSQL. Driver errors are translated so that unique
// violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or alters every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ActivityDTO{},
		&driverrepo.DriverDTO{},
		&fleetrepo.StoreDTO{},
		&fleetrepo.TeamDTO{},
		&zonerepo.ZoneDTO{},
		&idmaprepo.MappingDTO{},
		&alertrepo.AlertDTO{},
	)
}

// Tables lists the schema's tables, children first.
func Tables() []string {
	return []string{
		orderrepo.ActivityDTO{}.TableName(),
		orderrepo.OrderDTO{}.TableName(),
		driverrepo.DriverDTO{}.TableName(),
		fleetrepo.StoreDTO{}.TableName(),
		fleetrepo.TeamDTO{}.TableName(),
		zonerepo.ZoneDTO{}.TableName(),
		idmaprepo.MappingDTO{}.TableName(),
		alertrepo.AlertDTO{}.TableName(),
	}
}
