// Package migration applies the database schema. Postgres runs the embedded
// SQL migrations; sqlite instances auto-migrate from the gorm models since
// they only back dev and test runs.
package migration

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	auditdomain "github.com/capquotelabs/capquote/internal/audit/domain"
	"github.com/capquotelabs/capquote/internal/config"
	margindomain "github.com/capquotelabs/capquote/internal/margin/domain"
	pricelistrepository "github.com/capquotelabs/capquote/internal/pricelist/repository"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

const migrationsDir = "migrations"

func Run(cfg config.Config, conn *gorm.DB) error {
	if conn == nil {
		return errors.New("migration database handle is required")
	}

	if cfg.Database.Driver == "postgres" {
		return runPostgres(conn)
	}
	return AutoMigrate(conn)
}

func runPostgres(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// AutoMigrate creates the schema from the gorm models. Also used directly by
// sqlite-backed tests.
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&pricelistrepository.Record{},
		&margindomain.Setting{},
		&auditdomain.Event{},
	)
}
