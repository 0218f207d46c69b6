package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaign-sync/db/migrations"
)

// ErrDirty is returned when a previous migration failed half way and the
// schema needs manual repair.
var ErrDirty = errors.New("database is in dirty state")

// Migrate moves the postgres database at addr to migrations.Version and
// returns the version it ended at.
func Migrate(addr string) (uint, error) {
	return withMigrator(addr, func(mg *migrate.Migrate) error {
		return mg.Migrate(migrations.Version)
	})
}

// Rollback reverts every migration. The campaign tables are dropped.
func Rollback(addr string) (uint, error) {
	return withMigrator(addr, func(mg *migrate.Migrate) error {
		return mg.Down()
	})
}

func withMigrator(addr string, step func(*migrate.Migrate) error) (uint, error) {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return 0, fmt.Errorf("open migrator: %w", err)
	}
	defer mg.Close()

	if _, dirty, err := mg.Version(); err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	} else if dirty {
		return 0, ErrDirty
	}

	if err = step(mg); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, err
	}

	v, _, err := mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return v, err
}
