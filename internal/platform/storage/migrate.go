package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/SscSPs/finance_tracker/migrations"
	pkgdb "github.com/SscSPs/finance_tracker/pkg/database"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// RunPostgresMigrations applies the embedded postgres migrations to databaseURL.
func RunPostgresMigrations(logger *slog.Logger, databaseURL string) error {
	// A temporary database/sql handle through the pgx stdlib driver, separate from the pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrationDB.Close()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}
	return runMigrations(logger, migrations.Postgres, "postgres", driver)
}

// RunSQLiteMigrations applies the embedded sqlite migrations to the file at path.
func RunSQLiteMigrations(logger *slog.Logger, path string) error {
	// A separate connection so the migration driver does not hold the application handle.
	migrationDB, err := sql.Open("sqlite", pkgdb.SQLiteDSN(path))
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrationDB.Close()

	driver, err := sqlite.WithInstance(migrationDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}
	return runMigrations(logger, migrations.SQLite, "sqlite", driver)
}

func runMigrations(logger *slog.Logger, fsys fs.FS, dir string, driver database.Driver) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dir, driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.", slog.String("backend", dir))
	} else {
		logger.Info("Database migrations applied successfully.", slog.String("backend", dir))
	}
	return nil
}
