// Package storage opens the configured data backend, migrates it and returns
// the repositories built on top of it.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/finance_tracker/internal/repositories/database/sqlite"
	pkgdb "github.com/SscSPs/finance_tracker/pkg/database"
)

// Open connects to the backend selected by cfg.DataBackend, applies pending
// migrations and returns the repositories with a function releasing the connection.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DataBackend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.BackendSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath, logger)
	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unsupported data backend %q", cfg.DataBackend)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	logger.Info("Running database migrations...", slog.String("backend", config.BackendPostgres))
	if err := RunPostgresMigrations(logger, cfg.DatabaseURL); err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	pool, err := pkgdb.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	return pgsql.NewRepositoryProvider(pool), func() { pkgdb.ClosePgxPool(pool) }, nil
}

// OpenSQLite migrates and opens the database file at path.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	db, err := pkgdb.NewSQLiteDB(ctx, path)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	logger.Info("Running database migrations...", slog.String("backend", config.BackendSQLite))
	if err := RunSQLiteMigrations(logger, path); err != nil {
		db.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close SQLite database", slog.String("error", err.Error()))
		}
	}
	return sqlite.NewRepositoryProvider(db), cleanup, nil
}
