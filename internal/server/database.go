package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/candlekeep/candlekeep/gen/ent"
	"github.com/candlekeep/candlekeep/internal/common"
	repo "github.com/candlekeep/candlekeep/internal/repository"
)

// ConnectDB opens the library database and returns the Ent client plus the
// pgx pool (nil for the local sqlite backend).
func ConnectDB(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	paths := common.NewLibraryPaths(cfg.Library.Root)

	if cfg.Database.DSN == "" {
		logger.Info("opening local library database", "path", paths.DBPath)
	} else {
		logger.Info("connecting to database", "dsn", cfg.Database.DSN)
	}
	entc, pool, err := repo.Open(ctx, cfg.Database, paths.DBPath, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, nil, err
	}

	logger.Info("successfully connected to database")
	return entc, pool, nil
}

// PingDB pings the database to ensure it's responsive.
func PingDB(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, timeout time.Duration) error {
	logger.Debug("pinging database")
	err := repo.HealthCheck(ctx, pool, timeout, logger)
	if err != nil {
		logger.Error("database ping failed", "error", err)
		return err
	}
	logger.Debug("database ping successful")
	return nil
}

// CloseDB closes the database connections gracefully.
func CloseDB(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	logger.Info("closing database connections")
	repo.Close(entc, pool, logger)
	logger.Info("database connections closed")
}
