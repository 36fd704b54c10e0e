package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/config"
	"github.com/toyshop/storefront/internal/repository/postgres"
)

const (
	applicationName   = "storefront"
	healthCheckPeriod = 30 * time.Second
)

// poolConfig разбирает URI базы и помечает соединения именем сервиса
func poolConfig(databaseURI string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURI)
	if err != nil {
		return nil, fmt.Errorf("invalid database URI: %w", err)
	}

	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}
	poolCfg.HealthCheckPeriod = healthCheckPeriod

	return poolCfg, nil
}

// initDatabase создает пул соединений и накатывает схему заказов, товаров и промокодов
func initDatabase(ctx context.Context, databaseURI string, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(databaseURI)
	if err != nil {
		return nil, err
	}

	dbPool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.RunMigrations(ctx, dbPool, logger); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations completed successfully",
		zap.String("host", poolCfg.ConnConfig.Host),
		zap.String("database", poolCfg.ConnConfig.Database),
	)

	return dbPool, nil
}

// initStorage поднимает базу и внешние интеграции.
// Если интеграции не стартовали, пул закрывается
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, *integrations, error) {
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to database")

	integ, err := initIntegrations(ctx, cfg, logger)
	if err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	return dbPool, integ, nil
}
