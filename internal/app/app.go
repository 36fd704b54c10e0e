package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/config"
	"github.com/toyshop/storefront/internal/worker"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool
	router     *chi.Mux
	workerPool *worker.Pool
	server     *http.Server
	closers    []closer
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// База данных, миграции и внешние интеграции: кэш токенов, Kafka, каналы уведомлений
	dbPool, integ, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	deps := initDependencies(cfg, dbPool, integ, logger)

	router := setupRouter(deps, logger)

	server := createServer(cfg.RunAddress, router)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         dbPool,
		router:     router,
		workerPool: deps.workerPool,
		server:     server,
		closers:    integ.closers,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.workerPool.Start(ctx)
	a.logger.Info("worker pool started")

	// Запуск HTTP сервера и ожидание сигнала завершения
	serveErr := a.runServer()

	a.shutdown(cancel)

	return serveErr
}
