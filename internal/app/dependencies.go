package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/cdek"
	"github.com/toyshop/storefront/internal/config"
	"github.com/toyshop/storefront/internal/domain"
	"github.com/toyshop/storefront/internal/handlers"
	"github.com/toyshop/storefront/internal/metrics"
	"github.com/toyshop/storefront/internal/modulbank"
	"github.com/toyshop/storefront/internal/notify"
	"github.com/toyshop/storefront/internal/repository/postgres"
	"github.com/toyshop/storefront/internal/service"
	"github.com/toyshop/storefront/internal/utils/jwt"
	"github.com/toyshop/storefront/internal/utils/password"
	"github.com/toyshop/storefront/internal/worker"
)

// repositories содержит все репозитории приложения
type repositories struct {
	order   domain.OrderRepository
	product domain.ProductRepository
	promo   domain.PromoCodeRepository
}

// services содержит все сервисы приложения
type services struct {
	order   domain.OrderService
	payment domain.PaymentService
	promo   domain.PromoService
	product domain.ProductService
	admin   domain.AdminAuthService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	orders   *handlers.OrdersHandler
	payment  *handlers.PaymentHandler
	promo    *handlers.PromoHandler
	products *handlers.ProductsHandler
	admin    *handlers.AdminHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	metrics    *metrics.Metrics
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, integ *integrations, logger *zap.Logger) *dependencies {
	repos := &repositories{
		order:   postgres.NewOrderRepository(dbPool),
		product: postgres.NewProductRepository(dbPool),
		promo:   postgres.NewPromoCodeRepository(dbPool),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.AdminTokenSecret, cfg.AdminTokenTTL)

	// Побочные эффекты оплаты: уведомления и отправление СДЭК
	dispatcher := notify.NewDispatcher(logger, integ.channels...)
	var booker domain.ShipmentBooker
	if cfg.CDEK.Enabled() {
		booker = cdek.NewClient(cdek.Config{
			BaseURL:        cfg.CDEK.BaseURL,
			ClientID:       cfg.CDEK.ClientID,
			ClientSecret:   cfg.CDEK.ClientSecret,
			TariffCode:     cfg.CDEK.TariffCode,
			SenderCityCode: cfg.CDEK.SenderCityCode,
			ShipmentPoint:  cfg.CDEK.ShipmentPoint,
		}, integ.tokens, logger)
	} else {
		logger.Warn("CDEK credentials are not configured, shipments will not be booked")
	}
	workerPool := worker.NewPool(
		cfg.WorkerPoolSize,
		cfg.WorkerQueueSize,
		repos.order,
		repos.product,
		dispatcher,
		booker,
		m,
		logger,
	)

	gateway := modulbank.NewGateway(modulbank.Config{
		MerchantID:       cfg.Modulbank.MerchantID,
		SecretKey:        cfg.Modulbank.SecretKey,
		PaymentURL:       cfg.Modulbank.PaymentURL,
		PublicBaseURL:    cfg.PublicBaseURL,
		Testing:          cfg.Modulbank.Testing,
		RequireSignature: cfg.Modulbank.RequireSignature,
	})

	svcs := &services{
		order:   service.NewOrderService(repos.order, repos.product, repos.promo, workerPool, logger),
		payment: service.NewPaymentService(repos.order, gateway, workerPool, m, logger),
		promo:   service.NewPromoService(repos.promo, logger),
		product: service.NewProductService(repos.product, logger),
		admin:   service.NewAdminAuthService(cfg.AdminPasswordHash, passwordHasher, jwtManager, logger),
	}

	hdlrs := &handlerSet{
		orders:   handlers.NewOrdersHandler(svcs.order, logger),
		payment:  handlers.NewPaymentHandler(svcs.payment, logger),
		promo:    handlers.NewPromoHandler(svcs.promo, logger),
		products: handlers.NewProductsHandler(svcs.product, logger),
		admin:    handlers.NewAdminHandler(svcs.admin, logger),
		health:   handlers.NewHealthHandler(dbPool, integ.cachePing, logger),
	}

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		metrics:    m,
		workerPool: workerPool,
	}
}
