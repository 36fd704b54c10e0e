package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/handlers"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	setupMiddleware(r, deps, logger)

	setupRoutes(r, deps, logger)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, deps *dependencies, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(handlers.MetricsMiddleware(deps.metrics))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, logger *zap.Logger) {
	h := deps.handlers

	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)
	r.Method(http.MethodGet, "/metrics", deps.metrics.Handler())

	// Публичные эндпоинты витрины и платежного шлюза
	r.Post("/api/orders/create", h.orders.CreateOrder)
	r.Get("/api/orders/{id}", h.orders.GetOrder)
	r.Get("/api/orders/{id}/pay/modulbank", h.payment.PaymentPage)
	r.Post("/api/orders/{id}/pay", h.payment.Callback)
	r.Post("/api/promo-codes/validate", h.promo.Validate)
	r.Get("/api/products/{id}", h.products.GetProduct)
	r.Post("/api/admin/login", h.admin.Login)

	// Админка
	r.Group(func(r chi.Router) {
		r.Use(handlers.AdminAuthMiddleware(deps.jwtManager, logger))

		r.Get("/api/orders", h.orders.ListOrders)
		r.Patch("/api/orders/{id}", h.orders.UpdateOrderStatus)
		r.Delete("/api/orders/{id}", h.orders.CancelOrder)

		r.Get("/api/promo-codes", h.promo.List)
		r.Post("/api/promo-codes", h.promo.Create)
		r.Get("/api/promo-codes/{id}", h.promo.Get)
		r.Put("/api/promo-codes/{id}", h.promo.Update)
		r.Delete("/api/promo-codes/{id}", h.promo.Delete)

		r.Post("/api/products/bulk", h.products.BulkCreate)
	})
}
