package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/metrics"
	"github.com/toyshop/storefront/internal/utils/jwt"
)

type contextKey string

const (
	AdminSubjectKey contextKey = "admin_subject"
	RequestIDKey    contextKey = "request_id"
)

// requestIDHeader заголовок сквозного идентификатора запроса
const requestIDHeader = "X-Request-ID"

// maxRequestIDLen входящие идентификаторы длиннее заменяются новыми
const maxRequestIDLen = 128

// AdminAuthMiddleware пропускает только запросы с действующим токеном администратора
func AdminAuthMiddleware(jwtManager *jwt.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSON(w, logger, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
				return
			}

			// "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeJSON(w, logger, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
				return
			}

			subject, err := jwtManager.Validate(parts[1])
			if err != nil {
				requestID, _ := r.Context().Value(RequestIDKey).(string)
				logger.Debug("admin token rejected",
					zap.String("request_id", requestID),
					zap.Error(err),
				)
				writeJSON(w, logger, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
				return
			}

			ctx := context.WithValue(r.Context(), AdminSubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDMiddleware берет X-Request-ID из запроса или генерирует новый
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" || len(requestID) > maxRequestIDLen {
				requestID = uuid.New().String()
			}
			ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
			w.Header().Set(requestIDHeader, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware логирует HTTP запросы
func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				requestID, _ := r.Context().Value(RequestIDKey).(string)
				logger.Info("HTTP request",
					zap.String("request_id", requestID),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Duration("duration", time.Since(start)),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// RecoveryMiddleware обрабатывает паники
func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					requestID, _ := r.Context().Value(RequestIDKey).(string)
					logger.Error("panic recovered",
						zap.String("request_id", requestID),
						zap.Any("panic", rec),
						zap.Stack("stack"),
					)
					writeJSON(w, logger, http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// MetricsMiddleware считает запросы и задержку по шаблону маршрута
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			// Шаблон известен только после маршрутизации
			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.Requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
			m.LatencyMS.WithLabelValues(route, r.Method).Observe(float64(time.Since(start).Milliseconds()))
		})
	}
}

// GetAdminSubject извлекает subject токена администратора из контекста
func GetAdminSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(AdminSubjectKey).(string)
	return subject, ok
}
