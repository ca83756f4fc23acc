package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	platformhealth "github.com/shestoi/GoCommerce/platform/health/http"
	platformmetrics "github.com/shestoi/GoCommerce/platform/metrics"
	platformobservability "github.com/shestoi/GoCommerce/platform/observability"
)

const serviceName = "payment"

// NewRouter собирает роутер Payment Service
func NewRouter(handler *Handler, logger *zap.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(platformobservability.HTTPMiddleware(serviceName, logger))
	router.Use(platformmetrics.HTTPMiddleware(serviceName))

	router.Post("/api/v1/payments", handler.CreatePayment)

	router.Get("/health", platformhealth.Handler(time.Second))
	router.Handle("/metrics", platformmetrics.Handler())

	return router
}
