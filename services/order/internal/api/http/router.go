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

const serviceName = "order"

// NewRouter собирает роутер Order Service.
// checks проверки готовности для /health (ping PostgreSQL и т.п.).
func NewRouter(handler *Handler, logger *zap.Logger, checks ...platformhealth.Check) http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(platformobservability.HTTPMiddleware(serviceName, logger))
	router.Use(platformmetrics.HTTPMiddleware(serviceName))

	router.Route("/api/v1/orders", func(r chi.Router) {
		r.Post("/", handler.CreateOrder)
		r.Get("/", handler.FindAll)
		r.Get("/{order-id}", handler.FindByID)
	})
	router.Get("/api/v1/order-lines/order/{order-id}", handler.FindOrderLines)

	router.Get("/health", platformhealth.Handler(2*time.Second, checks...))
	router.Handle("/metrics", platformmetrics.Handler())

	return router
}
