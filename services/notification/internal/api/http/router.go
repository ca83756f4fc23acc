package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	platformhealth "github.com/shestoi/GoCommerce/platform/health/http"
	platformmetrics "github.com/shestoi/GoCommerce/platform/metrics"
)

const serviceName = "notification"

// NewRouter служебный роутер Notification Service: /health и /metrics
func NewRouter(checks ...platformhealth.Check) http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(platformmetrics.HTTPMiddleware(serviceName))

	router.Get("/health", platformhealth.Handler(2*time.Second, checks...))
	router.Handle("/metrics", platformmetrics.Handler())

	return router
}
