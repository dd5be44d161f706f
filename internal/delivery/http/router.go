package http

import (
	"net/http"

	"advocate-directory/internal/delivery/http/handler"
	"advocate-directory/internal/delivery/http/middleware"
	"advocate-directory/internal/infrastructure/metrics"
	"advocate-directory/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	advocateHandler   *handler.AdvocateHandler
	healthHandler     *handler.HealthHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	metricsEnabled    bool
}

func NewRouter(
	advocateHandler *handler.AdvocateHandler,
	healthHandler *handler.HealthHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsEnabled bool,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		advocateHandler:   advocateHandler,
		healthHandler:     healthHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
		metricsEnabled:    metricsEnabled,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Advocate directory (public, read-only)
	api.HandleFunc("/advocates", r.advocateHandler.SearchAdvocates).Methods(http.MethodGet, http.MethodOptions)

	// Unversioned path kept for the web client
	r.router.HandleFunc("/api/advocates", r.advocateHandler.SearchAdvocates).Methods(http.MethodGet, http.MethodOptions)

	if r.metricsEnabled {
		r.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	}

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})

	r.router.Use(middleware.RequestID)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
