package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mayankpokhriyal/neuronap/internal/api/handler"
	"github.com/mayankpokhriyal/neuronap/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/mayankpokhriyal/neuronap/docs"
)

type Router struct {
	userHandler     *handler.UserHandler
	sleepLogHandler *handler.SleepLogHandler
	insightsHandler *handler.InsightsHandler
}

func NewRouter(userHandler *handler.UserHandler, sleepLogHandler *handler.SleepLogHandler, insightsHandler *handler.InsightsHandler) *Router {
	return &Router{
		userHandler:     userHandler,
		sleepLogHandler: sleepLogHandler,
		insightsHandler: insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Prometheus metrics
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Register)
			r.Post("/login", rt.userHandler.Login)
			r.Get("/{userId}", rt.userHandler.GetByID)

			r.Route("/{userId}", func(r chi.Router) {
				// Sleep logs (nested under users)
				r.Route("/sleep-logs", func(r chi.Router) {
					r.Post("/", rt.sleepLogHandler.Create)
					r.Get("/", rt.sleepLogHandler.List)
				})

				// Computed insights
				r.Get("/report", rt.insightsHandler.Report)
				r.Get("/report/export", rt.insightsHandler.Export)
				r.Get("/averages", rt.insightsHandler.Averages)
			})
		})

		// Direct quality prediction
		r.Post("/quality/predictions", rt.insightsHandler.Predict)
	})

	return r
}
