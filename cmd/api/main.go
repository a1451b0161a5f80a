// NeuroNap API
//
// REST API computing sleep debt, circadian rhythm profiles, predicted sleep
// quality and recommendations from simple time-of-day inputs.
//
//	@title			NeuroNap API
//	@version		1.0
//	@description	Sleep metrics: debt, circadian rhythm, energy curve, quality prediction and recommendations.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	Registration and authentication endpoints
//
//	@tag.name			sleep-logs
//	@tag.description	Sleep log endpoints
//
//	@tag.name			insights
//	@tag.description	Computed reports, averages and quality predictions
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/mayankpokhriyal/neuronap/internal/api"
	"github.com/mayankpokhriyal/neuronap/internal/api/handler"
	"github.com/mayankpokhriyal/neuronap/internal/config"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"github.com/mayankpokhriyal/neuronap/internal/quality"
	"github.com/mayankpokhriyal/neuronap/internal/repository"
	"github.com/mayankpokhriyal/neuronap/internal/seed"
	"github.com/mayankpokhriyal/neuronap/internal/service"
	"github.com/mayankpokhriyal/neuronap/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "neuronap-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.SleepLog{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Train the quality model before serving traffic. A missing dataset is
	// absorbed: predictions then return the fixed default.
	model := quality.Train(cfg.QualityDatasetPath)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sleepLogRepo := repository.NewSleepLogRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	sleepLogService := service.NewSleepLogService(sleepLogRepo, userRepo)
	metricsService := service.NewMetricsService(sleepLogRepo, userRepo)
	insightsService := service.NewInsightsService(metricsService, model, sleepLogRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	sleepLogHandler := handler.NewSleepLogHandler(sleepLogService)
	insightsHandler := handler.NewInsightsHandler(metricsService, insightsService, model)

	// Setup router
	router := api.NewRouter(userHandler, sleepLogHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
