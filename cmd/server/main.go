package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightquery-service/internal/domain/repository"
	"flightquery-service/internal/infrastructure/config"
	apiRepo "flightquery-service/internal/interface/repository"
	"flightquery-service/internal/interface/rest"
	"flightquery-service/internal/usecase"
	"flightquery-service/pkg/logger"
	"flightquery-service/pkg/metrics"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting Flight Query Service", "version", cfg.AppVersion)

	// Set up metrics
	appMetrics := metrics.NewMetrics("flightquery")

	// Airport reference data: the postgres table is optional enrichment,
	// the static six-airport list is always available.
	var airportRepo repository.AirportRepository = apiRepo.NewStaticAirportRepository()
	if cfg.PostgresDSN != "" {
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		airportRepo = apiRepo.NewGormAirportRepository(gormDB)
		log.Info("Airport reference table enabled")
	}

	// Set up upstream clients
	scheduleRepo := apiRepo.NewHTTPScheduleRepository(cfg.FlightAPIBaseURL, cfg.FlightAPIKey, cfg.FlightAPITimeout, log)
	completionRepo := apiRepo.NewOpenAIRepository(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITimeout, log)

	// Set up the query pipeline
	classifier := usecase.NewModeClassifier(completionRepo, log, appMetrics)
	fetcher := usecase.NewScheduleFetcher(scheduleRepo, log, appMetrics)
	aggregator := usecase.NewScheduleAggregator()
	generator := usecase.NewAnswerGenerator(completionRepo, airportRepo, log, appMetrics)
	orchestrator := usecase.NewQueryOrchestrator(classifier, fetcher, aggregator, generator, airportRepo, log, appMetrics, cfg.DataSource, cfg.OpenAIModel)

	// Set up HTTP server
	handler := rest.NewHandler(orchestrator, airportRepo, log, cfg.AppVersion)
	router := rest.NewRouter(handler, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("Flight Query Service stopped")
}
