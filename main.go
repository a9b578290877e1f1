package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"inka-simulator/agenda"
	"inka-simulator/config"
	httpLayer "inka-simulator/http"
	"inka-simulator/repository"
	"inka-simulator/service"
	"inka-simulator/tracing"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	shutdownTracing, err := tracing.Init(cfg.Tracing.ServiceName, cfg.Tracing.OTLPEndpoint)
	if err != nil {
		log.Fatalf("init tracing: %v", err)
	}

	// Historial de simulaciones: postgres si hay DSN, si no sqlite local.
	var simRepo repository.SimulationRepository
	var reminderRepo repository.ReminderRepository
	var closeStore func() error

	if cfg.Database.PostgresDSN != "" {
		pg, err := repository.NewPostgresStore(cfg.Database.PostgresDSN)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		sqlite, err := repository.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Fatalf("open sqlite: %v", err)
		}
		simRepo = pg
		reminderRepo = sqlite
		closeStore = func() error {
			sqlite.Close()
			return pg.Close()
		}
	} else {
		sqlite, err := repository.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Fatalf("open sqlite: %v", err)
		}
		simRepo = sqlite
		reminderRepo = sqlite
		closeStore = sqlite.Close
	}

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		cache = repository.NewRedisCache(cfg.Redis.Addr)
	} else {
		cache = repository.NewMockCache()
	}

	limits := service.Limits{
		MaxPrincipal:   decimal.NewFromFloat(cfg.Limits.MaxPrincipal),
		MaxTermMonths:  cfg.Limits.MaxTermMonths,
		MaxMonthlyRate: decimal.NewFromFloat(cfg.Limits.MaxMonthlyRate),
	}

	simulationService := service.NewSimulationService(simRepo, cache, limits)
	simulationHandler := httpLayer.NewSimulationHandler(simulationService)

	termService := service.NewTermRecommendationService(limits)
	termHandler := httpLayer.NewTermRecommendationHandler(termService)

	cycleStart, err := cfg.CycleStartDate()
	if err != nil {
		log.Fatalf("config agenda: %v", err)
	}
	agendaService := service.NewAgendaService(reminderRepo, cycleStart)
	agendaHandler := httpLayer.NewAgendaHandler(agendaService)

	scheduler := agenda.NewScheduler(agendaService)
	if err := scheduler.Register(cfg.Agenda.ReminderCron); err != nil {
		log.Fatalf("register scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/simulation/credit",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(simulationHandler.SimulateCredit),
		),
	)

	mux.Handle(
		"/simulation/investment",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(simulationHandler.SimulateInvestment),
		),
	)

	mux.Handle(
		"/loan/recommend-term",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(termHandler.RecommendTerm),
		),
	)

	mux.HandleFunc("/agenda/reminders", agendaHandler.Reminders)
	mux.HandleFunc("/agenda/week", agendaHandler.Week)
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("[INFO] API corriendo en http://localhost%s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
	if err := closeStore(); err != nil {
		log.Printf("Error closing store: %v", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Printf("Error shutting down tracing: %v", err)
	}

	log.Println("Server exited")
}
