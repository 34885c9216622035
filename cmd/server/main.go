package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	api "itemshare-backend/internal/api/http"
	"itemshare-backend/internal/config"
	"itemshare-backend/internal/jobs"
	"itemshare-backend/internal/logger"
	"itemshare-backend/internal/repository/postgres"
	"itemshare-backend/internal/scheduler"
	"itemshare-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ItemShare Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	userSvc := service.NewUserService(store)
	itemSvc := service.NewItemService(store)
	bookingSvc := service.NewBookingService(store)
	requestSvc := service.NewItemRequestService(store)

	// Initialize HTTP handlers
	userHandler := api.NewUserHandler(userSvc)
	itemHandler := api.NewItemHandler(itemSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	requestHandler := api.NewItemRequestHandler(requestSvc)

	router := api.NewRouter(userHandler, itemHandler, bookingHandler, requestHandler)

	// Start the housekeeping scheduler alongside the server
	jobRunner := jobs.NewJobRunner(store, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
