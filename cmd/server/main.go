// Package main initializes and starts the taskwarden HTTP server,
// setting up configuration, logging, database connections, repositories,
// services and handlers.
package main

import (
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/taskwarden/internal/config"
	"github.com/atinyakov/taskwarden/internal/db"
	"github.com/atinyakov/taskwarden/internal/logger"
	"github.com/atinyakov/taskwarden/internal/repository"
	"github.com/atinyakov/taskwarden/internal/server/handler/http"
	"github.com/atinyakov/taskwarden/internal/service"
	"go.uber.org/zap"
)

// tokenValidity bounds the lifetime of issued session tokens.
const tokenValidity = 24 * time.Hour

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	buildVersion := version
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	buildDateValue := buildDate
	if buildDateValue == "" {
		buildDateValue = "N/A"
	}
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDateValue)

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET is not set")
	}
	jwtSecret := []byte(options.JWTSecret)

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for users and tasks.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	taskRepo := repository.NewPostgresTaskRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, jwtSecret, tokenValidity)
	taskService := service.NewTaskService(taskRepo)

	// Create HTTP handlers for auth and task endpoints.
	authHandler := &http.AuthHandler{AuthService: authService, Log: zapLogger}
	taskHandler := &http.TaskHandler{TaskService: taskService, Log: zapLogger}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, taskHandler, jwtSecret, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    options.Address,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Address))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
