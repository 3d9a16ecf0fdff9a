// Package main initializes and starts the macguffin tracker server,
// setting up configuration, logging, database connections, repositories,
// services, and handlers.
package main

import (
	"fmt"

	nethttp "net/http"

	"github.com/atinyakov/MacguffinTracker/internal/config"
	"github.com/atinyakov/MacguffinTracker/internal/db"
	"github.com/atinyakov/MacguffinTracker/internal/logger"
	"github.com/atinyakov/MacguffinTracker/internal/notifier"
	"github.com/atinyakov/MacguffinTracker/internal/repository"
	"github.com/atinyakov/MacguffinTracker/internal/server/handler/http"
	"github.com/atinyakov/MacguffinTracker/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port
	secret := []byte(options.JWTSecret)

	// Print build metadata (or "N/A" if unset).
	buildVersion := version
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	buildDateStr := buildDate
	if buildDateStr == "" {
		buildDateStr = "N/A"
	}
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDateStr)

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for users, the catalog, and the ledger.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	catalogRepo := repository.NewPostgresCatalogRepository(postgresDB)
	ledgerRepo := repository.NewPostgresLedgerRepository(postgresDB)

	// The bell is a no-op when no URL is configured.
	bell := notifier.NewBell(options.BellURL, options.BellAPIKey, zapLogger)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, secret, options.TokenTTL)
	catalogService := service.NewCatalogService(catalogRepo)
	inventoryService := service.NewInventoryService(ledgerRepo, catalogRepo, bell)
	leaderboardService := service.NewLeaderboardService(ledgerRepo)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	catalogHandler := &http.CatalogHandler{CatalogService: catalogService}
	inventoryHandler := &http.InventoryHandler{InventoryService: inventoryService}
	leaderboardHandler := &http.LeaderboardHandler{LeaderboardService: leaderboardService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, catalogHandler, inventoryHandler, leaderboardHandler, secret, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
