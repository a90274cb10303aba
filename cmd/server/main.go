package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ankush0407/salon-backend/internal/api"
	"github.com/ankush0407/salon-backend/internal/auth"
	"github.com/ankush0407/salon-backend/internal/config"
	"github.com/ankush0407/salon-backend/internal/repository"
	"github.com/ankush0407/salon-backend/internal/rowstore"
	"github.com/ankush0407/salon-backend/internal/service"
	"github.com/ankush0407/salon-backend/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting salon backend server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize the row store backend
	var store rowstore.Store
	switch cfg.Store.Backend {
	case config.BackendSheets:
		sheets, err := rowstore.NewSheets(context.Background(), cfg.Store.SpreadsheetID, cfg.Store.CredentialsFile, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Google Sheets")
		}
		store = sheets
	case config.BackendPostgres:
		pg, err := rowstore.NewPostgres(&cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer pg.Close()

		migrationsPath := os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			migrationsPath = "./migrations"
		}
		if err := pg.RunMigrations(migrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
		if err := pg.EnsureTables(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed sheet tables")
		}
		store = pg
	case config.BackendMemory:
		log.Warn().Msg("Using in-memory row store; all data is lost on exit")
		store = rowstore.NewMemory()
	}

	// Initialize repositories and services
	repos := repository.New(store)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	services := service.NewServices(repos, tokens, cfg, log)

	// Initialize router
	router := api.NewRouter(services, tokens, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("store", cfg.Store.Backend).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
