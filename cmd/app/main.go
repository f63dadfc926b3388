package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizhub/internal/api/v1/router"
	"quizhub/internal/config"
	"quizhub/internal/logger"
	"quizhub/internal/repository"
	"quizhub/internal/service"

	"github.com/joho/godotenv"
)

// @title QuizHub API
// @version 1.0
// @description Course, day and quiz authoring and delivery for the QuizHub learning platform.
// @BasePath /api
// @Schemes http https

func main() {
	// 1. Load configuration
	envErr := godotenv.Load()
	logger := logger.New()
	if envErr != nil {
		logger.Warn().Msg("Warning: no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Msgf("Error loading config: %v", err)
	}
	logger.Info().Str("environment", cfg.Environment).Str("store_driver", cfg.StoreDriver).Msg("App environment loaded")

	// 2. Open the store
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	store, err := repository.OpenStore(startCtx, cfg, logger)
	if err != nil {
		logger.Fatal().Msgf("Failed to open store: %v", err)
	}
	if err := store.EnsureSchema(startCtx); err != nil {
		logger.Fatal().Msgf("Failed to prepare store schema: %v", err)
	}

	// 3. Resolve the admin credential
	var secrets service.SecretResolver
	if cfg.AdminPasswordSecret != "" {
		sm, err := service.NewSecretManagerResolver(startCtx)
		if err != nil {
			logger.Fatal().Msgf("Failed to create Secret Manager client: %v", err)
		}
		defer sm.Close()
		secrets = sm
	}
	admin, err := service.LoadAdminCredentials(startCtx, cfg, secrets)
	if err != nil {
		logger.Fatal().Msgf("Failed to load admin credentials: %v", err)
	}

	// 4. Seed sample courses
	if cfg.SeedDefaults {
		if err := service.SeedDefaults(startCtx, store.Courses(), logger); err != nil {
			logger.Fatal().Msgf("Failed to seed default courses: %v", err)
		}
	}

	// 5. Create HTTP server
	timeout := time.Duration(cfg.RequestTimeoutSec) * time.Second
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.New(cfg, store, admin, logger),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  60 * time.Second,
	}

	// 6. Start server in a goroutine
	go func() {
		logger.Info().Msgf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Msgf("Listen: %s", err)
		}
	}()

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutdown signal received, exiting...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := store.Close(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to close store")
	}
	logger.Info().Msg("Server shut down gracefully")
}
