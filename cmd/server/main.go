// Package main is the entry point for the vendorledger API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	v1 "vendorledger/internal/infrastructure/http/v1"
	"vendorledger/internal/infrastructure/storage"
	"vendorledger/internal/infrastructure/storage/file"
	"vendorledger/internal/infrastructure/storage/memory"
	"vendorledger/internal/infrastructure/storage/postgres"
	"vendorledger/pkg/logger"
)

func main() {
	// Local development convenience; ignored when no .env exists.
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting vendorledger server")

	// --- Storage backend ---
	backend := storage.Backend(getEnv("STORE_BACKEND", string(storage.BackendMemory)))
	if !backend.Valid() {
		log.Fatalw("unknown STORE_BACKEND", "backend", backend)
	}

	var stores storage.Stores

	switch backend {
	case storage.BackendMemory:
		stores = memory.New().Stores()
		log.Info("using in-memory store")

	case storage.BackendFile:
		path := getEnv("DATA_FILE", "data/vendorledger.json")
		fileStore, err := file.Open(path)
		if err != nil {
			log.Fatalw("failed to open data file", "path", path, "error", err)
		}
		stores = fileStore.Stores()
		log.Infow("using flat-file store", "path", fileStore.Path())

	case storage.BackendPostgres:
		dsn := mustEnv("DATABASE_URL")
		pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
		if err != nil {
			log.Fatalw("failed to connect to database", "error", err)
		}
		defer pool.Close()

		postgres.LogPoolStats(ctx, pool.Pool)
		stores = postgres.NewStore(pool).Stores()
		log.Info("using postgres store")
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Backend: backend,
		Stores:  stores,
		Logger:  log,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port, "backend", backend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}
