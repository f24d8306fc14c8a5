// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the agency site API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"regsite/internal/ai"
	"regsite/internal/audit"
	"regsite/internal/cache"
	"regsite/internal/config"
	"regsite/internal/database"
	"regsite/internal/handlers"
	"regsite/internal/middleware"
	"regsite/internal/obs"
	"regsite/internal/router"
	"regsite/internal/storage"
	"regsite/internal/store"
	"regsite/internal/token"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the default super-admin (no-op if users already exist).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the response cache. The API degrades to
	// uncached reads without it.
	var respCache *cache.ResponseCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, response caching disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		respCache = cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)
	}

	// Connect to S3-compatible object storage (optional; uploads are
	// rejected with 503 without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, file uploads disabled")
	}

	// Initialize the AI assistant. Without an API key it answers with a
	// fixed notice instead of calling the provider.
	assistant := ai.NewAssistant(ai.ProviderConfig{
		APIKey: cfg.GroqAPIKey,
		Model:  cfg.GroqModel,
	})
	slog.Info("ai assistant initialized", "configured", assistant.Configured())

	// Initialize data stores.
	stores := handlers.Stores{
		Users:        store.NewUserStore(db),
		News:         store.NewNewsStore(db),
		Publications: store.NewPublicationStore(db),
		Regulations:  store.NewRegulationStore(db),
		Media:        store.NewMediaStore(db),
		Pages:        store.NewPageStore(db),
		Portals:      store.NewPortalStore(db),
		FAQs:         store.NewFAQStore(db),
		BoardMembers: store.NewBoardMemberStore(db),
		Ads:          store.NewAdStore(db),
		Settings:     store.NewSettingsStore(db),
		Contacts:     store.NewContactStore(db),
	}

	tokens := token.NewService(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	trail := audit.NewRecorder(store.NewAuditStore(db))
	gate := middleware.NewGate(tokens, stores.Users)

	obs.Init()

	api := handlers.NewAPI(cfg, tokens, trail, stores, storageClient, respCache, assistant)

	// Set up the Chi router with all middleware and routes.
	r := router.New(cfg, gate, api)

	// WriteTimeout must accommodate the AI chat endpoint waiting on the
	// upstream model.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
