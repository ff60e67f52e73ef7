package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/localhub/localhub/internal/adapters/googlemaps"
	"github.com/localhub/localhub/internal/adapters/http"
	"github.com/localhub/localhub/internal/core/usecases"
	"github.com/localhub/localhub/internal/pkg/config"
	"github.com/localhub/localhub/internal/pkg/logging"
	"github.com/localhub/localhub/internal/pkg/telemetry"
	"github.com/localhub/localhub/internal/session"
)

func main() {
	cfg, err := config.Load("localhub")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logging.Setup(logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Upstream provider. A missing API key fails here, not on first use.
	client, err := googlemaps.NewClient(
		cfg.GoogleMaps.APIKey,
		cfg.GoogleMaps.BaseURL,
		time.Duration(cfg.GoogleMaps.Timeout)*time.Second,
		slog.Default(),
	)
	if err != nil {
		log.Fatalf("google maps client: %v", err)
	}

	provider := googlemaps.NewCachedProvider(client, googlemaps.CacheTTLs{
		Search:        cfg.Cache.SearchTTLDuration(),
		Details:       cfg.Cache.DetailsTTLDuration(),
		Geocode:       cfg.Cache.GeocodeTTLDuration(),
		SweepInterval: cfg.Cache.SweepIntervalDuration(),
	}, nil)
	defer provider.Stop()

	// Session store
	sessions := session.NewStore(
		session.WithExpiry(cfg.Session.ExpiryDuration()),
		session.WithSweepInterval(cfg.Session.SweepIntervalDuration()),
	)
	defer sessions.Stop()

	// Use cases
	searchSvc := usecases.NewSearchService(provider, sessions, slog.Default())
	placeSvc := usecases.NewPlaceService(provider)
	directionsSvc := usecases.NewDirectionsService(provider)
	mapSvc := usecases.NewMapService(sessions)

	deps := &http.Dependencies{
		Search:     searchSvc,
		Places:     placeSvc,
		Directions: directionsSvc,
		Maps:       mapSvc,
		Sessions:   sessions,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    1024 * 1024, // 1 MB max request body
		AppName:      "LocalHub",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "https://chat.openai.com",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
