package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pronote-gateway/config"
	_ "pronote-gateway/docs" // Swagger docs
	"pronote-gateway/internal/httpserver"
	"pronote-gateway/internal/telemetry"
	"pronote-gateway/pkg/log"
	"pronote-gateway/pkg/pronote"
)

// @title       Pronote Gateway API
// @description Backend facade that signs into a Pronote school portal and republishes grades, timetable and homework as normalized JSON.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Pronote Gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Telemetry
	tracer, meter, telemetryShutdown, err := telemetry.Init(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to initialize telemetry: ", err)
		return
	}
	defer telemetryShutdown()

	metrics, err := telemetry.NewMetrics(tracer, meter)
	if err != nil {
		logger.Error(ctx, "Failed to create metrics: ", err)
		return
	}

	// 4. Portal client
	var portal pronote.Authenticator
	if cfg.Pronote.Mock {
		logger.Warn(ctx, "MOCK mode enabled, no portal traffic will be sent")
	} else {
		portal = pronote.NewClient(cfg.Pronote.URL, cfg.Pronote.Timeouts.HTTP)
		logger.Infof(ctx, "Portal: %s", cfg.Pronote.URL)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Portal:      portal,
		Metrics:     metrics,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
