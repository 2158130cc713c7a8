package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/pedroganco/sanum/internal/api"
	"github.com/pedroganco/sanum/internal/app"
	"github.com/pedroganco/sanum/internal/config"
	"github.com/pedroganco/sanum/internal/domain"
	"github.com/pedroganco/sanum/internal/middleware"
)

var version = "dev"

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := config.NewLogger(cfg.Logging, os.Stdout)
	if configManager.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if file := configManager.ConfigFileUsed(); file != "" {
		logger.WithField("file", file).Info("Loaded configuration file")
	}

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services, err := app.Build(ctx, cfg, logger, app.Options{StartPruner: true})
	if err != nil {
		logger.WithError(err).Fatal("Failed to build services")
	}
	defer func() {
		if err := services.Close(); err != nil {
			logger.WithError(err).Warn("Failed to release resources")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server := api.NewServer(cfg, logger, api.Dependencies{
		Reports:      services.Reports,
		Scans:        services.Scans,
		Markers:      services.Knowledge,
		Metrics:      middleware.NewMetrics(registry),
		HealthChecks: services.HealthChecks(),
		Version:      version,
	})

	// Only logging is reloadable; everything else needs a restart.
	configManager.Watch(func(updated *domain.Config) {
		config.ApplyLogging(logger, updated.Logging)
		logger.WithField("level", updated.Logging.Level).Info("Configuration reloaded")
	}, func(err error) {
		logger.WithError(err).Error("Ignoring invalid configuration change")
	})

	logger.WithFields(logrus.Fields{
		"host":    cfg.Server.Host,
		"port":    cfg.Server.Port,
		"version": version,
	}).Info("Starting Sanum server")

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Error("Server failed")
		return
	}

	logger.Info("Server stopped")
}
