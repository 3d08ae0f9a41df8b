package main

import (
	"log/slog"

	"ridgecast/internal/advisory"
	"ridgecast/internal/config"
	"ridgecast/internal/geoproxy"
	"ridgecast/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	_ "ridgecast/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	advisoryService advisory.Service
	geoService      geoproxy.Service
	metrics         *observability.Metrics
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	router.Use(metrics.GinMiddleware())

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		advisoryService: advisory.NewAdvisoryService(cfg, logger),
		geoService:      geoproxy.NewGeoService(cfg, logger),
		metrics:         metrics,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
