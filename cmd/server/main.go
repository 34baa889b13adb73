package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/groundwork/api/internal/config"
	"github.com/stwalsh4118/groundwork/api/internal/handlers"
	"github.com/stwalsh4118/groundwork/api/internal/logger"
	"github.com/stwalsh4118/groundwork/api/internal/metrics"
	"github.com/stwalsh4118/groundwork/api/internal/middleware"
	"github.com/stwalsh4118/groundwork/api/internal/rules"
	"github.com/stwalsh4118/groundwork/api/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting Groundwork API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Load the zoning rule table (built-in dataset plus optional overlay)
	table, err := rules.Load(cfg.Rules.Dir)
	if err != nil {
		log.Fatal("Failed to load zoning rule table", err, map[string]interface{}{
			"rules_dir": cfg.Rules.Dir,
		})
	}

	log.Info("Zoning rule table loaded", map[string]interface{}{
		"dataset_version": table.Version(),
		"zones":           table.ZoneCount(),
		"rules_dir":       cfg.Rules.Dir,
	})

	metrics.ExposeBuildInfo(handlers.APIVersion)

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS -> Metrics
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))
	router.Use(middleware.Metrics())

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(table, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Initialize service layer
	analysisService := services.NewAnalysisService(table, log)
	valuationService := services.NewValuationService(log)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisService, valuationService)
	zonesHandler := handlers.NewZonesHandler(analysisService)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		analysis := v1.Group("/analysis")
		{
			analysis.POST("", analysisHandler.Analyze)
			analysis.POST("/valuation", analysisHandler.Valuate)
		}

		zones := v1.Group("/zones")
		{
			zones.GET("", zonesHandler.List)
			zones.GET("/:code", zonesHandler.Rules)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
