package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/minhvu2004/animewalls/internal/health"
	"github.com/minhvu2004/animewalls/internal/middleware"
	"github.com/minhvu2004/animewalls/internal/source"
	"github.com/minhvu2004/animewalls/internal/wallpaper"
	"github.com/minhvu2004/animewalls/internal/wallpapers"
	"github.com/minhvu2004/animewalls/pkg/config"
	"github.com/minhvu2004/animewalls/pkg/logger"
	"github.com/minhvu2004/animewalls/pkg/metrics"
)

func main() {
	// Load environment variables from .env if present (optional)
	_ = godotenv.Load()

	logLevel := logger.INFO
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		logLevel = logger.LogLevel(level)
	}
	jsonFormat := os.Getenv("LOG_FORMAT") == "json"
	logger.Init(logLevel, jsonFormat, os.Stdout)

	log := logger.GetLogger().WithContext("component", "api_server")
	log.Info("starting_api_server", "version", "1.0.0")

	cfg := config.Load()
	if cfg.WallhavenAPIKey == "" {
		log.Warn("no_wallhaven_api_key", "message", "searching unauthenticated, expect lower rate limits")
	}

	fetcher := source.NewFetcher(cfg, logger.GetLogger())
	searcher := wallpaper.NewClient(cfg, logger.GetLogger())

	wallpapersHandler := wallpapers.NewHandler(fetcher, searcher, logger.GetLogger())
	healthHandler := health.NewHandler(cfg)
	metricsHandler := metrics.NewHandler()

	router := gin.Default()
	router.Use(middleware.RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthHandler.Healthz)
	router.GET("/readyz", healthHandler.Readyz)
	router.GET("/metrics", metricsHandler.Metrics)

	api := router.Group("/api")
	{
		api.GET("/wallpapers/:username", wallpapersHandler.GetWallpapers)
	}

	log.Info("listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("failed_to_start_api_server", "error", err.Error())
		os.Exit(1)
	}
}
