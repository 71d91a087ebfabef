package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/config"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/database"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/handlers"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/services"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/workday"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	logger := log.Sugar()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using system environment variables")
	}
	cfg := config.Load()

	db := database.Connect(cfg.PostgresDSN, logger)

	wdClient := workday.NewClient(workday.Config{
		MaxRetries:     cfg.FetchRetries,
		BaseDelay:      cfg.FetchBaseDelay,
		MaxDelay:       cfg.FetchMaxDelay,
		RequestTimeout: cfg.FetchTimeout,
		RatePerSec:     cfg.FetchRatePerSec,
	}, logger)

	bookmarkService := services.NewBookmarkService(db)
	searchService := services.NewSearchService(wdClient, bookmarkService, cfg.SearchWorkers, logger)

	searchHandler := handlers.NewSearchHandler(searchService)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", handlers.HealthCheck)
	r.POST("/search", searchHandler.PostSearch)
	r.GET("/bookmarks", bookmarkHandler.List)
	r.POST("/bookmarks", bookmarkHandler.Create)
	r.PATCH("/bookmarks", bookmarkHandler.Update)

	logger.Infof("API listening on :%s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
