package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cavebeat-backend/config"
	_ "cavebeat-backend/docs" // Important for Swagger
	"cavebeat-backend/internal/app"
	v1 "cavebeat-backend/internal/delivery/http/v1"
	"cavebeat-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title           CaveBeat Backend API
// @version         1.0
// @description     Hire team form intake for the CaveBeat studio site.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting CaveBeat backend", "port", cfg.Port, "environment", cfg.AppEnv)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup services (Redis and Postgres are optional)
	ctx := context.Background()
	application := app.New(ctx, cfg, logger.Log)
	defer application.Close()

	// 4. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		HireTeamUC: application.HireTeamUC,
		HealthUC:   application.HealthUC,
		Redis:      application.Redis,
		Config:     cfg,
		Logger:     logger.Log,
	})

	// 5. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()
	logger.Log.Info("Server listening", "addr", srv.Addr)

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// In-flight submissions finish their sends before the process exits
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
