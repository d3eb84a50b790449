package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-izcloud-backend/config"
	_ "go-izcloud-backend/docs" // Important for Swagger
	v1 "go-izcloud-backend/internal/delivery/http/v1"
	"go-izcloud-backend/internal/usecase"
	"go-izcloud-backend/pkg/email"
	"go-izcloud-backend/pkg/logger"
	"go-izcloud-backend/pkg/redis"
	"go-izcloud-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           IzCloud Forms Backend
// @version         1.0
// @description     Backend for the IzCloud marketing site: contact and GDPR data-rights form submissions.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting izcloud forms backend", "port", cfg.Port)

	// 3. Setup Redis (optional shared rate-limit store)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 4. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Resend API key not configured - form submissions will fail on dispatch")
	}

	// 5. Setup UseCases
	validate := validation.New()
	contactUC := usecase.NewContactUsecase(emailService, validate)
	gdprUC := usecase.NewGDPRUsecase(emailService, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		GDPRUC:    gdprUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
