package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-relay/config"
	_ "contact-relay/docs" // Important for Swagger
	v1 "contact-relay/internal/delivery/http/v1"
	"contact-relay/internal/usecase"
	"contact-relay/pkg/email"
	"contact-relay/pkg/logger"
	"contact-relay/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Contact Relay API
// @version         1.0
// @description     Relays contact form submissions to the Brevo transactional email API.
// @BasePath        /
//
//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting contact relay",
		"port", cfg.Port,
		"brevo_api_key", configuredLabel(cfg.HasBrevoKey()),
		"receiver_email", cfg.ReceiverEmail,
	)

	// 3. Setup Email Provider
	brevo := email.NewBrevoClient(cfg)
	if !brevo.IsConfigured() {
		logger.Log.Warn("BREVO_API_KEY not set - /send-email will answer 500 until it is configured")
	}

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(brevo, cfg, validation.New())
	healthUC := usecase.NewHealthUsecase(cfg.ServiceName)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Email proxy server running", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
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

func configuredLabel(ok bool) string {
	if ok {
		return "Configured"
	}
	return "Not configured"
}
