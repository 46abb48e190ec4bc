package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-form-backend/config"
	_ "contact-form-backend/docs" // Important for Swagger
	v1 "contact-form-backend/internal/delivery/http/v1"
	"contact-form-backend/internal/usecase"
	"contact-form-backend/pkg/email"
	"contact-form-backend/pkg/fallback"
	"contact-form-backend/pkg/logger"
	"contact-form-backend/pkg/metrics"
	"contact-form-backend/pkg/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           Contact Form API
// @version         1.0
// @description     Emails website contact form submissions and keeps a local copy when email delivery fails.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting contact form backend", "port", cfg.Port)

	// 3. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Register(registry)

	// 4. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - submissions will be saved locally only")
	}

	// 5. Setup Fallback Store
	store := fallback.NewFileStore(cfg.FallbackDir)
	logger.Log.Info("Fallback submissions directory", "dir", store.Dir())

	// 6. Setup UseCases
	contactUC := usecase.NewContactUsecase(emailService, store, validation.New())
	healthUC := usecase.NewHealthUsecase(emailService.IsConfigured(), store.Dir())

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Gatherer:  registry,
		Config:    cfg,
	})

	// 8. Start Server
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

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// Long enough for an in-flight SMTP send to finish
	ctx, cancel := context.WithTimeout(context.Background(), cfg.SMTPTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
