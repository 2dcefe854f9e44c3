package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/analytics"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/api/router"
	appconfig "github.com/faisalchaudhry-debug/HSM-dermatology/internal/config"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/leads"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/observability/metrics"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/site"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/voice"
	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

func main() {
	// Load .env in development; production injects real env vars.
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting harley street medics API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Clinic locations and metrics
	reg := registry.New(cfg.DefaultFormWebhook)
	metricsHandler, leadMetrics, pageMetrics, voiceMetrics := setupMetrics()

	// Analytics event sink
	sink := setupSink(cfg, logger)
	defer closeSink(sink)

	// Lead capture
	forwarder := leads.NewForwarder(cfg.WebhookTimeout, logger)
	leadRepo := leads.NewInMemoryRepository()
	leadService := leads.NewService(reg, forwarder, leadRepo, sink, leadMetrics, logger)

	// Initialize handlers
	leadsHandler := leads.NewHandler(leadService, cfg.CalendarURL, logger)
	siteHandler := site.NewHandler(reg, cfg.CalendarURL, pageMetrics, logger)

	var voiceHandler *voice.Handler
	if cfg.GeminiAPIKey != "" {
		voiceHandler = voice.NewHandler(voice.HandlerConfig{
			Registry: reg,
			Leads:    leadService,
			Model:    cfg.GeminiModel,
			APIKey:   cfg.GeminiAPIKey,
			Endpoint: cfg.GeminiLiveURL,
			Metrics:  voiceMetrics,
			Logger:   logger,
		})
	} else {
		logger.Warn("GEMINI_API_KEY not set, voice agent disabled")
	}

	// Setup router
	routerCfg := &router.Config{
		Logger:             logger,
		SiteHandler:        siteHandler,
		LeadsHandler:       leadsHandler,
		VoiceHandler:       voiceHandler,
		MetricsHandler:     metricsHandler,
		AdminJWTSecret:     cfg.AdminJWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// setupMetrics registers the application collectors on a private registry
// and returns the scrape handler alongside the typed metric sets.
func setupMetrics() (http.Handler, *metrics.LeadMetrics, *metrics.PageMetrics, *metrics.VoiceMetrics) {
	reg := prometheus.NewRegistry()
	handler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return handler, metrics.NewLeadMetrics(reg), metrics.NewPageMetrics(reg), metrics.NewVoiceMetrics(reg)
}

// setupSink selects the analytics backend from configuration. Unknown or
// "none" values disable event capture rather than failing startup.
func setupSink(cfg *appconfig.Config, logger *logging.Logger) analytics.Sink {
	switch cfg.AnalyticsSink {
	case "redis":
		sink := analytics.NewRedisSink(analytics.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			UseTLS:   cfg.RedisTLS,
			Key:      cfg.AnalyticsKey,
		}, logger)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sink.Ping(ctx); err != nil {
			logger.Warn("redis analytics sink unreachable at startup", "addr", cfg.RedisAddr, "error", err)
		}
		return sink
	case "memory":
		return analytics.NewMemorySink(cfg.AnalyticsBuffer, logger)
	case "none":
		return analytics.NopSink{}
	default:
		logger.Warn("unknown analytics sink, events disabled", "sink", cfg.AnalyticsSink)
		return analytics.NopSink{}
	}
}

func closeSink(sink analytics.Sink) {
	switch s := sink.(type) {
	case *analytics.MemorySink:
		s.Close()
	case *analytics.RedisSink:
		_ = s.Close()
	}
}
