package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/faisalchaudhry-debug/HSM-dermatology/internal/http/middleware"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/leads"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/site"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/voice"
	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger       *logging.Logger
	SiteHandler  *site.Handler
	LeadsHandler *leads.Handler
	VoiceHandler *voice.Handler

	MetricsHandler     http.Handler
	AdminJWTSecret     string
	CORSAllowedOrigins []string

	// Per-IP rate limiting for the lead submission endpoint.
	// Zero rate disables limiting.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Admin routes (protected by JWT)
	if cfg.AdminJWTSecret != "" {
		r.Route("/admin", func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminJWT(cfg.AdminJWTSecret))
			if cfg.LeadsHandler != nil {
				admin.Get("/leads", cfg.LeadsHandler.List)
			}
		})
	}

	if cfg.SiteHandler != nil {
		r.Get("/", cfg.SiteHandler.Landing)
	}

	// Location-scoped routes. The catch-all page route must come last so
	// /leads and /voice are matched first.
	r.Route("/{location}", func(loc chi.Router) {
		if cfg.LeadsHandler != nil {
			submit := loc.With()
			if cfg.RateLimitPerSecond > 0 {
				submit = loc.With(httpmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
			}
			submit.Post("/leads", cfg.LeadsHandler.Submit)
		}
		if cfg.VoiceHandler != nil {
			loc.Get("/voice", cfg.VoiceHandler.HandleWebSocket)
		}
		if cfg.SiteHandler != nil {
			loc.Get("/", cfg.SiteHandler.Page)
			loc.Get("/*", cfg.SiteHandler.Page)
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
