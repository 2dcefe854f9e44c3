package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	CORSAllowedOrigins []string
	RateLimitPerSecond float64
	RateLimitBurst     int

	AdminJWTSecret string

	// Lead forwarding
	WebhookTimeout     time.Duration
	DefaultFormWebhook string
	CalendarURL        string

	// Analytics event sink: "memory", "redis" or "none"
	AnalyticsSink   string
	AnalyticsBuffer int
	AnalyticsKey    string

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// Gemini Live voice sessions
	GeminiAPIKey  string
	GeminiModel   string
	GeminiLiveURL string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 20),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),

		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 10*time.Second),
		DefaultFormWebhook: getEnv("DEFAULT_FORM_WEBHOOK", ""),
		CalendarURL:        getEnv("CALENDAR_URL", "https://link.harleystreetmedics.clinic/widget/bookings/lead-skin-consultant-n"),

		AnalyticsSink:   strings.ToLower(strings.TrimSpace(getEnv("ANALYTICS_SINK", "memory"))),
		AnalyticsBuffer: getEnvAsInt("ANALYTICS_BUFFER", 256),
		AnalyticsKey:    getEnv("ANALYTICS_KEY", "analytics:events"),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash-native-audio-preview-09-2025"),
		GeminiLiveURL: getEnv("GEMINI_LIVE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
