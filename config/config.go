package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	// Resend (transactional email) configuration
	ResendAPIKey   string
	ResendBaseURL  string
	EmailFrom      string // sender for contact emails and GDPR confirmations
	GDPREmailFrom  string // sender for GDPR operator notifications
	ContactEmailTo string // the business inbox notified on every submission
	// Redis/Upstash Configuration (optional shared rate-limit store)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitContactMax    int
	RateLimitGDPRMax       int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
		// Resend configuration
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		ResendBaseURL:  getEnv("RESEND_BASE_URL", "https://api.resend.com"),
		EmailFrom:      getEnv("EMAIL_FROM", "IzCloud <noreply@izcloud.fr>"),
		GDPREmailFrom:  getEnv("GDPR_EMAIL_FROM", "IzCloud RGPD <noreply@izcloud.fr>"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "julien@izcloud.fr"),
		// Redis/Upstash configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate limiting (contact form: 5/hour, GDPR form: 3/hour - the GDPR
		// path is stricter because such requests are rarer and higher-stakes)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 3600),
		RateLimitContactMax:    getEnvInt("RATE_LIMIT_CONTACT_MAX", 5),
		RateLimitGDPRMax:       getEnvInt("RATE_LIMIT_GDPR_MAX", 3),
	}

	// A missing key is tolerated at boot; it surfaces as an authentication
	// failure from Resend on the first send.
	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Email dispatch will fail.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
