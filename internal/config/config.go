package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"ayurvignana/internal/validation"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string
	SeedHerbs   bool // Seed the herb catalog on startup (always on in development)

	// Redis (optional, shares rate limiter state between replicas)
	RedisURL string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // Optional CA file for mTLS client verification

	// Branding
	SiteTitle   string
	SiteTagline string
	SiteFooter  string

	// Classifier
	ClassifierURL           string
	ClassifierTimeout       time.Duration
	ClassifierCheckInterval time.Duration

	// Uploads
	UploadDir      string
	MaxUploadBytes int64

	// Knowledge base
	KnowledgeFile string // YAML symptom table; empty uses the compiled-in table

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RateLimitMax int // Requests per minute per IP
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                     getEnv("ENV", "development"),
		ServerAddr:              getEnv("SERVER_ADDR", ":5000"),
		BaseURL:                 getEnv("BASE_URL", "http://localhost:5000"),
		DatabaseURL:             getEnv("DATABASE_URL", "postgres://localhost:5432/ayurvignana?sslmode=disable"),
		SeedHerbs:               getEnv("SEED_HERBS", "") != "",
		RedisURL:                getEnv("REDIS_URL", ""),
		TLSEnabled:              getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:             getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:              getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:               getEnv("TLS_CA_FILE", ""),
		SiteTitle:               getEnv("SITE_TITLE", "AyurVignana"),
		SiteTagline:             getEnv("SITE_TAGLINE", "Ayurvedic herb identification and symptom-based remedies"),
		SiteFooter:              getEnv("SITE_FOOTER", "Remedies are traditional suggestions, not medical advice."),
		ClassifierURL:           getEnv("CLASSIFIER_URL", "http://localhost:8501"),
		ClassifierTimeout:       getDuration("CLASSIFIER_TIMEOUT", 30*time.Second),
		ClassifierCheckInterval: getDuration("CLASSIFIER_CHECK_INTERVAL", 1*time.Minute),
		UploadDir:               getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadBytes:          int64(getInt("MAX_UPLOAD_BYTES", 16*1024*1024)),
		KnowledgeFile:           getEnv("KNOWLEDGE_FILE", ""),
		CORSOrigins:             getEnv("CORS_ORIGINS", ""),
		RateLimitMax:            getInt("RATE_LIMIT_MAX", 100),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// ShouldSeedHerbs returns true if the herb catalog should be seeded on startup.
func (c *Config) ShouldSeedHerbs() bool {
	return c.SeedHerbs || c.IsDev()
}

// Validate checks the service URLs so a typo fails at startup rather than
// as classifier errors on the first upload.
func (c *Config) Validate() error {
	if valid, msg := validation.ValidateURL(c.ClassifierURL); !valid {
		return fmt.Errorf("CLASSIFIER_URL %q: %s", c.ClassifierURL, msg)
	}
	if c.BaseURL != "" {
		if valid, msg := validation.ValidateURL(c.BaseURL); !valid {
			return fmt.Errorf("BASE_URL %q: %s", c.BaseURL, msg)
		}
	}
	return nil
}
