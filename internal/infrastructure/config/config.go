package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const devJWTSecret = "portfolio-dev-secret"

// Config holds environment-driven configuration.
type Config struct {
	Addr          string
	Env           string
	LogLevel      string
	DatabaseURL   string
	JWTSecret     string
	UploadDir     string
	UploadURL     string
	MaxUploadMB   int
	AssetVersion  string
	CORSOrigins   string
	AdminEmail    string
	AdminPassword string
	SeedFile      string
}

// Load reads `.env` (when present) and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          getEnv("PORTFOLIO_ADDR", ":8080"),
		Env:           getEnv("APP_ENV", "production"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", devJWTSecret),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		UploadURL:     strings.TrimRight(getEnv("UPLOAD_URL", "/uploads"), "/"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 8),
		AssetVersion:  getEnv("ASSET_VERSION", "1"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SeedFile:      os.Getenv("SEED_FILE"),
	}
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}

// UsesMemoryStore reports whether repositories should be kept in memory.
func (c Config) UsesMemoryStore() bool {
	return c.DatabaseURL == ""
}

// Validate rejects settings that are unsafe outside development.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("PORTFOLIO_ADDR must not be empty")
	}
	if c.MaxUploadMB <= 0 {
		return errors.New("MAX_UPLOAD_MB must be positive")
	}
	if !c.IsDevelopment() && c.JWTSecret == devJWTSecret {
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
