// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the serving process reads from its environment.
type Config struct {
	// Supabase Postgres endpoint (host) and service key (database
	// password). Both are required; the process must not start
	// without them.
	SupabaseDBURL string
	SupabaseDBKey string

	Port          string
	RunMigrations bool

	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Secret of the external identity provider's HS256 access
	// tokens. Optional: when empty the session provider decodes
	// tokens without signature verification.
	SessionJWTSecret string
}

var (
	ErrMissingSupabaseURL = errors.New("SUPABASE_DB_URL is not set")
	ErrMissingSupabaseKey = errors.New("SUPABASE_DB_KEY is not set")
)

// Load reads the configuration, preferring a .env file when present.
// A missing storage endpoint or key is a startup failure, not a
// warning: the caller is expected to terminate before serving.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		SupabaseDBURL:    os.Getenv("SUPABASE_DB_URL"),
		SupabaseDBKey:    os.Getenv("SUPABASE_DB_KEY"),
		Port:             getEnv("PORT", "5000"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		SessionJWTSecret: os.Getenv("SESSION_JWT_SECRET"),
	}

	if v, err := strconv.ParseBool(getEnv("RUN_MIGRATIONS", "false")); err == nil {
		cfg.RunMigrations = v
	}

	if cfg.SupabaseDBURL == "" {
		return nil, ErrMissingSupabaseURL
	}
	if cfg.SupabaseDBKey == "" {
		return nil, ErrMissingSupabaseKey
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
