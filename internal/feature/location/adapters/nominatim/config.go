// Package nominatim provides a reverse-geocoding client for the
// Nominatim API.
package nominatim

import (
	"os"
	"time"
)

// Config holds configuration for the Nominatim client.
type Config struct {
	BaseURL   string        // Base URL (e.g., "https://nominatim.openstreetmap.org")
	UserAgent string        // Identifying User-Agent, required by the Nominatim usage policy
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads Nominatim configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("NOMINATIM_BASE_URL")
	if base == "" {
		base = "https://nominatim.openstreetmap.org"
	}
	ua := os.Getenv("NOMINATIM_USER_AGENT")
	if ua == "" {
		ua = "adhub-backend/1.0"
	}
	return Config{
		BaseURL:   base,
		UserAgent: ua,
		Timeout:   10 * time.Second,
	}
}
