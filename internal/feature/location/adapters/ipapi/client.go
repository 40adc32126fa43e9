// Package ipapi provides IP-based geolocation via the ip-api.com JSON
// endpoint. It stands in for the browser geolocation the original UI
// relied on: headless clients have no GPS, but the egress IP gives an
// approximate position good enough to seed reverse geocoding.
package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"adhub_backend/internal/feature/location/domain/entity"
	"adhub_backend/internal/feature/location/usecase"
)

// Config holds configuration for the ip-api.com client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig loads the geolocation configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("IPAPI_BASE_URL")
	if base == "" {
		base = "http://ip-api.com"
	}
	return Config{BaseURL: base, Timeout: 10 * time.Second}
}

// locateResponse mirrors the ip-api.com JSON answer.
type locateResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Client is a Locator implementation backed by ip-api.com.
type Client struct {
	cfg    Config
	client *http.Client
}

var _ usecase.Locator = (*Client)(nil)

// NewClient creates a new ip-api.com client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Locate resolves the caller's egress IP to coordinates. A failure
// here is the moral equivalent of a denied browser geolocation prompt
// and is surfaced to the caller as an error.
func (i *Client) Locate(ctx context.Context) (entity.Coordinates, error) {
	u := i.cfg.BaseURL + "/json/?fields=status,message,lat,lon"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.Coordinates{}, err
	}

	res, err := i.client.Do(req)
	if err != nil {
		return entity.Coordinates{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.Coordinates{}, fmt.Errorf("ip-api http %d", res.StatusCode)
	}

	var body locateResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.Coordinates{}, err
	}
	if body.Status != "success" {
		return entity.Coordinates{}, fmt.Errorf("ip-api: %s", body.Message)
	}

	return entity.Coordinates{Lat: body.Lat, Lon: body.Lon}, nil
}
