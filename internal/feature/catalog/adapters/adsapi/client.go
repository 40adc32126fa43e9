// Package adsapi is the HTTP client the browsing side uses to
// materialize the listing set before filtering and sorting locally.
package adsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"adhub_backend/internal/feature/listing/domain/entity"
)

// Config holds configuration for the ads API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig loads the ads API configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("ADHUB_API_URL")
	if base == "" {
		base = "http://localhost:5000"
	}
	return Config{BaseURL: base, Timeout: 10 * time.Second}
}

// Client fetches listings from the catalog API.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a new ads API client with the given config and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchAll returns the full listing set from GET /api/ads.
func (a *Client) FetchAll(ctx context.Context) ([]entity.Listing, error) {
	return a.fetch(ctx, a.cfg.BaseURL+"/api/ads")
}

// FetchByOwner returns the owner-scoped set from GET /api/ads/user/:userId.
func (a *Client) FetchByOwner(ctx context.Context, ownerID string) ([]entity.Listing, error) {
	return a.fetch(ctx, a.cfg.BaseURL+"/api/ads/user/"+url.PathEscape(ownerID))
}

func (a *Client) fetch(ctx context.Context, u string) ([]entity.Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Error != "" {
			return nil, fmt.Errorf("ads api http %d: %s", res.StatusCode, body.Error)
		}
		return nil, fmt.Errorf("ads api http %d", res.StatusCode)
	}

	var listings []entity.Listing
	if err := json.NewDecoder(res.Body).Decode(&listings); err != nil {
		return nil, err
	}
	return listings, nil
}
