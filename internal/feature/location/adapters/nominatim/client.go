package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"adhub_backend/internal/feature/location/adapters/nominatim/dto"
	"adhub_backend/internal/feature/location/domain/entity"
	"adhub_backend/internal/feature/location/usecase"
	"adhub_backend/internal/shared/ratelimiter"
)

// Client is a Geocoder implementation backed by the Nominatim reverse
// geocoding API.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

var _ usecase.Geocoder = (*Client)(nil)

// NewClient creates a new Nominatim client with the given config and
// HTTP client. The limiter enforces the public instance's 1 req/s
// policy; pass nil to disable (e.g. a self-hosted instance).
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// ReverseGeocode resolves coordinates to a place name, preferring the
// lowest administrative level available: city, then town, village,
// municipality, county. An empty string with a nil error means the
// answer carried no usable administrative name.
func (n *Client) ReverseGeocode(ctx context.Context, c entity.Coordinates) (string, error) {
	if n.limiter != nil {
		n.limiter.WaitIfNeeded()
	}

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(c.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.Lon, 'f', -1, 64))

	u := fmt.Sprintf("%s/reverse?%s", n.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", n.cfg.UserAgent)

	res, err := n.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("nominatim http %d", res.StatusCode)
	}

	var body dto.ReverseResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Error != "" {
		return "", fmt.Errorf("nominatim: %s", body.Error)
	}

	for _, name := range []string{
		body.Address.City,
		body.Address.Town,
		body.Address.Village,
		body.Address.Municipality,
		body.Address.County,
	} {
		if name != "" {
			return name, nil
		}
	}
	return "", nil
}
