// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"adhub_backend/internal/feature/location/adapters/ipapi"
	"adhub_backend/internal/feature/location/adapters/nominatim"
	"adhub_backend/internal/feature/location/usecase"
	infrahttp "adhub_backend/internal/platform/http"
	"adhub_backend/internal/shared/ratelimiter"
)

// NewGeocoder creates a fully configured Nominatim client. The public
// instance allows one request per second, hence the limiter.
func NewGeocoder() *nominatim.Client {
	cfg := nominatim.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(1, time.Second)
	return nominatim.NewClient(cfg, httpClient, limiter)
}

// NewLocator creates a fully configured ip-api.com client.
func NewLocator() *ipapi.Client {
	cfg := ipapi.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return ipapi.NewClient(cfg, httpClient)
}

// NewLocationField wires locator and geocoder into a token-guarded
// location field.
func NewLocationField() *usecase.Field {
	return usecase.NewField(NewLocator(), NewGeocoder())
}
