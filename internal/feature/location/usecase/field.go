package usecase

import (
	"context"
	"sync"

	"adhub_backend/internal/feature/location/domain/entity"
)

// CurrentLocationFallback is displayed when reverse geocoding fails or
// resolves no administrative name. Resolver failure is recovered here,
// never surfaced to the caller.
const CurrentLocationFallback = "Current Location"

// Locator yields the device's current coordinates.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Locator interface {
	Locate(ctx context.Context) (entity.Coordinates, error)
}

// Geocoder resolves coordinates to a human-readable place name. An
// empty name with a nil error means nothing administrative was found.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, c entity.Coordinates) (string, error)
}

// Field holds the value of a location input whose current-location
// resolution runs asynchronously. Every change bumps a monotonically
// increasing token; a geocoding result is applied only if its token is
// still the latest, so a slow lookup never clobbers newer manual input.
type Field struct {
	mu    sync.Mutex
	token uint64
	value string

	locator  Locator
	geocoder Geocoder
}

// NewField creates a Field resolving current location through the
// given locator and geocoder.
func NewField(locator Locator, geocoder Geocoder) *Field {
	return &Field{locator: locator, geocoder: geocoder}
}

// Value returns the field's current text.
func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetManual records text typed by the user and invalidates any
// outstanding current-location lookup.
func (f *Field) SetManual(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token++
	f.value = text
}

// UseCurrent resolves the current location and applies the resulting
// place name unless newer input arrived meanwhile. Geolocation failure
// (denied, unavailable) is returned to the caller for an informational
// alert; geocoding failure is absorbed into CurrentLocationFallback.
// The returned string is the field value after the call.
func (f *Field) UseCurrent(ctx context.Context) (string, error) {
	f.mu.Lock()
	f.token++
	token := f.token
	f.mu.Unlock()

	coords, err := f.locator.Locate(ctx)
	if err != nil {
		return f.Value(), err
	}

	name, err := f.geocoder.ReverseGeocode(ctx, coords)
	if err != nil || name == "" {
		name = CurrentLocationFallback
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.token != token {
		// Stale result: the user typed or re-requested meanwhile.
		return f.value, nil
	}
	f.value = name
	return f.value, nil
}
