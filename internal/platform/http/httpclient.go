package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client configured for external API
// calls (geolocation, reverse geocoding).
//
// http.DefaultClient has no timeout, so external calls always go
// through a client built here. The Transport is explicit for
// connection reuse and resource limits:
//   - Proxy: honors HTTP_PROXY and friends
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - MaxIdleConns / IdleConnTimeout: idle connection pool bounds
//   - TLSHandshakeTimeout: cap on the HTTPS handshake
//   - Client.Timeout: whole-request timeout, passed by the caller
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
