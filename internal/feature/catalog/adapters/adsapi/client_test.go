package adsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ADHUB_API_URL", "")

	cfg := LoadConfig()

	if cfg.BaseURL != "http://localhost:5000" {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
}

func TestClient_FetchAll(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ads" {
			t.Errorf("expected path /api/ads, got %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Prime Billboard","category":"billboard","price":"₹ 45,000"},
			{"id":2,"name":"Metro Screen","category":"digital","price":"₹ 30,000"}
		]`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL}, server.Client())

	got, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	if got[0].Name != "Prime Billboard" || got[1].Category != "digital" {
		t.Errorf("unexpected listings: %+v", got)
	}
}

func TestClient_FetchByOwner_EscapesOwnerID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/ads/user/owner%2F1" {
			t.Errorf("unexpected path: %s", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL}, server.Client())

	got, err := c.FetchByOwner(context.Background(), "owner/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty set, got %d", len(got))
	}
}

func TestClient_Fetch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "error body surfaced",
			status:  http.StatusInternalServerError,
			body:    `{"error":"database unavailable"}`,
			wantMsg: "ads api http 500: database unavailable",
		},
		{
			name:    "plain http error",
			status:  http.StatusBadGateway,
			body:    `upstream down`,
			wantMsg: "ads api http 502",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClient(Config{BaseURL: server.URL}, server.Client())

			_, err := c.FetchAll(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestClient_Fetch_MalformedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not a list}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL}, server.Client())

	if _, err := c.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
