package yelp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/domain"
	"github.com/gustohq/gusto/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.Register()
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return New(&Config{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
		Limit:   20,
		Logger:  zap.NewNop(),
	})
}

func TestSearch_MapsBusinesses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/businesses/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", r.Header.Get("Authorization"))
		}
		if got := r.URL.Query().Get("term"); got != "thai food" {
			t.Errorf("unexpected term %q", got)
		}
		if got := r.URL.Query().Get("location"); got != "Boston" {
			t.Errorf("unexpected location %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"total": 2,
			"businesses": []map[string]any{
				{
					"id": "thai-1", "name": "Bangkok Garden", "price": "$$",
					"rating": 4.5, "review_count": 320,
					"url":      "https://yelp.com/biz/thai-1",
					"imageurl": "",
					"location": map[string]any{"city": "Boston"},
				},
				{
					"id": "thai-2", "name": "Spice House", "price": "",
					"rating": 4.0, "review_count": 85,
					"url":      "https://yelp.com/biz/thai-2",
					"location": map[string]any{"city": "Cambridge"},
				},
			},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	results, err := c.Search(context.Background(), "thai food", "Boston")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	first := results[0]
	if first.ID() != "thai-1" || first.Name() != "Bangkok Garden" {
		t.Errorf("unexpected first result: %s %s", first.ID(), first.Name())
	}
	if first.PriceTier() != 2 {
		t.Errorf("expected price tier 2 for $$, got %d", first.PriceTier())
	}
	if first.Rating() != 4.5 || first.ReviewCount() != 320 {
		t.Errorf("unexpected rating/reviews: %f/%d", first.Rating(), first.ReviewCount())
	}
	if results[1].PriceTier() != 0 {
		t.Errorf("expected tier 0 for missing price, got %d", results[1].PriceTier())
	}
}

func TestSearch_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Search(context.Background(), "thai food", "Boston")
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if !errors.Is(err, domain.ErrDiscoveryUnavailable) {
		t.Errorf("expected ErrDiscoveryUnavailable, got %v", err)
	}
}

func TestSearch_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	for i := 0; i < 8; i++ {
		_, _ = c.Search(context.Background(), "pizza", "NYC")
	}

	// breaker trips after 5 consecutive failures; later calls never hit upstream
	if hits > 5 {
		t.Errorf("expected at most 5 upstream hits before breaker opened, got %d", hits)
	}
}

func TestBusinessDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/businesses/thai-1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"photos":     []string{"https://img.example/1.jpg", "https://img.example/2.jpg"},
			"attributes": map[string]any{"menu_url": "https://menus.example/thai-1"},
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	d, err := c.BusinessDetails(context.Background(), "thai-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.MenuURL != "https://menus.example/thai-1" {
		t.Errorf("unexpected menu url %q", d.MenuURL)
	}
	if len(d.Photos) != 2 {
		t.Errorf("expected 2 photos, got %d", len(d.Photos))
	}
}

func TestFetchMenu(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<h2>Appetizers</h2>
			<div>Crispy Spring Rolls $8.95</div>
			<div>Tom Yum Soup $12</div>
			<script>trackPage();</script>
		</body></html>`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	dishes, err := c.FetchMenu(context.Background(), server.URL+"/menu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dishes) != 2 {
		t.Fatalf("expected 2 dishes, got %d: %v", len(dishes), dishes)
	}
	if dishes[0] != "Crispy Spring Rolls" || dishes[1] != "Tom Yum Soup" {
		t.Errorf("unexpected dishes: %v", dishes)
	}
}
