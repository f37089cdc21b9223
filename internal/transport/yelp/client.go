// Package yelp provides restaurant discovery over the Yelp Fusion API.
package yelp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/domain"
	"github.com/gustohq/gusto/internal/domain/restaurant"
	"github.com/gustohq/gusto/internal/metrics"
)

// Config holds discovery client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Limit   int
	Logger  *zap.Logger
}

// Client talks to the Yelp Fusion API. Search calls run through a circuit
// breaker so a flapping upstream fails fast instead of piling up timeouts.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limit      int
	breaker    *gobreaker.CircuitBreaker[[]restaurant.Restaurant]
	logger     *zap.Logger
}

// New creates a discovery client.
func New(cfg *Config) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		limit:      cfg.Limit,
		logger:     cfg.Logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]restaurant.Restaurant](gobreaker.Settings{
		Name:        "yelp-search",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			cfg.Logger.Warn("Discovery circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return c
}

// searchResponse mirrors the Fusion /businesses/search payload.
type searchResponse struct {
	Businesses []business `json:"businesses"`
	Total      int        `json:"total"`
}

type business struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	URL         string  `json:"url"`
	ImageURL    string  `json:"image_url"`
	Location    struct {
		City string `json:"city"`
	} `json:"location"`
}

// Search finds restaurants matching a term near a location.
func (c *Client) Search(ctx context.Context, term, location string) ([]restaurant.Restaurant, error) {
	results, err := c.breaker.Execute(func() ([]restaurant.Restaurant, error) {
		return c.search(ctx, term, location)
	})
	if err != nil {
		metrics.DiscoveryRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("yelp search %q near %q: %w: %w", term, location, err, domain.ErrDiscoveryUnavailable)
	}

	metrics.DiscoveryRequestsTotal.WithLabelValues("success").Inc()
	return results, nil
}

func (c *Client) search(ctx context.Context, term, location string) ([]restaurant.Restaurant, error) {
	q := url.Values{}
	q.Set("term", term)
	q.Set("location", location)
	q.Set("limit", strconv.Itoa(c.limit))

	endpoint := c.baseURL + "/businesses/search?" + q.Encode()

	var resp searchResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	results := make([]restaurant.Restaurant, 0, len(resp.Businesses))
	for _, b := range resp.Businesses {
		r := restaurant.New(b.ID, b.Name, b.Location.City, priceTier(b.Price), b.ReviewCount).
			WithRating(b.Rating).
			WithURL(b.URL)
		if b.ImageURL != "" {
			r = r.WithPhotos([]string{b.ImageURL})
		}
		results = append(results, r)
	}
	return results, nil
}

// Details holds the per-business fields used by menu enrichment.
type Details struct {
	MenuURL string
	Photos  []string
}

// detailsResponse mirrors the Fusion /businesses/{id} payload.
type detailsResponse struct {
	Photos     []string `json:"photos"`
	Attributes struct {
		MenuURL string `json:"menu_url"`
	} `json:"attributes"`
}

// BusinessDetails fetches the menu URL and photos for a single business.
func (c *Client) BusinessDetails(ctx context.Context, businessID string) (Details, error) {
	endpoint := c.baseURL + "/businesses/" + url.PathEscape(businessID)

	var resp detailsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return Details{}, fmt.Errorf("yelp business %s: %w", businessID, err)
	}

	return Details{MenuURL: resp.Attributes.MenuURL, Photos: resp.Photos}, nil
}

// FetchMenu downloads a menu page and extracts candidate dish names.
func (c *Client) FetchMenu(ctx context.Context, menuURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, menuURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build menu request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch menu %s: %w", menuURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch menu %s: status %d", menuURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, fmt.Errorf("read menu %s: %w", menuURL, err)
	}

	return ExtractDishLines(string(body)), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// priceTier converts the Yelp price string to an ordinal tier: "$" -> 1,
// "$$" -> 2, and so on. Empty input yields 0 (unknown).
func priceTier(price string) int {
	n := len(price)
	if n > 4 {
		n = 4
	}
	return n
}
