// Package exchangerate talks to the exchangerate-api.com pair endpoint and
// caches conversion rates for the pricing calculator.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Srujan578/travel-planner-website/internal/planner"
)

const defaultBaseURL = "https://v6.exchangerate-api.com/v6"

// Daily-updated rates; half a day of caching keeps lookups rare without the
// prices drifting noticeably.
const cacheTTL = 12 * time.Hour

// Client is a RateProvider backed by the exchangerate-api v6 pair endpoint.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	cache   *cache.Cache
	log     *slog.Logger
}

var _ planner.RateProvider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New constructs an exchange rate client.
func New(apiKey string, log *slog.Logger, opts ...Option) *Client {
	if log == nil {
		log = slog.Default()
	}
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		cache:   cache.New(cacheTTL, time.Hour),
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type pairResponse struct {
	Result         string  `json:"result"`
	ErrorType      string  `json:"error-type"`
	ConversionRate float64 `json:"conversion_rate"`
}

// Rate returns the conversion rate from base to target currency.
func (c *Client) Rate(ctx context.Context, base, target string) (float64, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	target = strings.ToUpper(strings.TrimSpace(target))
	if base == target {
		return 1.0, nil
	}

	key := base + "/" + target
	if cached, ok := c.cache.Get(key); ok {
		return cached.(float64), nil
	}

	u := fmt.Sprintf("%s/%s/pair/%s/%s", c.baseURL, c.apiKey, base, target)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("exchangerate.Client.Rate: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("exchangerate.Client.Rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("exchangerate.Client.Rate: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload pairResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("exchangerate.Client.Rate: %w", err)
	}
	if payload.Result != "success" {
		return 0, fmt.Errorf("exchangerate.Client.Rate: upstream error %q", payload.ErrorType)
	}
	if payload.ConversionRate <= 0 {
		return 0, fmt.Errorf("exchangerate.Client.Rate: non-positive rate for %s", key)
	}

	c.cache.Set(key, payload.ConversionRate, cache.DefaultExpiration)
	return payload.ConversionRate, nil
}
