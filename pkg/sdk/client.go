// Package sdk provides a thin HTTP client for the outfitsearch API.
package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Sentinel errors mirroring the server's error codes. Use errors.Is().
var (
	ErrInvalidQuery         = errors.New("invalid query")
	ErrEmbeddingUnavailable = errors.New("embedding unavailable")
	ErrCatalogUnavailable   = errors.New("catalog unavailable")
)

// Outfit is one ranked search result.
type Outfit struct {
	Occasion string   `json:"occasion"`
	Style    string   `json:"style"`
	Items    []string `json:"items"`
	Image    string   `json:"image"`
	Score    float64  `json:"score"`
}

// Client calls the outfitsearch API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchOption configures a single SmartSearch call.
type SearchOption func(url.Values)

// WithOccasion adds the occasion hint to the search.
func WithOccasion(occasion string) SearchOption {
	return func(v url.Values) { v.Set("occasion", occasion) }
}

// SmartSearch returns up to 5 outfits ranked by descending relevance.
func (c *Client) SmartSearch(ctx context.Context, query string, opts ...SearchOption) ([]Outfit, error) {
	params := url.Values{}
	params.Set("query", query)
	for _, opt := range opts {
		opt(params)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/smart-search?"+params.Encode(), http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("smart-search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var outfits []Outfit
	if err := json.NewDecoder(resp.Body).Decode(&outfits); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return outfits, nil
}

// apiError is the server's error payload.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeError(resp *http.Response) error {
	var payload apiError
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("api error: status %d", resp.StatusCode)
	}

	switch payload.Code {
	case "invalid_query":
		return fmt.Errorf("%w: %s", ErrInvalidQuery, payload.Message)
	case "embedding_unavailable":
		return fmt.Errorf("%w: %s", ErrEmbeddingUnavailable, payload.Message)
	case "catalog_unavailable":
		return fmt.Errorf("%w: %s", ErrCatalogUnavailable, payload.Message)
	default:
		return fmt.Errorf("api error %s: %s", payload.Code, payload.Message)
	}
}
