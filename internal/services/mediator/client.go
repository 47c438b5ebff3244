// Package mediator talks to the jw.org broadcasting catalog, which serves
// program listings per language and category.
package mediator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Category keys consumed by the broadcast service.
const (
	CategoryMonthlyPrograms = "StudioMonthlyPrograms"
	CategoryNewsReports     = "StudioNewsReports"
)

// Config holds configuration for the mediator client.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client fetches broadcasting categories.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a new mediator client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://b.jw-cdn.org/apis/mediator/v1"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "MeetingcastContentAPI/1.0"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
	}
}

// Category fetches the detailed media listing of one category.
func (c *Client) Category(ctx context.Context, language, category string) (*CategoryResponse, error) {
	endpoint := fmt.Sprintf("%s/categories/%s/%s?detailed=1", c.baseURL, language, category)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d for category %s", resp.StatusCode, category)
	}

	var categoryResp CategoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&categoryResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &categoryResp, nil
}
