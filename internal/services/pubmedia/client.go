// Package pubmedia talks to the jw.org publication-media catalog
// (GETPUBMEDIALINKS). The resolver depends only on the contract "given a
// publication code and period, return candidate audio files or fail".
package pubmedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Publication codes for the catalogs this service consumes.
const (
	PubWorkbook   = "mwb"
	PubWatchtower = "w"
	PubLessons    = "lfb"
	PubSongbook   = "sjjc" // vocal version
	PubBible      = "nwt"
)

// Config holds configuration for the publication-media client.
type Config struct {
	BaseURL   string
	Language  string
	UserAgent string
	Timeout   time.Duration
}

// Client fetches publication media links. The http.Client timeout bounds
// every request so a slow remote never stalls the fallback path.
type Client struct {
	httpClient *http.Client
	baseURL    string
	language   string
	userAgent  string
}

// NewClient creates a new publication-media client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://b.jw-cdn.org/apis/pub-media"
	}
	if cfg.Language == "" {
		cfg.Language = "E"
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
		language:   cfg.Language,
		userAgent:  cfg.UserAgent,
	}
}

// PublicationMedia fetches the media links for a publication. issue is the
// YYYYMM issue code and may be empty for catalog publications that are not
// issued monthly (songbook, Bible).
func (c *Client) PublicationMedia(ctx context.Context, pub, issue string) (*Response, error) {
	if pub == "" {
		return nil, fmt.Errorf("publication code cannot be empty")
	}

	params := url.Values{}
	params.Set("pub", pub)
	if issue != "" {
		params.Set("issue", issue)
	}
	params.Set("fileformat", "MP3")
	params.Set("langwritten", c.language)
	params.Set("output", "json")

	endpoint := fmt.Sprintf("%s/GETPUBMEDIALINKS?%s", c.baseURL, params.Encode())

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
		return nil, fmt.Errorf("API returned status %d for pub %s", resp.StatusCode, pub)
	}

	var media Response
	if err := json.NewDecoder(resp.Body).Decode(&media); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &media, nil
}
