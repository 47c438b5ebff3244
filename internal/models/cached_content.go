package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// CachedContent is a resolved audio lookup persisted with a TTL so playback
// keeps working offline. Single-file content populates URL; playlist content
// populates PlaylistURLs as a JSON array of strings.
type CachedContent struct {
	// CacheKey format: "type:YYYY-MM-DD", e.g. "workbook:2025-11-03".
	CacheKey    string `gorm:"primaryKey" json:"cache_key"`
	ContentType string `gorm:"index;not null" json:"content_type"`
	WeekStart   string `gorm:"not null" json:"week_start"` // ISO date of the Monday
	URL         string `json:"url,omitempty"`
	// PlaylistURLs is a JSON-encoded ordered list. Stored as a blob column so
	// a playlist round-trips exactly, order included.
	PlaylistURLs string `json:"playlist_urls,omitempty"`
	FetchedAt    int64  `gorm:"not null" json:"fetched_at"`  // epoch millis
	ExpiresAt    int64  `gorm:"index;not null" json:"expires_at"` // epoch millis
}

// TableName returns the table name for the CachedContent model.
func (CachedContent) TableName() string {
	return "cached_content"
}

// TTL constants: future-dated weeks get corrected more often near
// publication, so they are revalidated sooner than past ones.
const (
	TTLFuture = 7 * 24 * time.Hour
	TTLPast   = 30 * 24 * time.Hour
)

// ContentCacheKey builds the composite primary key for a cache row.
func ContentCacheKey(contentType, weekStart string) string {
	return fmt.Sprintf("%s:%s", contentType, weekStart)
}

// IsExpired reports whether the entry is past its expiry at the given time.
// Expired rows are deliberately kept until the next sweep; they are the
// stale-fallback source when the network is down.
func (c *CachedContent) IsExpired(now time.Time) bool {
	return now.UnixMilli() > c.ExpiresAt
}

// Playlist decodes the stored JSON URL list. Returns nil when the entry
// holds no playlist.
func (c *CachedContent) Playlist() ([]string, error) {
	if c.PlaylistURLs == "" {
		return nil, nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(c.PlaylistURLs), &urls); err != nil {
		return nil, fmt.Errorf("decoding playlist for %s: %w", c.CacheKey, err)
	}
	return urls, nil
}

// SetPlaylist encodes the ordered URL list into the JSON column.
func (c *CachedContent) SetPlaylist(urls []string) error {
	data, err := json.Marshal(urls)
	if err != nil {
		return fmt.Errorf("encoding playlist for %s: %w", c.CacheKey, err)
	}
	c.PlaylistURLs = string(data)
	return nil
}
