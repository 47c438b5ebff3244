// Package content resolves weekly meeting audio. For a given (content type,
// week) pair the resolver picks among three sources of differing freshness:
// a TTL-stamped local cache, the remote publication-media catalog, and a
// compiled-in fallback table. Precedence is fixed: fresh cache, then remote,
// then stale cache, then fallback. A known content type always resolves to
// some URL; only a broken store surfaces an error.
package content

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/meetingcast/content-api/internal/models"
)

// Source labels recorded on a Resolution.
const (
	SourceCache    = "cache"
	SourceRemote   = "remote"
	SourceStale    = "stale"
	SourceFallback = "fallback"
)

// Service implements Resolver.
type Service struct {
	store   Store
	fetcher MediaFetcher
	now     func() time.Time
}

var _ Resolver = (*Service)(nil)

// ServiceOption is a functional option for configuring the service.
type ServiceOption func(*Service)

// WithClock overrides the clock used for TTL classification.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a content resolver. fetcher may be nil, in which case
// every remote attempt behaves like an unreachable catalog.
func NewService(store Store, fetcher MediaFetcher, opts ...ServiceOption) *Service {
	s := &Service{
		store:   store,
		fetcher: fetcher,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the best-available audio for the week starting at
// weekStart. weekStart is normalized to its date; callers pass the Monday
// computed by pkg/week.
func (s *Service) Resolve(ctx context.Context, contentType Type, weekStart time.Time) (*Resolution, error) {
	now := s.now()
	weekKey := weekStart.Format("2006-01-02")
	cacheKey := models.ContentCacheKey(string(contentType), weekKey)

	cached, err := s.store.GetByKey(ctx, cacheKey)
	if err != nil {
		return nil, err
	}

	// Tier 1: fresh cache. Must not touch the network.
	if cached != nil && !cached.IsExpired(now) {
		if res := resolutionFromEntry(contentType, weekKey, cached, SourceCache); res != nil {
			return res, nil
		}
		// Row exists but holds nothing usable for this type; treat as a miss.
	}

	// Tier 2: remote catalog. The write happens only after a complete,
	// valid response, and a write failure downgrades to a warning because
	// the caller already has a playable answer.
	res, remoteErr := s.resolveRemote(ctx, contentType, weekKey, weekStart)
	if remoteErr == nil {
		if err := s.persist(ctx, weekKey, now, weekStart, res); err != nil {
			log.Printf("[WARN] caching %s for %s failed: %v", contentType, weekKey, err)
		}
		return res, nil
	}
	if !errors.Is(remoteErr, ErrNoRemoteSource) {
		log.Printf("[WARN] remote fetch failed for %s %s, falling back: %v", contentType, weekKey, remoteErr)
	}

	// Tier 3a: stale cache. An expired row beats a generic default while
	// the network is down.
	if cached != nil {
		if res := resolutionFromEntry(contentType, weekKey, cached, SourceStale); res != nil {
			return res, nil
		}
	}

	// Tier 3b: static table, total by construction.
	res = fallbackResolution(contentType, weekKey, weekStart)
	if contentType.IsPlaylist() && cached == nil {
		// Playlists come from the static table until a remote endpoint is
		// wired; caching them keeps cold-start reads off the table.
		if err := s.persist(ctx, weekKey, now, weekStart, res); err != nil {
			log.Printf("[WARN] caching %s for %s failed: %v", contentType, weekKey, err)
		}
	}
	return res, nil
}

func (s *Service) resolveRemote(ctx context.Context, contentType Type, weekKey string, weekStart time.Time) (*Resolution, error) {
	pub, ok := contentType.PubCode()
	if !ok || s.fetcher == nil {
		return nil, ErrNoRemoteSource
	}

	resp, err := s.fetcher.PublicationMedia(ctx, pub, weekStart.Format("200601"))
	if err != nil {
		return nil, err
	}

	url := resp.FirstAudioURL()
	source := SourceRemote
	if url == "" {
		// Valid response without a usable file; substitute the static URL
		// but still cache it so the catalog is not re-queried every read.
		url = FallbackURL(contentType, weekStart)
		source = SourceFallback
	}

	return &Resolution{
		Type:      contentType,
		WeekStart: weekKey,
		URL:       url,
		Source:    source,
	}, nil
}

func (s *Service) persist(ctx context.Context, weekKey string, now, weekStart time.Time, res *Resolution) error {
	entry := &models.CachedContent{
		CacheKey:    models.ContentCacheKey(string(res.Type), weekKey),
		ContentType: string(res.Type),
		WeekStart:   weekKey,
		FetchedAt:   now.UnixMilli(),
		ExpiresAt:   now.Add(ttlFor(weekStart, now)).UnixMilli(),
	}
	if res.Type.IsPlaylist() {
		if err := entry.SetPlaylist(res.Playlist); err != nil {
			return err
		}
	} else {
		entry.URL = res.URL
	}
	return s.store.Upsert(ctx, entry)
}

// ttlFor classifies the week at caching time: strictly future-dated weeks
// get the short TTL, the current week and the past get the long one.
func ttlFor(weekStart, now time.Time) time.Duration {
	if dateOf(weekStart).After(dateOf(now)) {
		return models.TTLFuture
	}
	return models.TTLPast
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// resolutionFromEntry converts a stored row into a Resolution, or nil when
// the row holds nothing usable for the type (missing URL, undecodable or
// empty playlist).
func resolutionFromEntry(contentType Type, weekKey string, entry *models.CachedContent, source string) *Resolution {
	if contentType.IsPlaylist() {
		urls, err := entry.Playlist()
		if err != nil {
			log.Printf("[WARN] dropping undecodable playlist row %s: %v", entry.CacheKey, err)
			return nil
		}
		if len(urls) == 0 {
			return nil
		}
		return &Resolution{
			Type:      contentType,
			WeekStart: weekKey,
			URL:       urls[0],
			Playlist:  urls,
			Source:    source,
		}
	}

	if entry.URL == "" {
		return nil
	}
	return &Resolution{
		Type:      contentType,
		WeekStart: weekKey,
		URL:       entry.URL,
		Source:    source,
	}
}

func fallbackResolution(contentType Type, weekKey string, weekStart time.Time) *Resolution {
	if contentType.IsPlaylist() {
		urls := FallbackPlaylist(contentType, weekStart)
		return &Resolution{
			Type:      contentType,
			WeekStart: weekKey,
			URL:       urls[0],
			Playlist:  urls,
			Source:    SourceFallback,
		}
	}
	return &Resolution{
		Type:      contentType,
		WeekStart: weekKey,
		URL:       FallbackURL(contentType, weekStart),
		Source:    SourceFallback,
	}
}
