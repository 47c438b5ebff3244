package songs

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/meetingcast/content-api/internal/models"
	"github.com/meetingcast/content-api/internal/services/pubmedia"
)

// CatalogTTL is how long a fetched catalog is considered fresh. The songbook
// changes rarely, so the whole collection shares one freshness window.
const CatalogTTL = 30 * 24 * time.Hour

// sampleSongURL is served when the catalog has never been fetched and the
// remote API is unreachable, so the song shelf is never empty.
const sampleSongURL = "https://cfp2.jw-cdn.org/a/7f4ac57/1/o/lfb_E_033.mp3"

var songNumberPattern = regexp.MustCompile(`\d+`)

// Service keeps the Kingdom song catalog warm.
type Service struct {
	store    Store
	fetcher  MediaFetcher
	language string
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the service clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a song catalog backed by the given store and fetcher.
func NewService(store Store, fetcher MediaFetcher, language string, opts ...Option) *Service {
	s := &Service{store: store, fetcher: fetcher, language: language, now: time.Now}
	if s.language == "" {
		s.language = "E"
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// All returns the song catalog, refreshing it first when the cached copy is
// older than CatalogTTL. A failed refresh falls back to whatever is cached,
// and an empty table degrades to a single sample entry rather than nothing.
func (s *Service) All(ctx context.Context) ([]models.CachedSong, error) {
	oldest, err := s.store.OldestFetch(ctx)
	if err != nil {
		return nil, err
	}

	fresh := oldest > 0 && s.now().UnixMilli()-oldest < CatalogTTL.Milliseconds()
	if !fresh {
		if err := s.Refresh(ctx); err != nil {
			log.Printf("[WARN] Song catalog refresh failed: %v", err)
		}
	}

	cached, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(cached) == 0 {
		return []models.CachedSong{{
			Number:    1,
			Title:     "Sample Kingdom Song",
			URL:       sampleSongURL,
			Language:  s.language,
			FetchedAt: s.now().UnixMilli(),
		}}, nil
	}
	return cached, nil
}

// Refresh fetches the songbook catalog and replaces the cached table.
func (s *Service) Refresh(ctx context.Context) error {
	if s.fetcher == nil {
		return fmt.Errorf("no remote source configured")
	}

	resp, err := s.fetcher.PublicationMedia(ctx, pubmedia.PubSongbook, "")
	if err != nil {
		return fmt.Errorf("fetching songbook catalog: %w", err)
	}

	songs := parseCatalog(resp, s.language, s.now().UnixMilli())
	if len(songs) == 0 {
		return fmt.Errorf("songbook catalog contained no playable songs")
	}

	if err := s.store.ReplaceAll(ctx, songs); err != nil {
		return fmt.Errorf("replacing song catalog: %w", err)
	}
	log.Printf("[INFO] Song catalog refreshed, %d songs", len(songs))
	return nil
}

// parseCatalog turns a publication-media response into catalog rows. Files
// without a URL or a recognizable song number are skipped; duplicate numbers
// keep the first occurrence.
func parseCatalog(resp *pubmedia.Response, language string, fetchedAt int64) []models.CachedSong {
	seen := make(map[int]bool)
	var songs []models.CachedSong

	for _, file := range resp.AllMP3() {
		if file.File == nil || file.File.URL == "" {
			continue
		}
		number := songNumber(file)
		if number <= 0 || seen[number] {
			continue
		}
		seen[number] = true
		songs = append(songs, models.CachedSong{
			Number:    number,
			Title:     songTitle(file, number),
			URL:       file.File.URL,
			Language:  language,
			FetchedAt: fetchedAt,
		})
	}

	sort.Slice(songs, func(i, j int) bool { return songs[i].Number < songs[j].Number })
	return songs
}

func songNumber(file pubmedia.MediaFile) int {
	if file.Track > 0 {
		return file.Track
	}
	for _, candidate := range []string{file.Title, file.Label} {
		if match := songNumberPattern.FindString(candidate); match != "" {
			if n, err := strconv.Atoi(match); err == nil {
				return n
			}
		}
	}
	return 0
}

func songTitle(file pubmedia.MediaFile, number int) string {
	if file.Title != "" {
		return file.Title
	}
	return fmt.Sprintf("Song %d", number)
}
