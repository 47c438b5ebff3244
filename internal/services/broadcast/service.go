package broadcast

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/meetingcast/content-api/internal/services/mediator"
)

// preferredQuality is the rendition used for audio-only playback. The 240p
// file is the smallest the mediator API offers.
const preferredQuality = "240p"

// Program is one playable broadcasting entry.
type Program struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StreamURL string `json:"stream_url"`
	Published string `json:"published,omitempty"`
}

// CategoryFetcher is the mediator category lookup the service needs.
type CategoryFetcher interface {
	Category(ctx context.Context, language, category string) (*mediator.CategoryResponse, error)
}

// Service lists broadcasting programs from the mediator API.
type Service struct {
	fetcher  CategoryFetcher
	language string
}

// NewService creates a broadcasting service for the given language.
func NewService(fetcher CategoryFetcher, language string) *Service {
	if language == "" {
		language = "E"
	}
	return &Service{fetcher: fetcher, language: language}
}

// MonthlyPrograms returns the Studio monthly programs, newest first. A fetch
// failure yields an empty list so the browse tree keeps working offline.
func (s *Service) MonthlyPrograms(ctx context.Context) []Program {
	return s.category(ctx, mediator.CategoryMonthlyPrograms, "jwb-", "JW Broadcasting")
}

// Updates returns the news report programs, newest first.
func (s *Service) Updates(ctx context.Context) []Program {
	return s.category(ctx, mediator.CategoryNewsReports, "gb-", "News Report")
}

// Latest merges both categories, newest first.
func (s *Service) Latest(ctx context.Context) []Program {
	merged := append(s.MonthlyPrograms(ctx), s.Updates(ctx)...)
	sortNewestFirst(merged)
	return merged
}

func (s *Service) category(ctx context.Context, category, idPrefix, defaultTitle string) []Program {
	if s.fetcher == nil {
		return nil
	}
	resp, err := s.fetcher.Category(ctx, s.language, category)
	if err != nil {
		log.Printf("[WARN] Fetching broadcast category %s failed: %v", category, err)
		return nil
	}

	var programs []Program
	for _, item := range resp.Items() {
		url := streamURL(item)
		if url == "" {
			continue
		}
		id := item.GUID
		if id == "" {
			id = item.NaturalKey
		}
		if id == "" {
			continue
		}
		title := item.Title
		if title == "" {
			title = defaultTitle
		}
		programs = append(programs, Program{
			ID:        idPrefix + id,
			Title:     title,
			StreamURL: url,
			Published: item.FirstPublished,
		})
	}
	sortNewestFirst(programs)
	return programs
}

// streamURL prefers the 240p rendition and falls back to the first file with
// a URL.
func streamURL(item mediator.MediaItem) string {
	for _, file := range item.Files {
		if file.Label == preferredQuality && file.URL != "" {
			return file.URL
		}
	}
	for _, file := range item.Files {
		if file.URL != "" {
			return file.URL
		}
	}
	return ""
}

func sortNewestFirst(programs []Program) {
	sort.SliceStable(programs, func(i, j int) bool {
		return publishedAt(programs[i]).After(publishedAt(programs[j]))
	})
}

func publishedAt(p Program) time.Time {
	t, err := time.Parse(time.RFC3339, p.Published)
	if err != nil {
		return time.Time{}
	}
	return t
}
