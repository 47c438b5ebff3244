package bible

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/meetingcast/content-api/internal/services/pubmedia"
)

// MediaFetcher is the remote publication-media lookup the catalog needs.
type MediaFetcher interface {
	PublicationMedia(ctx context.Context, pub, issue string) (*pubmedia.Response, error)
}

// BookAudio is the chapter audio for one book, ordered by chapter.
type BookAudio struct {
	Chapters []string
}

// Catalog lazily loads the Bible recording catalog and answers per-book
// chapter lookups. The full catalog is one large API response, so it is
// fetched once and held in memory for the life of the process.
type Catalog struct {
	fetcher MediaFetcher

	mu     sync.Mutex
	byBook map[int]BookAudio
}

// NewCatalog creates a Bible audio catalog backed by the given fetcher.
func NewCatalog(fetcher MediaFetcher) *Catalog {
	return &Catalog{fetcher: fetcher}
}

// ChaptersFor returns the chapter URLs for a book, loading the catalog on
// first use. An unknown or audio-less book yields an empty slice.
func (c *Catalog) ChaptersFor(ctx context.Context, bookNumber int) ([]string, error) {
	byBook, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return byBook[bookNumber].Chapters, nil
}

func (c *Catalog) load(ctx context.Context) (map[int]BookAudio, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.byBook != nil {
		return c.byBook, nil
	}
	if c.fetcher == nil {
		return nil, fmt.Errorf("no remote source configured")
	}

	resp, err := c.fetcher.PublicationMedia(ctx, pubmedia.PubBible, "")
	if err != nil {
		return nil, fmt.Errorf("fetching bible catalog: %w", err)
	}

	c.byBook = groupByBook(resp.AllMP3())
	return c.byBook, nil
}

// groupByBook buckets catalog entries by book number, recovering the number
// from the title when the API omits it, and orders chapters by track.
func groupByBook(files []pubmedia.MediaFile) map[int]BookAudio {
	type chapter struct {
		track int
		url   string
	}
	buckets := make(map[int][]chapter)

	for _, file := range files {
		if file.File == nil || file.File.URL == "" {
			continue
		}
		book := file.BookNumber
		if book == 0 {
			matched, ok := FindByName(file.Title)
			if !ok {
				continue
			}
			book = matched.Number
		}
		buckets[book] = append(buckets[book], chapter{track: file.Track, url: file.File.URL})
	}

	byBook := make(map[int]BookAudio, len(buckets))
	for book, chapters := range buckets {
		sort.SliceStable(chapters, func(i, j int) bool { return chapters[i].track < chapters[j].track })
		urls := make([]string, len(chapters))
		for i, ch := range chapters {
			urls[i] = ch.url
		}
		byBook[book] = BookAudio{Chapters: urls}
	}
	return byBook
}
