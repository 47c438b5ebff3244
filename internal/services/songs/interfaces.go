package songs

import (
	"context"

	"github.com/meetingcast/content-api/internal/models"
	"github.com/meetingcast/content-api/internal/services/pubmedia"
)

// Store persists the Kingdom song catalog.
type Store interface {
	// All returns every cached song ordered by song number.
	All(ctx context.Context) ([]models.CachedSong, error)
	// ReplaceAll swaps the whole catalog in one transaction.
	ReplaceAll(ctx context.Context, songs []models.CachedSong) error
	// OldestFetch returns the earliest fetched_at in the table, 0 when empty.
	OldestFetch(ctx context.Context) (int64, error)
}

// MediaFetcher is the remote publication-media lookup the catalog refresh needs.
type MediaFetcher interface {
	PublicationMedia(ctx context.Context, pub, issue string) (*pubmedia.Response, error)
}

// Catalog serves the song list, refreshing it from the remote API when stale.
type Catalog interface {
	All(ctx context.Context) ([]models.CachedSong, error)
	Refresh(ctx context.Context) error
}
