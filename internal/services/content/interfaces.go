package content

import (
	"context"
	"time"

	"github.com/meetingcast/content-api/internal/models"
	"github.com/meetingcast/content-api/internal/services/pubmedia"
)

// Store is the durable key-value cache for resolved content. Reads do no
// expiry filtering; callers decide whether an expired row is still useful.
type Store interface {
	// GetByKey returns the entry for the composite key, or nil when absent.
	GetByKey(ctx context.Context, cacheKey string) (*models.CachedContent, error)

	// Upsert writes the entry with replace-on-conflict semantics.
	Upsert(ctx context.Context, entry *models.CachedContent) error

	// DeleteExpired removes every row whose expiry has passed, returning the
	// number of rows deleted.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// Count returns the number of cached rows.
	Count(ctx context.Context) (int64, error)
}

// MediaFetcher is the remote catalog seam the resolver queries on a cache
// miss.
type MediaFetcher interface {
	PublicationMedia(ctx context.Context, pub, issue string) (*pubmedia.Response, error)
}

// Resolver answers "what is the audio for week W, type T". Resolution never
// fails for a known type except when the store itself is unavailable.
type Resolver interface {
	Resolve(ctx context.Context, contentType Type, weekStart time.Time) (*Resolution, error)
}
