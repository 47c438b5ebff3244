package positions

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meetingcast/content-api/internal/models"
)

// Store persists playback resume points.
type Store interface {
	// Get returns the saved position for a media ID, zero when none exists.
	Get(ctx context.Context, mediaID string) (*models.PlaybackPosition, error)
	// Save upserts the position for a media ID.
	Save(ctx context.Context, mediaID string, positionMs int64) (*models.PlaybackPosition, error)
}

// Repository is the GORM-backed position store.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a playback position repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Get returns the saved position, or a zero position when the media has never
// been played.
func (r *Repository) Get(ctx context.Context, mediaID string) (*models.PlaybackPosition, error) {
	var pos models.PlaybackPosition
	err := r.db.WithContext(ctx).First(&pos, "media_id = ?", mediaID).Error
	if err == gorm.ErrRecordNotFound {
		return &models.PlaybackPosition{MediaID: mediaID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

// Save upserts the resume point for a media ID.
func (r *Repository) Save(ctx context.Context, mediaID string, positionMs int64) (*models.PlaybackPosition, error) {
	pos := &models.PlaybackPosition{
		MediaID:    mediaID,
		PositionMs: positionMs,
		UpdatedAt:  r.now().UnixMilli(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "media_id"}},
		UpdateAll: true,
	}).Create(pos).Error
	if err != nil {
		return nil, err
	}
	return pos, nil
}
