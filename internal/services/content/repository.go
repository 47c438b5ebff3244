package content

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meetingcast/content-api/internal/models"
)

// Repository is the gorm-backed Store implementation.
type Repository struct {
	db *gorm.DB
}

var _ Store = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByKey(ctx context.Context, cacheKey string) (*models.CachedContent, error) {
	var entry models.CachedContent
	err := r.db.WithContext(ctx).Where("cache_key = ?", cacheKey).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, newStoreError("read", err)
	}
	return &entry, nil
}

func (r *Repository) Upsert(ctx context.Context, entry *models.CachedContent) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cache_key"}},
			UpdateAll: true,
		}).
		Create(entry).Error
	if err != nil {
		return newStoreError("upsert", err)
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now.UnixMilli()).
		Delete(&models.CachedContent{})
	if result.Error != nil {
		return 0, newStoreError("sweep", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CachedContent{}).Count(&count).Error; err != nil {
		return 0, newStoreError("count", err)
	}
	return count, nil
}
