package songs

import (
	"context"

	"gorm.io/gorm"

	"github.com/meetingcast/content-api/internal/models"
)

// Repository is the GORM-backed song store.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new song repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// All returns the full catalog ordered by song number.
func (r *Repository) All(ctx context.Context) ([]models.CachedSong, error) {
	var songs []models.CachedSong
	if err := r.db.WithContext(ctx).Order("number ASC").Find(&songs).Error; err != nil {
		return nil, err
	}
	return songs, nil
}

// ReplaceAll swaps the catalog wholesale. Delete and insert run in one
// transaction so readers never observe a half-replaced table.
func (r *Repository) ReplaceAll(ctx context.Context, songs []models.CachedSong) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CachedSong{}).Error; err != nil {
			return err
		}
		if len(songs) == 0 {
			return nil
		}
		return tx.Create(&songs).Error
	})
}

// OldestFetch returns the earliest fetched_at across the catalog, 0 when the
// table is empty.
func (r *Repository) OldestFetch(ctx context.Context) (int64, error) {
	var oldest *int64
	err := r.db.WithContext(ctx).Model(&models.CachedSong{}).
		Select("MIN(fetched_at)").Scan(&oldest).Error
	if err != nil {
		return 0, err
	}
	if oldest == nil {
		return 0, nil
	}
	return *oldest, nil
}
