package models

// CachedSong is one row of the Kingdom song catalog. The catalog is replaced
// wholesale on refresh, so freshness is tracked per fetch batch rather than
// per row.
type CachedSong struct {
	Number    int    `gorm:"primaryKey" json:"number"`
	Title     string `gorm:"not null" json:"title"`
	URL       string `gorm:"not null" json:"url"`
	Language  string `gorm:"not null;default:E" json:"language"`
	FetchedAt int64  `gorm:"not null" json:"fetched_at"` // epoch millis
}

// TableName returns the table name for the CachedSong model.
func (CachedSong) TableName() string {
	return "kingdom_songs"
}
