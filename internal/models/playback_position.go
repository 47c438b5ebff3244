package models

// PlaybackPosition remembers where playback stopped for a media item so a
// listener can resume mid-track.
type PlaybackPosition struct {
	MediaID    string `gorm:"primaryKey" json:"media_id"`
	PositionMs int64  `gorm:"not null" json:"position_ms"`
	UpdatedAt  int64  `gorm:"not null" json:"updated_at"` // epoch millis
}

// TableName returns the table name for the PlaybackPosition model.
func (PlaybackPosition) TableName() string {
	return "playback_positions"
}
