package content

import (
	"fmt"

	"github.com/meetingcast/content-api/internal/services/pubmedia"
)

// Type is the closed set of weekly meeting content categories.
type Type string

const (
	TypeWorkbook          Type = "workbook"
	TypeWatchtower        Type = "watchtower"
	TypeBibleReading      Type = "bible_reading"
	TypeCongregationStudy Type = "congregation_study"
)

// AllTypes lists every content type in presentation order.
func AllTypes() []Type {
	return []Type{TypeWorkbook, TypeWatchtower, TypeBibleReading, TypeCongregationStudy}
}

// ParseType validates an externally supplied content type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeWorkbook, TypeWatchtower, TypeBibleReading, TypeCongregationStudy:
		return Type(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// IsPlaylist reports whether the type resolves to an ordered URL list rather
// than a single file.
func (t Type) IsPlaylist() bool {
	return t == TypeBibleReading || t == TypeCongregationStudy
}

// PubCode returns the publication code the remote catalog is queried with.
// Playlist types have no single publication behind them, so no remote lookup
// is wired for them yet; ok is false for those.
func (t Type) PubCode() (pub string, ok bool) {
	switch t {
	case TypeWorkbook:
		return pubmedia.PubWorkbook, true
	case TypeWatchtower:
		return pubmedia.PubWatchtower, true
	default:
		return "", false
	}
}

// Resolution is the outcome of resolving one (type, week) pair. URL is
// always populated; Playlist is populated for playlist types.
type Resolution struct {
	Type      Type
	WeekStart string
	URL       string
	Playlist  []string
	// Source records which tier answered: "cache", "remote", "stale", or
	// "fallback".
	Source string
}
