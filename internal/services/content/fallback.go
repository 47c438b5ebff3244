package content

import (
	"sort"
	"time"
)

// Compiled-in last-resort sources. Every function here is total: a known
// content type always yields a non-empty answer, covered week or not.
const (
	// Derived workbook URLs follow the media_audio naming scheme; issues
	// outside the authored table usually still resolve on the CDN.
	workbookURLPattern = "https://b.jw-cdn.org/files/media_audio/mwb/"

	watchtowerFallbackURL = "https://b.jw-cdn.org/files/media_audio/w/202401_w_E.mp3"
)

// FallbackURL returns the static single-file URL for a content type and
// week key. Playlist types are served by FallbackPlaylist.
func FallbackURL(contentType Type, weekStart time.Time) string {
	key := weekStart.Format("2006-01-02")
	switch contentType {
	case TypeWatchtower:
		if url, ok := watchtowerOverrides[key]; ok {
			return url
		}
		return watchtowerFallbackURL
	default:
		if url, ok := workbookOverrides[key]; ok {
			return url
		}
		return workbookURLPattern + weekStart.Format("200601") + "_mwb_E.mp3"
	}
}

// FallbackPlaylist returns the static ordered URL list for a playlist type
// and week key. Weeks outside the authored range get the earliest authored
// week's playlist, so playback always has something to hand over.
func FallbackPlaylist(contentType Type, weekStart time.Time) []string {
	key := weekStart.Format("2006-01-02")
	sections, ok := weeklySections[key]
	if !ok {
		sections = weeklySections[earliestSectionWeek]
	}
	if contentType == TypeCongregationStudy {
		return sections.congregationStudy
	}
	return sections.bibleReading
}

// Resolved once at startup; ISO date keys sort chronologically.
var earliestSectionWeek = func() string {
	keys := make([]string, 0, len(weeklySections))
	for k := range weeklySections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0]
}()
