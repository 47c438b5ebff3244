package content

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", iso)
	require.NoError(t, err)
	return d
}

func TestFallbackURLCoveredWeeks(t *testing.T) {
	wb := FallbackURL(TypeWorkbook, mustDate(t, "2025-11-03"))
	assert.Equal(t, "https://cfp2.jw-cdn.org/a/b5898cd/1/o/mwb_E_202511_01.mp3", wb)

	wt := FallbackURL(TypeWatchtower, mustDate(t, "2025-11-10"))
	assert.Equal(t, "https://cfp2.jw-cdn.org/a/861929/1/o/w_E_202509_01.mp3", wt)
}

func TestFallbackURLUncoveredWeeksAreTotal(t *testing.T) {
	wb := FallbackURL(TypeWorkbook, mustDate(t, "2030-01-01"))
	assert.Equal(t, "https://b.jw-cdn.org/files/media_audio/mwb/203001_mwb_E.mp3", wb,
		"uncovered workbook weeks derive the issue URL from the date")

	wt := FallbackURL(TypeWatchtower, mustDate(t, "2030-01-01"))
	assert.Equal(t, watchtowerFallbackURL, wt)
}

func TestFallbackPlaylistCoveredWeek(t *testing.T) {
	urls := FallbackPlaylist(TypeBibleReading, mustDate(t, "2025-11-10"))
	require.Len(t, urls, 3)
	assert.True(t, strings.HasSuffix(urls[0], "bi12_22_Ca_E_03.mp3"))
	assert.True(t, strings.HasSuffix(urls[2], "bi12_22_Ca_E_05.mp3"), "order preserved")

	study := FallbackPlaylist(TypeCongregationStudy, mustDate(t, "2025-11-10"))
	require.Len(t, study, 2)
	assert.True(t, strings.HasSuffix(study[0], "lfb_E_035.mp3"))
}

func TestFallbackPlaylistUncoveredWeekUsesEarliest(t *testing.T) {
	want := FallbackPlaylist(TypeBibleReading, mustDate(t, "2025-11-03"))
	got := FallbackPlaylist(TypeBibleReading, mustDate(t, "2030-01-01"))
	require.NotEmpty(t, got)
	assert.Equal(t, want, got)
}

func TestFallbacksNeverEmpty(t *testing.T) {
	dates := []string{"2025-11-03", "2026-04-27", "2024-01-01", "2030-06-15"}
	for _, d := range dates {
		day := mustDate(t, d)
		for _, ct := range AllTypes() {
			if ct.IsPlaylist() {
				assert.NotEmpty(t, FallbackPlaylist(ct, day), "%s %s", ct, d)
			} else {
				assert.NotEmpty(t, FallbackURL(ct, day), "%s %s", ct, d)
			}
		}
	}
}
