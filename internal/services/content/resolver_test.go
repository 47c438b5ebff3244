package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetingcast/content-api/internal/models"
	"github.com/meetingcast/content-api/internal/services/pubmedia"
)

// stubFetcher counts calls and serves a canned response or error.
type stubFetcher struct {
	resp  *pubmedia.Response
	err   error
	calls int
}

func (f *stubFetcher) PublicationMedia(ctx context.Context, pub, issue string) (*pubmedia.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func singleFileResponse(url string) *pubmedia.Response {
	return &pubmedia.Response{
		Files: map[string]pubmedia.LanguageFiles{
			"E": {MP3: []pubmedia.MediaFile{{Title: "audio", Track: 1, File: &pubmedia.FileInfo{URL: url}}}},
		},
	}
}

// brokenStore simulates a dead database.
type brokenStore struct{}

func (brokenStore) GetByKey(context.Context, string) (*models.CachedContent, error) {
	return nil, newStoreError("read", errors.New("disk gone"))
}
func (brokenStore) Upsert(context.Context, *models.CachedContent) error {
	return newStoreError("upsert", errors.New("disk gone"))
}
func (brokenStore) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, newStoreError("sweep", errors.New("disk gone"))
}
func (brokenStore) Count(context.Context) (int64, error) {
	return 0, newStoreError("count", errors.New("disk gone"))
}

var testNow = time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC) // a Thursday

func fixedNow() time.Time { return testNow }

func newTestService(t *testing.T, fetcher MediaFetcher) (*Service, *Repository) {
	t.Helper()
	repo := NewRepository(setupTestDB(t))
	return NewService(repo, fetcher, WithClock(fixedNow)), repo
}

func seedEntry(t *testing.T, repo *Repository, entry *models.CachedContent) {
	t.Helper()
	require.NoError(t, repo.Upsert(context.Background(), entry))
}

func TestResolveFreshCacheHitSkipsNetwork(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("must not be called")}
	svc, repo := newTestService(t, fetcher)

	seedEntry(t, repo, &models.CachedContent{
		CacheKey:    "workbook:2025-11-17",
		ContentType: "workbook",
		WeekStart:   "2025-11-17",
		URL:         "https://cdn.example/cached.mp3",
		FetchedAt:   testNow.Add(-time.Hour).UnixMilli(),
		ExpiresAt:   testNow.Add(time.Hour).UnixMilli(),
	})

	res, err := svc.Resolve(context.Background(), TypeWorkbook, mustDate(t, "2025-11-17"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/cached.mp3", res.URL)
	assert.Equal(t, SourceCache, res.Source)
	assert.Zero(t, fetcher.calls, "fresh cache hit must not touch the network")
}

func TestResolveEmptyCacheFailingRemoteUsesFallback(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	svc, _ := newTestService(t, fetcher)

	res, err := svc.Resolve(context.Background(), TypeWorkbook, mustDate(t, "2025-11-03"))
	require.NoError(t, err, "remote failure must never surface to the caller")
	assert.Equal(t, "https://cfp2.jw-cdn.org/a/b5898cd/1/o/mwb_E_202511_01.mp3", res.URL,
		"literal override URL for the covered week")
	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, 1, fetcher.calls)
}

func TestResolveUncoveredWeekReturnsDeterministicDefault(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	svc, _ := newTestService(t, fetcher)

	res, err := svc.Resolve(context.Background(), TypeWorkbook, mustDate(t, "2030-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "https://b.jw-cdn.org/files/media_audio/mwb/203001_mwb_E.mp3", res.URL)
}

func TestResolveStalePreferredOverFallback(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("timeout")}
	svc, repo := newTestService(t, fetcher)

	seedEntry(t, repo, &models.CachedContent{
		CacheKey:    "watchtower:2025-11-10",
		ContentType: "watchtower",
		WeekStart:   "2025-11-10",
		URL:         "https://cdn.example/stale-but-real.mp3",
		FetchedAt:   testNow.Add(-60 * 24 * time.Hour).UnixMilli(),
		ExpiresAt:   testNow.Add(-30 * 24 * time.Hour).UnixMilli(),
	})

	res, err := svc.Resolve(context.Background(), TypeWatchtower, mustDate(t, "2025-11-10"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/stale-but-real.mp3", res.URL,
		"expired entry beats the static default when the network is down")
	assert.Equal(t, SourceStale, res.Source)
}

func TestResolveRemoteSuccessCachesResult(t *testing.T) {
	fetcher := &stubFetcher{resp: singleFileResponse("https://cdn.example/fresh.mp3")}
	svc, repo := newTestService(t, fetcher)

	res, err := svc.Resolve(context.Background(), TypeWorkbook, mustDate(t, "2025-11-10"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/fresh.mp3", res.URL)
	assert.Equal(t, SourceRemote, res.Source)

	entry, err := repo.GetByKey(context.Background(), "workbook:2025-11-10")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "https://cdn.example/fresh.mp3", entry.URL)
	assert.Equal(t, testNow.UnixMilli(), entry.FetchedAt)
}

func TestResolveTTLAssignment(t *testing.T) {
	cases := []struct {
		name    string
		week    string
		wantTTL time.Duration
	}{
		{"past week", "2025-11-03", models.TTLPast},
		{"future week", "2025-12-01", models.TTLFuture},
		{"week starting today is not future", "2025-11-20", models.TTLPast},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := &stubFetcher{resp: singleFileResponse("https://cdn.example/x.mp3")}
			svc, repo := newTestService(t, fetcher)

			_, err := svc.Resolve(context.Background(), TypeWorkbook, mustDate(t, tc.week))
			require.NoError(t, err)

			entry, err := repo.GetByKey(context.Background(), "workbook:"+tc.week)
			require.NoError(t, err)
			require.NotNil(t, entry)
			assert.Equal(t, tc.wantTTL,
				time.Duration(entry.ExpiresAt-entry.FetchedAt)*time.Millisecond)
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	fetcher := &stubFetcher{resp: singleFileResponse("https://cdn.example/same.mp3")}
	repo := NewRepository(setupTestDB(t))

	// Short-circuit the fresh-cache tier so both resolutions hit the remote.
	svc := NewService(repo, fetcher, WithClock(fixedNow))
	first, err := svc.Resolve(context.Background(), TypeWorkbook, mustDate(t, "2025-11-03"))
	require.NoError(t, err)

	later := testNow.Add(31 * 24 * time.Hour)
	svc = NewService(repo, fetcher, WithClock(func() time.Time { return later }))
	second, err := svc.Resolve(context.Background(), TypeWorkbook, mustDate(t, "2025-11-03"))
	require.NoError(t, err)

	assert.Equal(t, first.URL, second.URL)
	assert.Equal(t, 2, fetcher.calls)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "replace semantics, no duplicate rows")
}

func TestResolveRemoteSuccessWithoutAudioCachesFallback(t *testing.T) {
	fetcher := &stubFetcher{resp: &pubmedia.Response{}}
	svc, repo := newTestService(t, fetcher)

	res, err := svc.Resolve(context.Background(), TypeWatchtower, mustDate(t, "2025-11-10"))
	require.NoError(t, err)
	assert.Equal(t, "https://cfp2.jw-cdn.org/a/861929/1/o/w_E_202509_01.mp3", res.URL)
	assert.Equal(t, SourceFallback, res.Source)

	entry, err := repo.GetByKey(context.Background(), "watchtower:2025-11-10")
	require.NoError(t, err)
	require.NotNil(t, entry, "substituted URL is cached so the catalog is not re-queried")
}

func TestResolveEmptyRemoteResponseIgnoresStaleEntry(t *testing.T) {
	fetcher := &stubFetcher{resp: &pubmedia.Response{}}
	svc, repo := newTestService(t, fetcher)

	seedEntry(t, repo, &models.CachedContent{
		CacheKey:    "watchtower:2025-11-10",
		ContentType: "watchtower",
		WeekStart:   "2025-11-10",
		URL:         "https://cdn.example/stale-but-real.mp3",
		FetchedAt:   testNow.Add(-60 * 24 * time.Hour).UnixMilli(),
		ExpiresAt:   testNow.Add(-30 * 24 * time.Hour).UnixMilli(),
	})

	// The remote call succeeded; the stale entry is only a fallback for
	// remote failures. The static URL is substituted directly.
	res, err := svc.Resolve(context.Background(), TypeWatchtower, mustDate(t, "2025-11-10"))
	require.NoError(t, err)
	assert.Equal(t, "https://cfp2.jw-cdn.org/a/861929/1/o/w_E_202509_01.mp3", res.URL)
	assert.Equal(t, SourceFallback, res.Source)
}

func TestResolvePlaylistFromStaticTable(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("must not be called")}
	svc, repo := newTestService(t, fetcher)

	res, err := svc.Resolve(context.Background(), TypeBibleReading, mustDate(t, "2025-11-10"))
	require.NoError(t, err)
	require.Len(t, res.Playlist, 3)
	assert.Equal(t, res.Playlist[0], res.URL)
	assert.Zero(t, fetcher.calls, "no remote endpoint is wired for playlist types")

	// The static result is cached; the next read is a cache hit.
	entry, err := repo.GetByKey(context.Background(), "bible_reading:2025-11-10")
	require.NoError(t, err)
	require.NotNil(t, entry)

	res2, err := svc.Resolve(context.Background(), TypeBibleReading, mustDate(t, "2025-11-10"))
	require.NoError(t, err)
	assert.Equal(t, SourceCache, res2.Source)
	assert.Equal(t, res.Playlist, res2.Playlist)
}

func TestResolveStalePlaylistPreferred(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("offline")}
	svc, repo := newTestService(t, fetcher)

	stale := &models.CachedContent{
		CacheKey:    "congregation_study:2025-11-03",
		ContentType: "congregation_study",
		WeekStart:   "2025-11-03",
		FetchedAt:   testNow.Add(-60 * 24 * time.Hour).UnixMilli(),
		ExpiresAt:   testNow.Add(-30 * 24 * time.Hour).UnixMilli(),
	}
	require.NoError(t, stale.SetPlaylist([]string{"https://cdn.example/stale-1.mp3", "https://cdn.example/stale-2.mp3"}))
	seedEntry(t, repo, stale)

	res, err := svc.Resolve(context.Background(), TypeCongregationStudy, mustDate(t, "2025-11-03"))
	require.NoError(t, err)
	assert.Equal(t, SourceStale, res.Source)
	assert.Equal(t, []string{"https://cdn.example/stale-1.mp3", "https://cdn.example/stale-2.mp3"}, res.Playlist)
}

func TestResolveStoreFailurePropagates(t *testing.T) {
	svc := NewService(brokenStore{}, &stubFetcher{}, WithClock(fixedNow))

	_, err := svc.Resolve(context.Background(), TypeWorkbook, mustDate(t, "2025-11-03"))
	assert.ErrorIs(t, err, ErrStoreUnavailable,
		"a dead store is the only failure a resolution surfaces")
}

func TestResolveNilFetcherBehavesLikeOutage(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	svc := NewService(repo, nil, WithClock(fixedNow))

	res, err := svc.Resolve(context.Background(), TypeWorkbook, mustDate(t, "2025-11-03"))
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)
}
