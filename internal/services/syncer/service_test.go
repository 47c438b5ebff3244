package syncer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetingcast/content-api/internal/services/content"
	"github.com/meetingcast/content-api/pkg/week"
)

type stubResolver struct {
	mu       sync.Mutex
	calls    []string
	failWeek string
}

func (r *stubResolver) Resolve(ctx context.Context, contentType content.Type, weekStart time.Time) (*content.Resolution, error) {
	weekKey := weekStart.Format("2006-01-02")
	r.mu.Lock()
	r.calls = append(r.calls, string(contentType)+":"+weekKey)
	r.mu.Unlock()

	if weekKey == r.failWeek {
		return nil, errors.New("remote down")
	}
	return &content.Resolution{Type: contentType, WeekStart: weekKey}, nil
}

type stubSweeper struct {
	swept int64
	err   error
}

func (s *stubSweeper) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.swept, s.err
}

type stubSongs struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubSongs) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.err
}

// Mondays relative to a fixed Thursday clock.
var syncTestNow = time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC)

func fixedCalculator() *week.Calculator {
	return week.NewCalculator(func() time.Time { return syncTestNow })
}

func TestRunWarmsFourWeeksOfEveryType(t *testing.T) {
	resolver := &stubResolver{}
	songs := &stubSongs{}
	svc := NewService(resolver, &stubSweeper{swept: 3}, songs, WithCalculator(fixedCalculator()))

	result := svc.Run(context.Background())

	assert.EqualValues(t, 3, result.Swept)
	assert.Equal(t, 17, result.Warmed, "4 weeks x 4 types plus the song refresh")
	assert.Zero(t, result.Failed)
	assert.Len(t, resolver.calls, 16)
	assert.Equal(t, 1, songs.calls)

	seen := make(map[string]bool)
	for _, call := range resolver.calls {
		seen[call] = true
	}
	for _, weekKey := range []string{"2025-11-17", "2025-11-24", "2025-12-01", "2025-12-08"} {
		for _, contentType := range content.AllTypes() {
			assert.True(t, seen[string(contentType)+":"+weekKey], "missing unit %s:%s", contentType, weekKey)
		}
	}
}

func TestRunIsolatesUnitFailures(t *testing.T) {
	resolver := &stubResolver{failWeek: "2025-11-24"}
	svc := NewService(resolver, &stubSweeper{}, &stubSongs{}, WithCalculator(fixedCalculator()))

	result := svc.Run(context.Background())

	assert.Equal(t, 4, result.Failed, "one broken week fails its four types only")
	assert.Equal(t, 13, result.Warmed)
	assert.Len(t, resolver.calls, 16, "remaining weeks are still attempted")
}

func TestRunSurvivesSweepAndSongFailures(t *testing.T) {
	svc := NewService(&stubResolver{}, &stubSweeper{err: errors.New("locked")},
		&stubSongs{err: errors.New("offline")}, WithCalculator(fixedCalculator()))

	result := svc.Run(context.Background())

	assert.Zero(t, result.Swept)
	assert.Equal(t, 16, result.Warmed)
	assert.Equal(t, 1, result.Failed)
}

func TestStartRunsImmediatelyAndStops(t *testing.T) {
	resolver := &stubResolver{}
	songs := &stubSongs{}
	svc := NewService(resolver, &stubSweeper{}, songs,
		WithCalculator(fixedCalculator()), WithPeriod(time.Hour))

	svc.Start(context.Background())

	require.Eventually(t, func() bool {
		songs.mu.Lock()
		defer songs.mu.Unlock()
		return songs.calls >= 1
	}, 2*time.Second, 10*time.Millisecond)

	svc.Stop()

	resolver.mu.Lock()
	defer resolver.mu.Unlock()
	assert.Len(t, resolver.calls, 16, "exactly one pass before the hour tick")
}
