package syncer

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/meetingcast/content-api/internal/services/content"
	"github.com/meetingcast/content-api/pkg/week"
)

const (
	// DefaultPeriod is how often the background sync runs.
	DefaultPeriod = 24 * time.Hour
	// prefetchWeeks is how many weeks ahead of the current one are warmed.
	prefetchWeeks = 3
	// maxConcurrent bounds parallel resolutions against the remote API.
	maxConcurrent = 4
)

// SongRefresher is the forced catalog refresh the sync pass ends with.
type SongRefresher interface {
	Refresh(ctx context.Context) error
}

// Resolver resolves one content type for one week.
type Resolver interface {
	Resolve(ctx context.Context, contentType content.Type, weekStart time.Time) (*content.Resolution, error)
}

// Sweeper deletes expired cache rows.
type Sweeper interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Result summarizes one sync pass.
type Result struct {
	Swept    int64 `json:"swept"`
	Warmed   int   `json:"warmed"`
	Failed   int   `json:"failed"`
	Duration int64 `json:"duration_ms"`
}

// Service keeps the content cache warm. Each pass sweeps expired rows,
// prefetches the current and next three weeks for every content type, and
// force-refreshes the song catalog. Each unit fails independently so one bad
// week never blocks the rest.
type Service struct {
	resolver Resolver
	sweeper  Sweeper
	songs    SongRefresher
	weeks    *week.Calculator
	period   time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Option configures a Service.
type Option func(*Service)

// WithPeriod overrides the sync interval. Non-positive values keep the
// default.
func WithPeriod(period time.Duration) Option {
	return func(s *Service) {
		if period > 0 {
			s.period = period
		}
	}
}

// WithCalculator overrides the week calculator, for tests.
func WithCalculator(calc *week.Calculator) Option {
	return func(s *Service) { s.weeks = calc }
}

// NewService creates a sync service.
func NewService(resolver Resolver, sweeper Sweeper, songs SongRefresher, opts ...Option) *Service {
	s := &Service{
		resolver: resolver,
		sweeper:  sweeper,
		songs:    songs,
		weeks:    week.NewCalculator(nil),
		period:   DefaultPeriod,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one sync pass and reports what it did.
func (s *Service) Run(ctx context.Context) Result {
	start := time.Now()
	var result Result

	if s.sweeper != nil {
		swept, err := s.sweeper.DeleteExpired(ctx, time.Now())
		if err != nil {
			log.Printf("[WARN] Expired cache sweep failed: %v", err)
		} else {
			result.Swept = swept
		}
	}

	warmed, failed := s.prefetch(ctx)
	result.Warmed = warmed
	result.Failed = failed

	if s.songs != nil {
		if err := s.songs.Refresh(ctx); err != nil {
			log.Printf("[WARN] Forced song refresh failed: %v", err)
			result.Failed++
		} else {
			result.Warmed++
		}
	}

	result.Duration = time.Since(start).Milliseconds()
	log.Printf("[INFO] Sync pass done: swept=%d warmed=%d failed=%d in %dms",
		result.Swept, result.Warmed, result.Failed, result.Duration)
	return result
}

// prefetch resolves every content type for the current week and the next
// prefetchWeeks, with bounded concurrency.
func (s *Service) prefetch(ctx context.Context) (warmed, failed int) {
	type unit struct {
		contentType content.Type
		weekStart   time.Time
	}
	var units []unit
	for offset := 0; offset <= prefetchWeeks; offset++ {
		info := s.weeks.ForOffset(offset)
		for _, contentType := range content.AllTypes() {
			units = append(units, unit{contentType: contentType, weekStart: info.WeekStart})
		}
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, maxConcurrent)
	)
	for _, u := range units {
		wg.Add(1)
		go func(u unit) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			_, err := s.resolver.Resolve(ctx, u.contentType, u.weekStart)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				log.Printf("[WARN] Prefetch %s %s failed: %v",
					u.contentType, u.weekStart.Format("2006-01-02"), err)
				return
			}
			warmed++
		}(u)
	}
	wg.Wait()
	return warmed, failed
}

// Start runs a pass immediately, then repeats every period until Stop.
func (s *Service) Start(ctx context.Context) {
	go func() {
		defer close(s.done)

		s.Run(ctx)

		ticker := time.NewTicker(s.period)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Run(ctx)
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the background loop and waits for it to exit.
func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}
