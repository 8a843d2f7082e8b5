package dashboard

import (
	"context"
	"fmt"
	"time"

	"campground/internal/shared/apperr"
	"campground/pkg/cache"
	"campground/pkg/logger"
)

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
	TodayArrivals(ctx context.Context) ([]Movement, error)
	TodayDepartures(ctx context.Context) ([]Movement, error)
	MonthlySummary(ctx context.Context, year, month int) (*FiscalSummary, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
	now      func() time.Time
}

func NewService(repo Repository, cacheSvc cache.Service, cacheTTL time.Duration) Service {
	return &service{repo: repo, cache: cacheSvc, cacheTTL: cacheTTL, now: time.Now}
}

// today truncates to a calendar date so it compares cleanly against the
// date-typed columns.
func (s *service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	cacheKey := "dashboard:stats:" + s.today().Format("2006-01-02")
	var stats Stats
	if s.cached(ctx, cacheKey, &stats) {
		return &stats, nil
	}

	day := s.today()
	total, active, err := s.repo.CountSpots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count spots: %w", err)
	}

	occupied, err := s.repo.CountOccupied(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to count occupied spots: %w", err)
	}

	arrivals, err := s.repo.Arrivals(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load arrivals: %w", err)
	}
	departures, err := s.repo.Departures(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load departures: %w", err)
	}

	summary, err := s.repo.MonthlySummary(ctx, day.Year(), int(day.Month()))
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly revenue: %w", err)
	}

	stats = Stats{
		ActiveSpots:     active,
		TotalSpots:      total,
		TodayArrivals:   int64(len(arrivals)),
		TodayDepartures: int64(len(departures)),
		MonthlyRevenue:  summary.TotalRevenue,
	}
	if active > 0 {
		stats.OccupancyRate = float64(occupied) / float64(active)
	}

	s.store(ctx, cacheKey, stats)
	return &stats, nil
}

func (s *service) TodayArrivals(ctx context.Context) ([]Movement, error) {
	cacheKey := "dashboard:arrivals:" + s.today().Format("2006-01-02")
	var cached []Movement
	if s.cached(ctx, cacheKey, &cached) {
		return cached, nil
	}

	arrivals, err := s.repo.Arrivals(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to load arrivals: %w", err)
	}
	s.store(ctx, cacheKey, arrivals)
	return arrivals, nil
}

func (s *service) TodayDepartures(ctx context.Context) ([]Movement, error) {
	cacheKey := "dashboard:departures:" + s.today().Format("2006-01-02")
	var cached []Movement
	if s.cached(ctx, cacheKey, &cached) {
		return cached, nil
	}

	departures, err := s.repo.Departures(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to load departures: %w", err)
	}
	s.store(ctx, cacheKey, departures)
	return departures, nil
}

func (s *service) MonthlySummary(ctx context.Context, year, month int) (*FiscalSummary, error) {
	if year < 2000 || year > 2100 {
		return nil, apperr.Validation("year %d is out of range", year)
	}
	if month < 1 || month > 12 {
		return nil, apperr.Validation("month %d is out of range", month)
	}
	return s.repo.MonthlySummary(ctx, year, month)
}

func (s *service) cached(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, key, dest) == nil
}

func (s *service) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		logger.GetDefault().Warn("failed to cache dashboard data", "key", key, "error", err)
	}
}
