package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campground/internal/shared/apperr"
)

type fakeRepo struct {
	total    int64
	active   int64
	occupied int64
	arrivals []Movement
	revenue  float64
}

func (f *fakeRepo) CountSpots(ctx context.Context) (int64, int64, error) {
	return f.total, f.active, nil
}

func (f *fakeRepo) CountOccupied(ctx context.Context, day time.Time) (int64, error) {
	return f.occupied, nil
}

func (f *fakeRepo) Arrivals(ctx context.Context, day time.Time) ([]Movement, error) {
	return f.arrivals, nil
}

func (f *fakeRepo) Departures(ctx context.Context, day time.Time) ([]Movement, error) {
	return nil, nil
}

func (f *fakeRepo) MonthlySummary(ctx context.Context, year, month int) (*FiscalSummary, error) {
	return &FiscalSummary{Year: year, Month: month, TotalRevenue: f.revenue, ReservationCount: 2}, nil
}

func TestStatsOccupancyRate(t *testing.T) {
	repo := &fakeRepo{total: 120, active: 100, occupied: 40, revenue: 12500.50}
	svc := NewService(repo, nil, time.Minute).(*service)
	svc.now = func() time.Time { return time.Date(2026, 7, 15, 10, 0, 0, 0, time.UTC) }

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(120), stats.TotalSpots)
	assert.Equal(t, int64(100), stats.ActiveSpots)
	assert.InDelta(t, 0.4, stats.OccupancyRate, 1e-9)
	assert.Equal(t, 12500.50, stats.MonthlyRevenue)
}

func TestStatsZeroActiveSpots(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, time.Minute).(*service)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.OccupancyRate)
}

func TestMonthlySummaryValidation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, time.Minute)

	_, err := svc.MonthlySummary(context.Background(), 2026, 13)
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.MonthlySummary(context.Background(), 1800, 5)
	assert.True(t, apperr.IsValidation(err))

	summary, err := svc.MonthlySummary(context.Background(), 2026, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, summary.Month)
}
