package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campground/internal/reservations"
	"campground/internal/spots"
)

type Repository interface {
	CountSpots(ctx context.Context) (total, active int64, err error)
	CountOccupied(ctx context.Context, day time.Time) (int64, error)
	Arrivals(ctx context.Context, day time.Time) ([]Movement, error)
	Departures(ctx context.Context, day time.Time) ([]Movement, error)
	MonthlySummary(ctx context.Context, year, month int) (*FiscalSummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountSpots(ctx context.Context) (int64, int64, error) {
	var total, active int64
	if err := r.db.WithContext(ctx).Model(&spots.Spot{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.WithContext(ctx).Model(&spots.Spot{}).
		Where("is_active = ?", true).
		Count(&active).Error
	if err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

// CountOccupied counts confirmed reservations whose stay covers the given
// day. Check-out day itself is not an occupied night.
func (r *repository) CountOccupied(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&reservations.Reservation{}).
		Where("status = ?", reservations.StatusConfirmed).
		Where("check_in <= ? AND check_out > ?", day, day).
		Count(&count).Error
	return count, err
}

func (r *repository) Arrivals(ctx context.Context, day time.Time) ([]Movement, error) {
	return r.movements(ctx, "check_in", day)
}

func (r *repository) Departures(ctx context.Context, day time.Time) ([]Movement, error) {
	return r.movements(ctx, "check_out", day)
}

func (r *repository) movements(ctx context.Context, dateColumn string, day time.Time) ([]Movement, error) {
	var rows []struct {
		ReservationID uuid.UUID
		FirstName     string
		LastName      string
		SpotNumber    int
		Date          time.Time
		Status        string
	}

	err := r.db.WithContext(ctx).
		Model(&reservations.Reservation{}).
		Select(`reservations.id AS reservation_id,
			customers.first_name, customers.last_name,
			spots.number AS spot_number,
			reservations.`+dateColumn+` AS date,
			reservations.status`).
		Joins("JOIN customers ON customers.id = reservations.customer_id").
		Joins("JOIN spots ON spots.id = reservations.spot_id").
		Where("reservations."+dateColumn+" = ?", day).
		Where("reservations.status IN ?", []reservations.Status{reservations.StatusHold, reservations.StatusConfirmed}).
		Order("spots.number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]Movement, 0, len(rows))
	for _, row := range rows {
		result = append(result, Movement{
			ReservationID: row.ReservationID,
			CustomerName:  row.FirstName + " " + row.LastName,
			SpotNumber:    row.SpotNumber,
			Date:          row.Date.Format("2006-01-02"),
			Status:        row.Status,
		})
	}
	return result, nil
}

func (r *repository) MonthlySummary(ctx context.Context, year, month int) (*FiscalSummary, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var row struct {
		TotalRevenue     float64
		ReservationCount int64
	}
	err := r.db.WithContext(ctx).
		Model(&reservations.Reservation{}).
		Select("COALESCE(SUM(total_price), 0) AS total_revenue, COUNT(*) AS reservation_count").
		Where("status IN ?", []reservations.Status{reservations.StatusConfirmed, reservations.StatusCompleted}).
		Where("check_in >= ? AND check_in < ?", start, end).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &FiscalSummary{
		Year:             year,
		Month:            month,
		TotalRevenue:     row.TotalRevenue,
		ReservationCount: row.ReservationCount,
	}, nil
}
