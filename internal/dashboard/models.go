package dashboard

import "github.com/google/uuid"

// Stats is the front-desk overview for today.
type Stats struct {
	ActiveSpots     int64   `json:"active_spots"`
	TotalSpots      int64   `json:"total_spots"`
	OccupancyRate   float64 `json:"occupancy_rate"`
	TodayArrivals   int64   `json:"today_arrivals"`
	TodayDepartures int64   `json:"today_departures"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
}

// Movement is one arrival or departure line on the daily sheet.
type Movement struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	CustomerName  string    `json:"customer_name"`
	SpotNumber    int       `json:"spot_number"`
	Date          string    `json:"date"`
	Status        string    `json:"status"`
}

// FiscalSummary aggregates revenue for one calendar month, by check-in date.
type FiscalSummary struct {
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	TotalRevenue     float64 `json:"total_revenue"`
	ReservationCount int64   `json:"reservation_count"`
}
