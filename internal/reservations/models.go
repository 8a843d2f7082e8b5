package reservations

import (
	"time"

	"github.com/google/uuid"

	"campground/internal/customers"
	"campground/internal/spots"
)

// Reservation is a stay booked against one spot for one customer. CheckIn
// and CheckOut are calendar dates; TotalPrice and Deposit are kept consistent
// with the pricing formula at every date or occupancy mutation.
type Reservation struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	SpotID     uuid.UUID `json:"spot_id" gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index"`

	CheckIn  time.Time `json:"check_in" gorm:"type:date;not null"`
	CheckOut time.Time `json:"check_out" gorm:"type:date;not null"`

	Adults   int `json:"adults" gorm:"not null"`
	Children int `json:"children" gorm:"not null;default:0"`

	Status     Status  `json:"status" gorm:"type:varchar(15);not null;default:'HOLD';index"`
	TotalPrice float64 `json:"total_price" gorm:"not null"`
	Deposit    float64 `json:"deposit" gorm:"not null"`

	Spot     *spots.Spot         `json:"spot,omitempty" gorm:"foreignKey:SpotID"`
	Customer *customers.Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Notes    []Note              `json:"notes,omitempty" gorm:"foreignKey:ReservationID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// Nights is the billed night count for the current date pair.
func (r *Reservation) Nights() int {
	return nightsBetween(r.CheckIn, r.CheckOut)
}

// nightsBetween rounds the day difference and never bills below one night.
func nightsBetween(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours()/24 + 0.5)
	if nights < 1 {
		nights = 1
	}
	return nights
}

// Note is an append-only annotation left by an admin on a reservation.
type Note struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ReservationID uuid.UUID `json:"reservation_id" gorm:"type:uuid;not null;index"`
	Author        string    `json:"author" gorm:"not null"`
	Text          string    `json:"text" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Note) TableName() string {
	return "reservation_notes"
}
