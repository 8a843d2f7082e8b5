package reservations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListQuery struct {
	// Status filters to one status; empty means every status except
	// EXPIRED, which stays hidden unless asked for.
	Status Status
	// SearchDate matches check-in or check-out equality when the search
	// text parsed as a date.
	SearchDate string
	// SearchText substring-matches customer name/email/phone, spot number
	// and the date columns.
	SearchText string
}

type Repository interface {
	Create(ctx context.Context, reservation *Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	List(ctx context.Context, query ListQuery) ([]Reservation, error)
	// UpdateFields flushes the given columns in one UPDATE so related
	// fields (dates and prices) never land separately.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	AddNote(ctx context.Context, note *Note) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, reservation *Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).
		Preload("Spot").
		Preload("Customer").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&reservation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) List(ctx context.Context, query ListQuery) ([]Reservation, error) {
	db := r.db.WithContext(ctx).
		Model(&Reservation{}).
		Preload("Spot").
		Preload("Customer")

	if query.Status != "" {
		db = db.Where("reservations.status = ?", query.Status)
	} else {
		db = db.Where("reservations.status <> ?", StatusExpired)
	}

	if query.SearchDate != "" {
		date, err := time.Parse("2006-01-02", query.SearchDate)
		if err == nil {
			db = db.Where("reservations.check_in = ? OR reservations.check_out = ?", date, date)
		}
	} else if query.SearchText != "" {
		like := "%" + query.SearchText + "%"
		db = db.
			Joins("JOIN customers ON customers.id = reservations.customer_id").
			Joins("JOIN spots ON spots.id = reservations.spot_id").
			Where(`customers.first_name ILIKE ? OR customers.last_name ILIKE ?
				OR customers.email ILIKE ? OR customers.phone ILIKE ?
				OR CAST(spots.number AS TEXT) LIKE ?
				OR CAST(reservations.check_in AS TEXT) LIKE ?
				OR CAST(reservations.check_out AS TEXT) LIKE ?`,
				like, like, like, like, like, like, like)
	}

	var result []Reservation
	if err := db.Order("reservations.created_at DESC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (r *repository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) AddNote(ctx context.Context, note *Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}
