package spots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListQuery carries the filters the repository can push down to SQL. Vehicle
// and ground predicates stay in Go (see filters.go) because ranges live in a
// serialized column.
type ListQuery struct {
	Service    ServiceCategory
	Status     Status
	ActiveOnly bool
	Search     string // matched against the spot number and particularity
}

type Repository interface {
	Create(ctx context.Context, spot *Spot) error
	GetByID(ctx context.Context, id uuid.UUID) (*Spot, error)
	List(ctx context.Context, query ListQuery) ([]Spot, error)
	Update(ctx context.Context, spot *Spot) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, spot *Spot) error {
	return r.db.WithContext(ctx).Create(spot).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Spot, error) {
	var spot Spot
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&spot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get spot: %w", err)
	}
	return &spot, nil
}

func (r *repository) List(ctx context.Context, query ListQuery) ([]Spot, error) {
	q := r.db.WithContext(ctx).Model(&Spot{})

	if query.Service != "" {
		q = q.Where("service = ?", query.Service)
	}
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}
	if query.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if query.Search != "" {
		like := "%" + query.Search + "%"
		q = q.Where("CAST(number AS TEXT) LIKE ? OR particularite ILIKE ?", like, like)
	}

	var result []Spot
	if err := q.Order("number ASC").Find(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to list spots: %w", err)
	}
	return result, nil
}

func (r *repository) Update(ctx context.Context, spot *Spot) error {
	return r.db.WithContext(ctx).Save(spot).Error
}
