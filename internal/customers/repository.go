package customers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	List(ctx context.Context, search string) ([]Customer, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, customer *Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	var customer Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repository) List(ctx context.Context, search string) ([]Customer, error) {
	query := r.db.WithContext(ctx).Model(&Customer{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			like, like, like, like,
		)
	}

	var result []Customer
	if err := query.Order("last_name ASC, first_name ASC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}
