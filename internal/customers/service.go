package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campground/internal/shared/apperr"
)

type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, search string) ([]Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	customer := &Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		City:      req.City,
		Province:  req.Province,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Duplicate("email", "a customer with email %s already exists", req.Email)
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Customer, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validation("invalid customer id %q", id)
	}

	customer, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer %s not found", id)
		}
		return nil, err
	}
	return customer, nil
}

func (s *service) List(ctx context.Context, search string) ([]Customer, error) {
	return s.repo.List(ctx, search)
}
