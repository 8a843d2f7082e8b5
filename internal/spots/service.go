package spots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campground/internal/shared/apperr"
	"campground/pkg/cache"
	"campground/pkg/logger"
)

const cacheKeySpotsAll = "spots:all"

type Service interface {
	Create(ctx context.Context, req CreateSpotRequest) (*Spot, error)
	Update(ctx context.Context, id string, req UpdateSpotRequest) (*Spot, error)
	ToggleActive(ctx context.Context, id string) (*Spot, error)
	GetByID(ctx context.Context, id string) (*Spot, error)
	List(ctx context.Context, filters Filters) ([]Spot, error)
	// FilterOptions runs the cascading filter pipeline over bookable
	// spots for the reservation creation flow.
	FilterOptions(ctx context.Context, state FilterState) (*CascadeResult, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

// NewService creates the spot service. cacheSvc may be nil; listing then
// always hits the database.
func NewService(repo Repository, cacheSvc cache.Service, cacheTTL time.Duration) Service {
	return &service{repo: repo, cache: cacheSvc, cacheTTL: cacheTTL}
}

func (s *service) Create(ctx context.Context, req CreateSpotRequest) (*Spot, error) {
	spot := &Spot{
		Number:          req.Number,
		Service:         ServiceCategory(req.Service),
		Status:          Status(req.Status),
		Longueur:        req.Longueur,
		Largeur:         req.Largeur,
		Soleil:          req.Soleil,
		MotoriseRange:   req.MotoriseRange,
		FifthwheelRange: req.FifthwheelRange,
		RoulotteRange:   req.RoulotteRange,
		CampeurPorte:    req.CampeurPorte,
		TenteRoulotte:   req.TenteRoulotte,
		Tente:           req.Tente,
		Particularite:   req.Particularite,
		PricePerNight:   req.PricePerNight,
		IsActive:        true,
	}
	if req.IsActive != nil {
		spot.IsActive = *req.IsActive
	}
	if req.Sol != nil {
		ground := GroundType(*req.Sol)
		spot.Sol = &ground
	}

	if err := validateSpot(spot); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, spot); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Duplicate("number", "a spot numbered %d already exists", spot.Number)
		}
		return nil, fmt.Errorf("failed to create spot: %w", err)
	}

	s.invalidateCache(ctx)
	return spot, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSpotRequest) (*Spot, error) {
	spot, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		spot.Number = *req.Number
	}
	if req.Service != nil {
		spot.Service = ServiceCategory(*req.Service)
	}
	if req.Status != nil {
		spot.Status = Status(*req.Status)
	}
	if req.Longueur != nil {
		spot.Longueur = req.Longueur
	}
	if req.Largeur != nil {
		spot.Largeur = req.Largeur
	}
	if req.Soleil != nil {
		spot.Soleil = req.Soleil
	}
	if req.MotoriseRange != nil {
		spot.MotoriseRange = req.MotoriseRange
	}
	if req.FifthwheelRange != nil {
		spot.FifthwheelRange = req.FifthwheelRange
	}
	if req.RoulotteRange != nil {
		spot.RoulotteRange = req.RoulotteRange
	}
	if req.CampeurPorte != nil {
		spot.CampeurPorte = *req.CampeurPorte
	}
	if req.TenteRoulotte != nil {
		spot.TenteRoulotte = *req.TenteRoulotte
	}
	if req.Tente != nil {
		spot.Tente = *req.Tente
	}
	if req.Sol != nil {
		ground := GroundType(*req.Sol)
		spot.Sol = &ground
	}
	if req.Particularite != nil {
		spot.Particularite = req.Particularite
	}
	if req.PricePerNight != nil {
		spot.PricePerNight = *req.PricePerNight
	}

	if err := validateSpot(spot); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, spot); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Duplicate("number", "a spot numbered %d already exists", spot.Number)
		}
		return nil, fmt.Errorf("failed to update spot: %w", err)
	}

	s.invalidateCache(ctx)
	return spot, nil
}

func (s *service) ToggleActive(ctx context.Context, id string) (*Spot, error) {
	spot, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	spot.IsActive = !spot.IsActive
	if err := s.repo.Update(ctx, spot); err != nil {
		return nil, fmt.Errorf("failed to toggle spot: %w", err)
	}

	s.invalidateCache(ctx)
	return spot, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Spot, error) {
	return s.getByID(ctx, id)
}

func (s *service) List(ctx context.Context, filters Filters) ([]Spot, error) {
	if filters.Service != "" && !ServiceCategory(filters.Service).IsValid() {
		return nil, apperr.Validation("unknown service category %q", filters.Service)
	}
	if filters.Status != "" && !Status(filters.Status).IsValid() {
		return nil, apperr.Validation("unknown spot status %q", filters.Status)
	}

	query := ListQuery{
		Service: ServiceCategory(filters.Service),
		Status:  Status(filters.Status),
		Search:  filters.Search,
	}
	if filters.SearchableOnly {
		query.ActiveOnly = true
		query.Status = StatusRegular
	}

	result, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	// Vehicle and ground predicates read the serialized range column, so
	// they stay in Go.
	if filters.VehicleType != "" {
		vt := VehicleType(filters.VehicleType)
		if !vt.IsValid() {
			return nil, apperr.Validation("unknown vehicle type %q", filters.VehicleType)
		}
		if vt.IsRanged() && filters.VehicleLength != nil {
			length := *filters.VehicleLength
			result = filterSpots(result, func(sp *Spot) bool {
				return AcceptsVehicleLength(sp, vt, length)
			})
		} else {
			result = filterSpots(result, func(sp *Spot) bool {
				return AcceptsVehicleType(sp, vt)
			})
		}
	}

	if filters.Sol != "" {
		ground := GroundType(filters.Sol)
		result = filterSpots(result, func(sp *Spot) bool {
			return sp.Sol != nil && *sp.Sol == ground
		})
	}

	return result, nil
}

func (s *service) FilterOptions(ctx context.Context, state FilterState) (*CascadeResult, error) {
	if state.Service != nil && !state.Service.IsValid() {
		return nil, apperr.Validation("unknown service category %q", *state.Service)
	}
	if state.VehicleType != nil && !state.VehicleType.IsValid() {
		return nil, apperr.Validation("unknown vehicle type %q", *state.VehicleType)
	}
	if state.Ground != nil && !state.Ground.IsValid() {
		return nil, apperr.Validation("unknown ground type %q", *state.Ground)
	}

	all, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	result := Cascade(all, state)
	return &result, nil
}

func (s *service) getByID(ctx context.Context, id string) (*Spot, error) {
	spotID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validation("invalid spot id %q", id)
	}

	spot, err := s.repo.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("spot %s not found", id)
		}
		return nil, err
	}
	return spot, nil
}

// loadAll returns every spot, serving from the cache when possible.
func (s *service) loadAll(ctx context.Context) ([]Spot, error) {
	if s.cache != nil {
		var cached []Spot
		if err := s.cache.Get(ctx, cacheKeySpotsAll, &cached); err == nil {
			return cached, nil
		}
	}

	all, err := s.repo.List(ctx, ListQuery{})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeySpotsAll, all, s.cacheTTL); err != nil {
			logger.GetDefault().Warn("failed to cache spot list", "error", err)
		}
	}
	return all, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKeySpotsAll); err != nil {
		logger.GetDefault().Warn("failed to invalidate spot cache", "error", err)
	}
}

func validateSpot(spot *Spot) error {
	if !spot.Service.IsValid() {
		return apperr.Validation("unknown service category %q", spot.Service)
	}
	if !spot.Status.IsValid() {
		return apperr.Validation("unknown spot status %q", spot.Status)
	}
	if spot.Sol != nil && !spot.Sol.IsValid() {
		return apperr.Validation("unknown ground type %q", *spot.Sol)
	}
	if spot.PricePerNight < 0 {
		return apperr.Validation("price per night must not be negative")
	}
	for _, r := range []*VehicleLengthRange{spot.MotoriseRange, spot.FifthwheelRange, spot.RoulotteRange} {
		if r != nil && (r.Min < 0 || r.Max < r.Min) {
			return apperr.Validation("vehicle length range must satisfy 0 <= min <= max")
		}
	}
	return nil
}
