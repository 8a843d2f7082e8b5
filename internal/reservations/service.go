package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campground/internal/customers"
	"campground/internal/frdate"
	"campground/internal/pricing"
	"campground/internal/shared/apperr"
	"campground/internal/spots"
	"campground/pkg/logger"
)

const dateLayout = "2006-01-02"

// SpotDirectory is the slice of the spot store the lifecycle needs.
type SpotDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*spots.Spot, error)
}

// CustomerDirectory is the slice of the customer store the lifecycle needs.
type CustomerDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*customers.Customer, error)
}

type Service interface {
	Create(ctx context.Context, req CreateReservationRequest) (*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	GetAll(ctx context.Context, filters ListFilters) ([]Reservation, error)
	UpdateDates(ctx context.Context, id string, req UpdateDatesRequest) (*Reservation, error)
	ReassignSpot(ctx context.Context, id string, req ReassignSpotRequest) (*Reservation, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Reservation, error)
	Confirm(ctx context.Context, id string) (*Reservation, error)
	Hold(ctx context.Context, id string) (*Reservation, error)
	AddNote(ctx context.Context, id, text, author string) (*Reservation, error)
	Update(ctx context.Context, id string, req UpdateReservationRequest) (*Reservation, error)
}

type service struct {
	repo      Repository
	spots     SpotDirectory
	customers CustomerDirectory
	events    EventProducer
}

func NewService(repo Repository, spotDir SpotDirectory, customerDir CustomerDirectory, events EventProducer) Service {
	return &service{repo: repo, spots: spotDir, customers: customerDir, events: events}
}

func (s *service) Create(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	spotID, customerID, err := parseIDPair(req.SpotID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	checkIn, checkOut, err := parseDatePair(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if req.Adults < 1 {
		return nil, apperr.Validation("at least one adult is required")
	}
	if req.Children < 0 {
		return nil, apperr.Validation("children count must not be negative")
	}
	if req.TotalPrice <= 0 {
		return nil, apperr.Validation("total price must be positive")
	}

	spot, err := s.lookupSpot(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if _, err := s.lookupCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	if !spot.IsActive {
		return nil, apperr.Validation("spot %d is not active", spot.Number)
	}

	reservation := &Reservation{
		SpotID:     spotID,
		CustomerID: customerID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     req.Adults,
		Children:   req.Children,
		Status:     StatusHold,
		TotalPrice: req.TotalPrice,
		Deposit:    pricing.Deposit(req.TotalPrice),
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.publish(EventReservationCreated, reservation, "")
	return s.repo.GetByID(ctx, reservation.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	reservationID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validation("invalid reservation id %q", id)
	}
	return s.load(ctx, reservationID)
}

func (s *service) GetAll(ctx context.Context, filters ListFilters) ([]Reservation, error) {
	query := ListQuery{}
	if filters.Status != "" {
		status := Status(filters.Status)
		if !status.IsValid() {
			return nil, apperr.Validation("unknown reservation status %q", filters.Status)
		}
		query.Status = status
	}
	if filters.Search != "" {
		if iso, ok := frdate.Parse(filters.Search); ok {
			query.SearchDate = iso
		} else {
			query.SearchText = filters.Search
		}
	}
	return s.repo.List(ctx, query)
}

// UpdateDates moves a live reservation to a new date pair and recomputes its
// total and deposit from the spot's nightly price and the adult count. Dates
// and prices go to the store in a single update.
func (s *service) UpdateDates(ctx context.Context, id string, req UpdateDatesRequest) (*Reservation, error) {
	reservation, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservation.Status.AllowsMutation() {
		return nil, apperr.Validation("reservation in status %s cannot be modified", reservation.Status)
	}

	checkIn, checkOut, err := parseDatePair(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	spot, err := s.lookupSpot(ctx, reservation.SpotID)
	if err != nil {
		return nil, err
	}

	nights := nightsBetween(checkIn, checkOut)
	total := pricing.TotalWithTax(spot.PricePerNight, nights, reservation.Adults)
	deposit := pricing.Deposit(total)

	err = s.repo.UpdateFields(ctx, reservation.ID, map[string]interface{}{
		"check_in":    checkIn,
		"check_out":   checkOut,
		"total_price": total,
		"deposit":     deposit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation dates: %w", err)
	}

	updated, err := s.load(ctx, reservation.ID)
	if err != nil {
		return nil, err
	}
	s.publish(EventReservationUpdated, updated, "")
	return updated, nil
}

// ReassignSpot moves the reservation to another spot. The price is left as
// is: reassignment is a desk operation and repricing stays a separate,
// explicit edit.
func (s *service) ReassignSpot(ctx context.Context, id string, req ReassignSpotRequest) (*Reservation, error) {
	reservation, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservation.Status.AllowsMutation() {
		return nil, apperr.Validation("reservation in status %s cannot be modified", reservation.Status)
	}

	spotID, err := uuid.Parse(req.SpotID)
	if err != nil {
		return nil, apperr.Validation("invalid spot id %q", req.SpotID)
	}
	if _, err := s.lookupSpot(ctx, spotID); err != nil {
		return nil, err
	}

	err = s.repo.UpdateFields(ctx, reservation.ID, map[string]interface{}{
		"spot_id": spotID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reassign spot: %w", err)
	}

	updated, err := s.load(ctx, reservation.ID)
	if err != nil {
		return nil, err
	}
	s.publish(EventReservationUpdated, updated, "")
	return updated, nil
}

// UpdateStatus cancels or expires a reservation. Calling it on a reservation
// the transition does not apply to is a no-op, so retries and double-clicks
// stay harmless.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Reservation, error) {
	if status != StatusCancelled && status != StatusExpired {
		return nil, apperr.Validation("status must be CANCELLED or EXPIRED, got %q", status)
	}

	reservation, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservation.Status.CanTransitionTo(status) {
		return reservation, nil
	}
	return s.transition(ctx, reservation, status)
}

// Confirm moves a HOLD reservation to CONFIRMED.
func (s *service) Confirm(ctx context.Context, id string) (*Reservation, error) {
	reservation, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation.Status != StatusHold {
		return nil, apperr.Validation("only HOLD reservations can be confirmed, got %s", reservation.Status)
	}
	return s.transition(ctx, reservation, StatusConfirmed)
}

// Hold moves a CONFIRMED reservation back to HOLD.
func (s *service) Hold(ctx context.Context, id string) (*Reservation, error) {
	reservation, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation.Status != StatusConfirmed {
		return nil, apperr.Validation("only CONFIRMED reservations can be put on hold, got %s", reservation.Status)
	}
	return s.transition(ctx, reservation, StatusHold)
}

func (s *service) AddNote(ctx context.Context, id, text, author string) (*Reservation, error) {
	reservation, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservation.Status.AllowsMutation() {
		return nil, apperr.Validation("reservation in status %s cannot be annotated", reservation.Status)
	}
	if text == "" {
		return nil, apperr.Validation("note text must not be empty")
	}

	note := &Note{
		ReservationID: reservation.ID,
		Author:        author,
		Text:          text,
	}
	if err := s.repo.AddNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to add note: %w", err)
	}

	updated, err := s.load(ctx, reservation.ID)
	if err != nil {
		return nil, err
	}
	s.publish(EventReservationNoteAdded, updated, "")
	return updated, nil
}

// Update applies the full edit form. Unlike ReassignSpot, it reprices the
// reservation from the selected spot, the new dates and the adult count.
func (s *service) Update(ctx context.Context, id string, req UpdateReservationRequest) (*Reservation, error) {
	reservation, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservation.Status.AllowsMutation() {
		return nil, apperr.Validation("reservation in status %s cannot be modified", reservation.Status)
	}

	spotID, customerID, err := parseIDPair(req.SpotID, req.CustomerID)
	if err != nil {
		return nil, err
	}
	checkIn, checkOut, err := parseDatePair(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if req.Adults < 1 {
		return nil, apperr.Validation("at least one adult is required")
	}

	status := Status(req.Status)
	if status != StatusConfirmed && status != StatusHold {
		return nil, apperr.Validation("status must be CONFIRMED or HOLD, got %q", req.Status)
	}
	if status != reservation.Status && !reservation.Status.CanTransitionTo(status) {
		return nil, apperr.Validation("cannot move reservation from %s to %s", reservation.Status, status)
	}

	spot, err := s.lookupSpot(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if _, err := s.lookupCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	nights := nightsBetween(checkIn, checkOut)
	total := pricing.TotalWithTax(spot.PricePerNight, nights, req.Adults)
	deposit := pricing.Deposit(total)

	err = s.repo.UpdateFields(ctx, reservation.ID, map[string]interface{}{
		"spot_id":     spotID,
		"customer_id": customerID,
		"check_in":    checkIn,
		"check_out":   checkOut,
		"adults":      req.Adults,
		"children":    req.Children,
		"status":      status,
		"total_price": total,
		"deposit":     deposit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	updated, err := s.load(ctx, reservation.ID)
	if err != nil {
		return nil, err
	}
	if status != reservation.Status {
		s.publish(EventReservationStatusChanged, updated, reservation.Status)
	} else {
		s.publish(EventReservationUpdated, updated, "")
	}
	return updated, nil
}

func (s *service) transition(ctx context.Context, reservation *Reservation, next Status) (*Reservation, error) {
	err := s.repo.UpdateFields(ctx, reservation.ID, map[string]interface{}{
		"status": next,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
	}

	updated, err := s.load(ctx, reservation.ID)
	if err != nil {
		return nil, err
	}
	logger.GetDefault().LogReservationStatusChanged(ctx, updated.ID.String(), string(reservation.Status), string(updated.Status))
	s.publish(EventReservationStatusChanged, updated, reservation.Status)
	return updated, nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("reservation %s not found", id)
		}
		return nil, err
	}
	return reservation, nil
}

func (s *service) lookupSpot(ctx context.Context, id uuid.UUID) (*spots.Spot, error) {
	spot, err := s.spots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("spot %s not found", id)
		}
		return nil, err
	}
	return spot, nil
}

func (s *service) lookupCustomer(ctx context.Context, id uuid.UUID) (*customers.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer %s not found", id)
		}
		return nil, err
	}
	return customer, nil
}

func (s *service) publish(eventType EventType, reservation *Reservation, prev Status) {
	if s.events == nil {
		return
	}
	s.events.Publish(LifecycleEvent{
		Type:          eventType,
		ReservationID: reservation.ID,
		SpotID:        reservation.SpotID,
		CustomerID:    reservation.CustomerID,
		Status:        reservation.Status,
		PrevStatus:    prev,
		TotalPrice:    reservation.TotalPrice,
		Deposit:       reservation.Deposit,
		OccurredAt:    time.Now(),
	})
}

func parseIDPair(spotID, customerID string) (uuid.UUID, uuid.UUID, error) {
	sid, err := uuid.Parse(spotID)
	if err != nil {
		return uuid.Nil, uuid.Nil, apperr.Validation("invalid spot id %q", spotID)
	}
	cid, err := uuid.Parse(customerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, apperr.Validation("invalid customer id %q", customerID)
	}
	return sid, cid, nil
}

func parseDatePair(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("invalid check-in date %q", checkIn)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("invalid check-out date %q", checkOut)
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, apperr.Validation("check-out must be after check-in")
	}
	return in, out, nil
}
