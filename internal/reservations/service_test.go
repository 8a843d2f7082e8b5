package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campground/internal/customers"
	"campground/internal/shared/apperr"
	"campground/internal/spots"
)

type fakeRepo struct {
	reservations map[uuid.UUID]*Reservation
	notes        map[uuid.UUID][]Note
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		reservations: make(map[uuid.UUID]*Reservation),
		notes:        make(map[uuid.UUID][]Note),
	}
}

func (f *fakeRepo) Create(ctx context.Context, r *Reservation) error {
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	stored := *r
	f.reservations[r.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	stored, ok := f.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *stored
	out.Notes = append([]Note(nil), f.notes[id]...)
	return &out, nil
}

func (f *fakeRepo) List(ctx context.Context, query ListQuery) ([]Reservation, error) {
	var result []Reservation
	for _, r := range f.reservations {
		if query.Status != "" {
			if r.Status != query.Status {
				continue
			}
		} else if r.Status == StatusExpired {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (f *fakeRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	stored, ok := f.reservations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for column, value := range fields {
		switch column {
		case "check_in":
			stored.CheckIn = value.(time.Time)
		case "check_out":
			stored.CheckOut = value.(time.Time)
		case "total_price":
			stored.TotalPrice = value.(float64)
		case "deposit":
			stored.Deposit = value.(float64)
		case "spot_id":
			stored.SpotID = value.(uuid.UUID)
		case "customer_id":
			stored.CustomerID = value.(uuid.UUID)
		case "adults":
			stored.Adults = value.(int)
		case "children":
			stored.Children = value.(int)
		case "status":
			stored.Status = value.(Status)
		}
	}
	return nil
}

func (f *fakeRepo) AddNote(ctx context.Context, note *Note) error {
	note.ID = uuid.New()
	note.CreatedAt = time.Now()
	f.notes[note.ReservationID] = append(f.notes[note.ReservationID], *note)
	return nil
}

type fakeSpotDir struct {
	spots map[uuid.UUID]*spots.Spot
}

func (f *fakeSpotDir) GetByID(ctx context.Context, id uuid.UUID) (*spots.Spot, error) {
	spot, ok := f.spots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return spot, nil
}

type fakeCustomerDir struct {
	customers map[uuid.UUID]*customers.Customer
}

func (f *fakeCustomerDir) GetByID(ctx context.Context, id uuid.UUID) (*customers.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return customer, nil
}

type recordingProducer struct {
	events []LifecycleEvent
}

func (r *recordingProducer) Publish(event LifecycleEvent) {
	r.events = append(r.events, event)
}

func (r *recordingProducer) Close() error { return nil }

type fixture struct {
	service    Service
	repo       *fakeRepo
	events     *recordingProducer
	spotID     uuid.UUID
	altSpotID  uuid.UUID
	customerID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	spotID := uuid.New()
	altSpotID := uuid.New()
	customerID := uuid.New()

	spotDir := &fakeSpotDir{spots: map[uuid.UUID]*spots.Spot{
		spotID:    {ID: spotID, Number: 12, Status: spots.StatusRegular, PricePerNight: 50, IsActive: true},
		altSpotID: {ID: altSpotID, Number: 44, Status: spots.StatusRegular, PricePerNight: 80, IsActive: true},
	}}
	customerDir := &fakeCustomerDir{customers: map[uuid.UUID]*customers.Customer{
		customerID: {ID: customerID, FirstName: "Jean", LastName: "Tremblay", Email: "jean@example.com"},
	}}

	repo := newFakeRepo()
	events := &recordingProducer{}

	return &fixture{
		service:    NewService(repo, spotDir, customerDir, events),
		repo:       repo,
		events:     events,
		spotID:     spotID,
		altSpotID:  altSpotID,
		customerID: customerID,
	}
}

func (f *fixture) create(t *testing.T) *Reservation {
	t.Helper()
	reservation, err := f.service.Create(context.Background(), CreateReservationRequest{
		SpotID:     f.spotID.String(),
		CustomerID: f.customerID.String(),
		CheckIn:    "2026-07-10",
		CheckOut:   "2026-07-13",
		Adults:     2,
		Children:   1,
		TotalPrice: 172.46,
	})
	require.NoError(t, err)
	return reservation
}

func TestCreateReservation(t *testing.T) {
	f := newFixture(t)

	reservation := f.create(t)

	assert.Equal(t, StatusHold, reservation.Status)
	assert.Equal(t, 172.46, reservation.TotalPrice)
	assert.Equal(t, 43.12, reservation.Deposit)
	assert.Equal(t, 3, reservation.Nights())
	require.Len(t, f.events.events, 1)
	assert.Equal(t, EventReservationCreated, f.events.events[0].Type)
}

func TestCreateReservationMissingSpot(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), CreateReservationRequest{
		SpotID:     uuid.New().String(),
		CustomerID: f.customerID.String(),
		CheckIn:    "2026-07-10",
		CheckOut:   "2026-07-13",
		Adults:     2,
		TotalPrice: 100,
	})
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateReservationRejectsBadDates(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), CreateReservationRequest{
		SpotID:     f.spotID.String(),
		CustomerID: f.customerID.String(),
		CheckIn:    "2026-07-13",
		CheckOut:   "2026-07-10",
		Adults:     2,
		TotalPrice: 100,
	})
	assert.True(t, apperr.IsValidation(err))

	_, err = f.service.Create(context.Background(), CreateReservationRequest{
		SpotID:     f.spotID.String(),
		CustomerID: f.customerID.String(),
		CheckIn:    "2026-07-10",
		CheckOut:   "2026-07-10",
		Adults:     2,
		TotalPrice: 100,
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateDatesRecomputesPriceAtomically(t *testing.T) {
	f := newFixture(t)
	reservation := f.create(t)

	updated, err := f.service.UpdateDates(context.Background(), reservation.ID.String(), UpdateDatesRequest{
		CheckIn:  "2026-07-10",
		CheckOut: "2026-07-14",
	})
	require.NoError(t, err)

	// 4 nights at $50, 2 adults: 200 + 14.975% tax.
	assert.Equal(t, 229.95, updated.TotalPrice)
	assert.Equal(t, 57.49, updated.Deposit)
	assert.Equal(t, 4, updated.Nights())

	stored, err := f.repo.GetByID(context.Background(), reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, 229.95, stored.TotalPrice)
	assert.Equal(t, 57.49, stored.Deposit)
}

func TestChildrenDoNotAffectPrice(t *testing.T) {
	f := newFixture(t)
	reservation := f.create(t)

	withKids, err := f.service.Update(context.Background(), reservation.ID.String(), UpdateReservationRequest{
		SpotID:     f.spotID.String(),
		CustomerID: f.customerID.String(),
		CheckIn:    "2026-07-10",
		CheckOut:   "2026-07-13",
		Adults:     2,
		Children:   5,
		Status:     string(StatusHold),
	})
	require.NoError(t, err)

	noKids, err := f.service.Update(context.Background(), reservation.ID.String(), UpdateReservationRequest{
		SpotID:     f.spotID.String(),
		CustomerID: f.customerID.String(),
		CheckIn:    "2026-07-10",
		CheckOut:   "2026-07-13",
		Adults:     2,
		Children:   0,
		Status:     string(StatusHold),
	})
	require.NoError(t, err)

	assert.Equal(t, withKids.TotalPrice, noKids.TotalPrice)
	assert.Equal(t, 172.46, noKids.TotalPrice)
}

func TestReassignSpotKeepsPrice(t *testing.T) {
	f := newFixture(t)
	reservation := f.create(t)

	updated, err := f.service.ReassignSpot(context.Background(), reservation.ID.String(), ReassignSpotRequest{
		SpotID: f.altSpotID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, f.altSpotID, updated.SpotID)
	// The new spot costs $80/night but reassignment never reprices.
	assert.Equal(t, 172.46, updated.TotalPrice)
	assert.Equal(t, 43.12, updated.Deposit)
}

func TestFullUpdateRecomputesFromSelectedSpot(t *testing.T) {
	f := newFixture(t)
	reservation := f.create(t)

	updated, err := f.service.Update(context.Background(), reservation.ID.String(), UpdateReservationRequest{
		SpotID:     f.altSpotID.String(),
		CustomerID: f.customerID.String(),
		CheckIn:    "2026-07-10",
		CheckOut:   "2026-07-13",
		Adults:     2,
		Status:     string(StatusConfirmed),
	})
	require.NoError(t, err)

	// 3 nights at $80: 240 + tax = 275.94.
	assert.Equal(t, 275.94, updated.TotalPrice)
	assert.Equal(t, 68.99, updated.Deposit)
	assert.Equal(t, StatusConfirmed, updated.Status)
}

func TestConfirmAndHold(t *testing.T) {
	f := newFixture(t)
	reservation := f.create(t)

	confirmed, err := f.service.Confirm(context.Background(), reservation.ID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, confirmed.Status)

	// Confirming twice is a state error, not a no-op.
	_, err = f.service.Confirm(context.Background(), reservation.ID.String())
	assert.True(t, apperr.IsValidation(err))

	held, err := f.service.Hold(context.Background(), reservation.ID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusHold, held.Status)

	_, err = f.service.Hold(context.Background(), reservation.ID.String())
	assert.True(t, apperr.IsValidation(err))
}

func TestCancelIsIdempotent(t *testing.T) {
	f := newFixture(t)
	reservation := f.create(t)

	cancelled, err := f.service.UpdateStatus(context.Background(), reservation.ID.String(), StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)

	again, err := f.service.UpdateStatus(context.Background(), reservation.ID.String(), StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, again.Status)
}

func TestExpireConfirmedIsNoOp(t *testing.T) {
	f := newFixture(t)
	reservation := f.create(t)

	_, err := f.service.Confirm(context.Background(), reservation.ID.String())
	require.NoError(t, err)

	result, err := f.service.UpdateStatus(context.Background(), reservation.ID.String(), StatusExpired)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, result.Status)
}

func TestTerminalReservationsAreImmutable(t *testing.T) {
	f := newFixture(t)
	reservation := f.create(t)

	_, err := f.service.UpdateStatus(context.Background(), reservation.ID.String(), StatusCancelled)
	require.NoError(t, err)

	_, err = f.service.UpdateDates(context.Background(), reservation.ID.String(), UpdateDatesRequest{
		CheckIn:  "2026-07-11",
		CheckOut: "2026-07-15",
	})
	assert.True(t, apperr.IsValidation(err))

	_, err = f.service.ReassignSpot(context.Background(), reservation.ID.String(), ReassignSpotRequest{
		SpotID: f.altSpotID.String(),
	})
	assert.True(t, apperr.IsValidation(err))

	_, err = f.service.Confirm(context.Background(), reservation.ID.String())
	assert.True(t, apperr.IsValidation(err))

	_, err = f.service.AddNote(context.Background(), reservation.ID.String(), "late arrival", "admin@camp.test")
	assert.True(t, apperr.IsValidation(err))
}

func TestAddNote(t *testing.T) {
	f := newFixture(t)
	reservation := f.create(t)

	updated, err := f.service.AddNote(context.Background(), reservation.ID.String(), "arrives after 20h", "admin@camp.test")
	require.NoError(t, err)
	require.Len(t, updated.Notes, 1)
	assert.Equal(t, "arrives after 20h", updated.Notes[0].Text)
	assert.Equal(t, "admin@camp.test", updated.Notes[0].Author)

	updated, err = f.service.AddNote(context.Background(), reservation.ID.String(), "paid deposit cash", "admin@camp.test")
	require.NoError(t, err)
	require.Len(t, updated.Notes, 2)
}

func TestGetAllFrenchDateSearch(t *testing.T) {
	f := newFixture(t)
	f.create(t)

	// "10 juillet 2026" parses as a date; the fake repo only proves the
	// query reaches it with SearchDate set, so check routing directly.
	result, err := f.service.GetAll(context.Background(), ListFilters{Search: "10 juillet 2026"})
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestGetAllExcludesExpiredByDefault(t *testing.T) {
	f := newFixture(t)
	reservation := f.create(t)
	f.create(t)

	_, err := f.service.UpdateStatus(context.Background(), reservation.ID.String(), StatusExpired)
	require.NoError(t, err)

	result, err := f.service.GetAll(context.Background(), ListFilters{})
	require.NoError(t, err)
	assert.Len(t, result, 1)

	expired, err := f.service.GetAll(context.Background(), ListFilters{Status: string(StatusExpired)})
	require.NoError(t, err)
	assert.Len(t, expired, 1)
}

func TestGetAllRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GetAll(context.Background(), ListFilters{Status: "PENDING"})
	assert.True(t, apperr.IsValidation(err))
}

func TestStatusChangePublishesEvent(t *testing.T) {
	f := newFixture(t)
	reservation := f.create(t)
	f.events.events = nil

	_, err := f.service.Confirm(context.Background(), reservation.ID.String())
	require.NoError(t, err)

	require.Len(t, f.events.events, 1)
	event := f.events.events[0]
	assert.Equal(t, EventReservationStatusChanged, event.Type)
	assert.Equal(t, StatusHold, event.PrevStatus)
	assert.Equal(t, StatusConfirmed, event.Status)
}
