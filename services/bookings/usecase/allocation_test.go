package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/services/bookings/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore applies every write under one mutex, standing in for the row locks
// and conditional updates of the Postgres store.
type memStore struct {
	mu       sync.Mutex
	rides    map[uuid.UUID]*models.Ride
	bookings map[uuid.UUID]*models.Booking
}

func newMemStore() *memStore {
	return &memStore{
		rides:    make(map[uuid.UUID]*models.Ride),
		bookings: make(map[uuid.UUID]*models.Booking),
	}
}

func (m *memStore) addRide(driverID uuid.UUID, seats int) *models.Ride {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := &models.Ride{ID: uuid.New(), DriverID: driverID, Origin: "Alajuela", Destination: "San José", AvailableSeats: seats}
	m.rides[r.ID] = r
	return r
}

func (m *memStore) seats(rideID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rides[rideID].AvailableSeats
}

func (m *memStore) status(bookingID uuid.UUID) models.BookingStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookings[bookingID].Status
}

func (m *memStore) GetRide(_ context.Context, id uuid.UUID) (*models.Ride, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rides[id]
	if !ok {
		return nil, apperrors.NotFoundError{Msg: "Ride not found"}
	}
	cp := *r
	return &cp, nil
}

func (m *memStore) Create(_ context.Context, b *models.Booking) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = uuid.New()
	b.Status = models.BookingStatusPending
	b.PaymentStatus = models.PaymentStatusPending
	cp := *b
	m.bookings[b.ID] = &cp
	return b, nil
}

func (m *memStore) GetBooking(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, apperrors.NotFoundError{Msg: "Booking not found"}
	}
	cp := *b
	return &cp, nil
}

func (m *memStore) FindByRide(context.Context, uuid.UUID) ([]*models.Booking, error) {
	return nil, nil
}

func (m *memStore) FindByDriver(context.Context, uuid.UUID) ([]*models.Booking, bool, error) {
	return nil, false, nil
}

func (m *memStore) FindByPassenger(context.Context, uuid.UUID) ([]*models.Booking, error) {
	return nil, nil
}

func (m *memStore) SetStatus(_ context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.bookings[id]
	if b.Status != models.BookingStatusPending {
		return nil, apperrors.InvalidTransitionError{BookingID: id.String(), From: string(b.Status), To: string(status)}
	}
	b.Status = status
	cp := *b
	return &cp, nil
}

func (m *memStore) ConfirmBooking(_ context.Context, id uuid.UUID) (*models.Booking, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.bookings[id]
	if b.Status != models.BookingStatusPending {
		return nil, 0, apperrors.InvalidTransitionError{BookingID: id.String(), From: string(b.Status), To: "confirmed"}
	}
	r := m.rides[b.RideID]
	if r.AvailableSeats <= 0 {
		return nil, 0, apperrors.CapacityError{RideID: r.ID.String()}
	}
	r.AvailableSeats--
	b.Status = models.BookingStatusConfirmed
	cp := *b
	return &cp, r.AvailableSeats, nil
}

func client() models.Principal {
	return models.Principal{UserID: uuid.New(), Role: models.RoleClient}
}

func driver() models.Principal {
	return models.Principal{UserID: uuid.New(), Role: models.RoleDriver}
}

func reserve(t *testing.T, alloc *seatAllocator, rideID uuid.UUID) *models.Booking {
	t.Helper()
	b, _, err := alloc.Reserve(context.Background(), client(), rideID)
	require.NoError(t, err)
	return b
}

func newAllocator(store *memStore) *seatAllocator {
	return NewSeatAllocator(store, store).(*seatAllocator)
}

func TestReserve(t *testing.T) {
	tests := []struct {
		name      string
		principal models.Principal
		seats     int
		unknown   bool
		wantErr   func(error) bool
	}{
		{name: "client gets a pending booking", principal: client(), seats: 2},
		{name: "drivers cannot book", principal: driver(), seats: 2, wantErr: apperrors.IsAuthorization},
		{name: "full ride", principal: client(), seats: 0, wantErr: apperrors.IsCapacity},
		{name: "unknown ride", principal: client(), seats: 1, unknown: true, wantErr: apperrors.IsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			store := newMemStore()
			ride := store.addRide(uuid.New(), tt.seats)
			alloc := newAllocator(store)
			rideID := ride.ID
			if tt.unknown {
				rideID = uuid.New()
			}

			// Act
			booking, gotRide, err := alloc.Reserve(context.Background(), tt.principal, rideID)

			// Assert
			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Nil(t, booking)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.BookingStatusPending, booking.Status)
			assert.Equal(t, tt.principal.UserID, booking.PassengerID)
			assert.Equal(t, ride.ID, gotRide.ID)
			assert.Equal(t, tt.seats, store.seats(ride.ID), "a pending booking takes no seat")
		})
	}
}

func TestTransition_Guards(t *testing.T) {
	store := newMemStore()
	owner := driver()
	ride := store.addRide(owner.UserID, 1)
	alloc := newAllocator(store)
	booking := reserve(t, alloc, ride.ID)

	t.Run("invalid action", func(t *testing.T) {
		_, _, err := alloc.Transition(context.Background(), owner, booking.ID, "approve")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, `Invalid action. Use "accept" or "reject".`, err.Error())
	})

	t.Run("other driver", func(t *testing.T) {
		_, _, err := alloc.Transition(context.Background(), driver(), booking.ID, models.BookingActionAccept)
		assert.True(t, apperrors.IsAuthorization(err))
		assert.Equal(t, 1, store.seats(ride.ID))
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, _, err := alloc.Transition(context.Background(), owner, uuid.New(), models.BookingActionAccept)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestTransition_ConcurrentAcceptsOnLastSeat(t *testing.T) {
	// Arrange
	store := newMemStore()
	owner := driver()
	ride := store.addRide(owner.UserID, 1)
	alloc := newAllocator(store)
	first := reserve(t, alloc, ride.ID)
	second := reserve(t, alloc, ride.ID)

	// Act
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uuid.UUID{first.ID, second.ID} {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			_, _, errs[i] = alloc.Transition(context.Background(), owner, id, models.BookingActionAccept)
		}(i, id)
	}
	wg.Wait()

	// Assert
	var ok, full int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperrors.IsCapacity(err):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, full)
	assert.Equal(t, 0, store.seats(ride.ID))
}

func TestTransition_ManyConcurrentAccepts(t *testing.T) {
	// Arrange
	store := newMemStore()
	owner := driver()
	ride := store.addRide(owner.UserID, 5)
	alloc := newAllocator(store)

	ids := make([]uuid.UUID, 20)
	for i := range ids {
		ids[i] = reserve(t, alloc, ride.ID).ID
	}

	// Act
	var wg sync.WaitGroup
	var mu sync.Mutex
	confirmed := 0
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, _, err := alloc.Transition(context.Background(), owner, id, models.BookingActionAccept)
			if err == nil {
				mu.Lock()
				confirmed++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	// Assert
	assert.Equal(t, 5, confirmed)
	assert.Equal(t, 0, store.seats(ride.ID))
}

func TestTransition_RoundTrip(t *testing.T) {
	// Arrange
	store := newMemStore()
	owner := driver()
	ride := store.addRide(owner.UserID, 3)
	alloc := newAllocator(store)

	bookings := make([]*models.Booking, 4)
	for i := range bookings {
		bookings[i] = reserve(t, alloc, ride.ID)
	}
	assert.Equal(t, 3, store.seats(ride.ID))

	// Act
	for _, b := range bookings[:3] {
		_, _, err := alloc.Transition(context.Background(), owner, b.ID, models.BookingActionAccept)
		require.NoError(t, err)
	}
	_, _, err := alloc.Transition(context.Background(), owner, bookings[3].ID, models.BookingActionAccept)

	// Assert
	assert.True(t, apperrors.IsCapacity(err))
	assert.Equal(t, 0, store.seats(ride.ID))
	for _, b := range bookings[:3] {
		assert.Equal(t, models.BookingStatusConfirmed, store.status(b.ID))
	}
	assert.Equal(t, models.BookingStatusPending, store.status(bookings[3].ID))
}

func TestTransition_RejectKeepsCapacity(t *testing.T) {
	store := newMemStore()
	owner := driver()
	ride := store.addRide(owner.UserID, 2)
	alloc := newAllocator(store)
	booking := reserve(t, alloc, ride.ID)

	updated, _, err := alloc.Transition(context.Background(), owner, booking.ID, models.BookingActionReject)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
	assert.Equal(t, 2, store.seats(ride.ID))
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	tests := []struct {
		name   string
		first  models.BookingAction
		second models.BookingAction
		seats  int
	}{
		{name: "accept twice", first: models.BookingActionAccept, second: models.BookingActionAccept, seats: 1},
		{name: "reject after accept", first: models.BookingActionAccept, second: models.BookingActionReject, seats: 1},
		{name: "accept after reject", first: models.BookingActionReject, second: models.BookingActionAccept, seats: 2},
		{name: "reject twice", first: models.BookingActionReject, second: models.BookingActionReject, seats: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			store := newMemStore()
			owner := driver()
			ride := store.addRide(owner.UserID, 2)
			alloc := newAllocator(store)
			booking := reserve(t, alloc, ride.ID)
			_, _, err := alloc.Transition(context.Background(), owner, booking.ID, tt.first)
			require.NoError(t, err)

			// Act
			_, _, err = alloc.Transition(context.Background(), owner, booking.ID, tt.second)

			// Assert
			assert.True(t, apperrors.IsInvalidTransition(err), "unexpected error: %v", err)
			assert.Equal(t, tt.seats, store.seats(ride.ID))
		})
	}
}

func TestTransition_LastSeatScenario(t *testing.T) {
	// Arrange
	store := newMemStore()
	owner := driver()
	ride := store.addRide(owner.UserID, 1)
	alloc := newAllocator(store)
	b1 := reserve(t, alloc, ride.ID)
	b2 := reserve(t, alloc, ride.ID)

	// Act
	confirmed, gotRide, err := alloc.Transition(context.Background(), owner, b1.ID, models.BookingActionAccept)
	require.NoError(t, err)
	_, _, errB2 := alloc.Transition(context.Background(), owner, b2.ID, models.BookingActionAccept)
	_, _, errB3 := alloc.Reserve(context.Background(), client(), ride.ID)

	// Assert
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)
	assert.Equal(t, 0, gotRide.AvailableSeats)
	assert.Equal(t, 0, store.seats(ride.ID))
	assert.True(t, apperrors.IsCapacity(errB2))
	assert.Equal(t, models.BookingStatusPending, store.status(b2.ID))
	assert.True(t, apperrors.IsCapacity(errB3), "a full ride refuses new requests")
}

func TestTransition_AcceptReportsCommittedSeats(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	bookingRepo := mocks.NewMockBookingRepo(ctrl)
	rideReader := mocks.NewMockRideReader(ctrl)
	alloc := NewSeatAllocator(bookingRepo, rideReader)

	owner := driver()
	rideID, bookingID := uuid.New(), uuid.New()
	pending := &models.Booking{ID: bookingID, RideID: rideID, Status: models.BookingStatusPending}

	bookingRepo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pending, nil)
	// read before another accept on the same ride committed
	rideReader.EXPECT().GetRide(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: owner.UserID, AvailableSeats: 3}, nil)
	bookingRepo.EXPECT().ConfirmBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, RideID: rideID, Status: models.BookingStatusConfirmed}, 1, nil)

	// Act
	updated, ride, err := alloc.Transition(context.Background(), owner, bookingID, models.BookingActionAccept)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, 1, ride.AvailableSeats)
}
