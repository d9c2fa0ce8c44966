package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/services/rides/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.Bookings.EmptyAsNotFound = true
	cfg.Search.CacheEnabled = true
	return cfg
}

func driver() models.Principal {
	return models.Principal{UserID: uuid.New(), Role: models.RoleDriver}
}

func client() models.Principal {
	return models.Principal{UserID: uuid.New(), Role: models.RoleClient}
}

func TestCreateRide_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockCache := mocks.NewMockRideCache(ctrl)
	uc, err := NewRideUC(testConfig(), mockRepo, mockCache)
	require.NoError(t, err)

	p := driver()
	req := models.CreateRideRequest{
		Origin:         "Cartago",
		Destination:    "San José",
		DepartureTime:  time.Now().Add(time.Hour),
		AvailableSeats: 3,
		Fee:            1200,
	}

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
			assert.Equal(t, p.UserID, ride.DriverID)
			assert.Equal(t, 3, ride.AvailableSeats)
			ride.ID = uuid.New()
			return ride, nil
		})
	mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	// Act
	ride, err := uc.CreateRide(context.Background(), p, req)

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ride.ID)
	assert.Equal(t, "Cartago", ride.Origin)
}

func TestCreateRide_ClientForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, err := NewRideUC(testConfig(), mocks.NewMockRideRepo(ctrl), nil)
	require.NoError(t, err)

	_, err = uc.CreateRide(context.Background(), client(), models.CreateRideRequest{})

	assert.True(t, apperrors.IsAuthorization(err))
	assert.Equal(t, "Only drivers can create rides", err.Error())
}

func TestCreateRide_CacheFailureDoesNotFailWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockCache := mocks.NewMockRideCache(ctrl)
	uc, _ := NewRideUC(testConfig(), mockRepo, mockCache)

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ride *models.Ride) (*models.Ride, error) { return ride, nil })
	mockCache.EXPECT().Invalidate(gomock.Any()).Return(assert.AnError)

	_, err := uc.CreateRide(context.Background(), driver(), models.CreateRideRequest{})

	assert.NoError(t, err)
}

func TestListByDriver(t *testing.T) {
	tests := []struct {
		name            string
		emptyAsNotFound bool
		rides           []*models.Ride
		wantNotFound    bool
		wantLen         int
	}{
		{"empty with compat on", true, []*models.Ride{}, true, 0},
		{"empty with compat off", false, []*models.Ride{}, false, 0},
		{"has rides", true, []*models.Ride{{ID: uuid.New()}}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := testConfig()
			cfg.Bookings.EmptyAsNotFound = tt.emptyAsNotFound
			mockRepo := mocks.NewMockRideRepo(ctrl)
			uc, _ := NewRideUC(cfg, mockRepo, nil)
			driverID := uuid.New()

			mockRepo.EXPECT().ListByDriver(gomock.Any(), driverID).Return(tt.rides, nil)

			got, err := uc.ListByDriver(context.Background(), driverID)

			if tt.wantNotFound {
				assert.True(t, apperrors.IsNotFound(err))
				assert.Equal(t, "No rides found for this driver", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestUpdateRide(t *testing.T) {
	t.Run("passes owner to repository and invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockRideRepo(ctrl)
		mockCache := mocks.NewMockRideCache(ctrl)
		uc, _ := NewRideUC(testConfig(), mockRepo, mockCache)
		p := driver()
		id := uuid.New()
		fee := 900.0
		update := models.RideUpdate{Fee: &fee}

		mockRepo.EXPECT().Update(gomock.Any(), id, p.UserID, update).Return(&models.Ride{ID: id, Fee: fee}, nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		ride, err := uc.UpdateRide(context.Background(), p, id, update)

		require.NoError(t, err)
		assert.Equal(t, fee, ride.Fee)
	})

	t.Run("repository ownership error is returned unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockRideRepo(ctrl)
		uc, _ := NewRideUC(testConfig(), mockRepo, mocks.NewMockRideCache(ctrl))
		ownErr := apperrors.NewAuthorization("You can only update your own rides")

		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ownErr)

		_, err := uc.UpdateRide(context.Background(), driver(), uuid.New(), models.RideUpdate{})

		assert.ErrorIs(t, err, ownErr)
	})

	t.Run("client cannot update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, _ := NewRideUC(testConfig(), mocks.NewMockRideRepo(ctrl), nil)

		_, err := uc.UpdateRide(context.Background(), client(), uuid.New(), models.RideUpdate{})

		assert.Equal(t, "Only drivers can update rides", err.Error())
	})
}

func TestDeleteRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockCache := mocks.NewMockRideCache(ctrl)
	uc, _ := NewRideUC(testConfig(), mockRepo, mockCache)
	p := driver()
	id := uuid.New()

	mockRepo.EXPECT().Delete(gomock.Any(), id, p.UserID).Return(nil)
	mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	assert.NoError(t, uc.DeleteRide(context.Background(), p, id))
}

func TestSearchRides(t *testing.T) {
	cached := []*models.Ride{{ID: uuid.New(), Destination: "Limón"}}
	fresh := []*models.Ride{{ID: uuid.New(), Destination: "Limón"}}

	t.Run("cache hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockRideRepo(ctrl)
		mockCache := mocks.NewMockRideCache(ctrl)
		uc, _ := NewRideUC(testConfig(), mockRepo, mockCache)

		mockCache.EXPECT().Version(gomock.Any()).Return(int64(4), nil)
		mockCache.EXPECT().GetSearch(gomock.Any(), int64(4), "limón").Return(cached, true, nil)

		got, err := uc.SearchRides(context.Background(), "limón")

		require.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("cache miss stores under the version read before the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockRideRepo(ctrl)
		mockCache := mocks.NewMockRideCache(ctrl)
		uc, _ := NewRideUC(testConfig(), mockRepo, mockCache)

		gomock.InOrder(
			mockCache.EXPECT().Version(gomock.Any()).Return(int64(7), nil),
			mockCache.EXPECT().GetSearch(gomock.Any(), int64(7), "limón").Return(nil, false, nil),
			mockRepo.EXPECT().SearchByDestination(gomock.Any(), "limón").Return(fresh, nil),
			mockCache.EXPECT().SetSearch(gomock.Any(), int64(7), "limón", fresh).Return(nil),
		)

		got, err := uc.SearchRides(context.Background(), "limón")

		require.NoError(t, err)
		assert.Equal(t, fresh, got)
	})

	t.Run("cache unavailable falls back to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockRideRepo(ctrl)
		mockCache := mocks.NewMockRideCache(ctrl)
		uc, _ := NewRideUC(testConfig(), mockRepo, mockCache)

		mockCache.EXPECT().Version(gomock.Any()).Return(int64(0), assert.AnError)
		mockRepo.EXPECT().SearchByDestination(gomock.Any(), "limón").Return(fresh, nil)

		got, err := uc.SearchRides(context.Background(), "limón")

		require.NoError(t, err)
		assert.Equal(t, fresh, got)
	})

	t.Run("cache disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := testConfig()
		cfg.Search.CacheEnabled = false
		mockRepo := mocks.NewMockRideRepo(ctrl)
		uc, _ := NewRideUC(cfg, mockRepo, mocks.NewMockRideCache(ctrl))

		mockRepo.EXPECT().SearchByDestination(gomock.Any(), "").Return(fresh, nil)

		got, err := uc.SearchRides(context.Background(), "")

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
