package usecase

import (
	"context"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	"github.com/evproyectos/aventados-isw-server/services/rides"
	"github.com/google/uuid"
)

type rideUC struct {
	cfg   *models.Config
	repo  rides.RideRepo
	cache rides.RideCache
}

// NewRideUC creates a new ride use case. cache may be nil.
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	rideCache rides.RideCache,
) (rides.RideUC, error) {
	return &rideUC{
		cfg:   cfg,
		repo:  rideRepo,
		cache: rideCache,
	}, nil
}

func (uc *rideUC) CreateRide(ctx context.Context, principal models.Principal, req models.CreateRideRequest) (*models.Ride, error) {
	if !principal.IsDriver() {
		return nil, apperrors.NewAuthorization("Only drivers can create rides")
	}

	ride, err := uc.repo.Create(ctx, &models.Ride{
		DriverID:       principal.UserID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		DepartureTime:  req.DepartureTime,
		AvailableSeats: req.AvailableSeats,
		Fee:            req.Fee,
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateSearch(ctx)
	logger.InfoCtx(ctx, "Ride created",
		logger.String("ride_id", ride.ID.String()),
		logger.String("driver_id", ride.DriverID.String()),
		logger.Int("available_seats", ride.AvailableSeats))
	return ride, nil
}

func (uc *rideUC) GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	return uc.repo.GetRide(ctx, id)
}

func (uc *rideUC) ListRides(ctx context.Context) ([]*models.Ride, error) {
	return uc.repo.ListRides(ctx)
}

func (uc *rideUC) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error) {
	list, err := uc.repo.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 && uc.cfg.Bookings.EmptyAsNotFound {
		return nil, apperrors.NotFoundError{Resource: "ride", Msg: "No rides found for this driver"}
	}
	return list, nil
}

func (uc *rideUC) UpdateRide(ctx context.Context, principal models.Principal, id uuid.UUID, update models.RideUpdate) (*models.Ride, error) {
	if !principal.IsDriver() {
		return nil, apperrors.NewAuthorization("Only drivers can update rides")
	}

	ride, err := uc.repo.Update(ctx, id, principal.UserID, update)
	if err != nil {
		return nil, err
	}

	uc.invalidateSearch(ctx)
	logger.InfoCtx(ctx, "Ride updated", logger.String("ride_id", id.String()))
	return ride, nil
}

func (uc *rideUC) DeleteRide(ctx context.Context, principal models.Principal, id uuid.UUID) error {
	if !principal.IsDriver() {
		return apperrors.NewAuthorization("Only drivers can delete rides")
	}

	if err := uc.repo.Delete(ctx, id, principal.UserID); err != nil {
		return err
	}

	uc.invalidateSearch(ctx)
	logger.InfoCtx(ctx, "Ride deleted", logger.String("ride_id", id.String()))
	return nil
}

// SearchRides serves destination searches from the cache when enabled.
// Results may lag a write by one cache round trip; seat decisions never read them.
func (uc *rideUC) SearchRides(ctx context.Context, destination string) ([]*models.Ride, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "RideUC.SearchRides", func() ([]*models.Ride, error) {
		if uc.cache == nil || !uc.cfg.Search.CacheEnabled {
			return uc.repo.SearchByDestination(ctx, destination)
		}

		version, err := uc.cache.Version(ctx)
		if err != nil {
			logger.WarnCtx(ctx, "Search cache unavailable", logger.ErrorField(err))
			return uc.repo.SearchByDestination(ctx, destination)
		}

		if cached, ok, err := uc.cache.GetSearch(ctx, version, destination); err != nil {
			logger.WarnCtx(ctx, "Search cache read failed", logger.ErrorField(err))
		} else if ok {
			return cached, nil
		}

		list, err := uc.repo.SearchByDestination(ctx, destination)
		if err != nil {
			return nil, err
		}
		if err := uc.cache.SetSearch(ctx, version, destination, list); err != nil {
			logger.WarnCtx(ctx, "Search cache write failed", logger.ErrorField(err))
		}
		return list, nil
	})
}

func (uc *rideUC) invalidateSearch(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate ride search cache", logger.ErrorField(err))
	}
}
