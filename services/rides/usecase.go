package rides

import (
	"context"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/evproyectos/aventados-isw-server/services/rides RideUC

// RideUC defines the interface for ride business logic
type RideUC interface {
	CreateRide(ctx context.Context, principal models.Principal, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error)
	ListRides(ctx context.Context) ([]*models.Ride, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error)
	UpdateRide(ctx context.Context, principal models.Principal, id uuid.UUID, update models.RideUpdate) (*models.Ride, error)
	DeleteRide(ctx context.Context, principal models.Principal, id uuid.UUID) error
	SearchRides(ctx context.Context, destination string) ([]*models.Ride, error)
}
