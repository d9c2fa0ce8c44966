package rides

import (
	"context"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/evproyectos/aventados-isw-server/services/rides RideRepo,RideCache

// RideRepo defines the interface for ride data access operations
type RideRepo interface {
	Create(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error)
	ListRides(ctx context.Context) ([]*models.Ride, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error)
	DecrementSeat(ctx context.Context, id uuid.UUID) error
	IncrementSeat(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, id, driverID uuid.UUID, update models.RideUpdate) (*models.Ride, error)
	Delete(ctx context.Context, id, driverID uuid.UUID) error
	SearchByDestination(ctx context.Context, destination string) ([]*models.Ride, error)
}

// RideCache holds ride search results keyed by a generation number.
// Invalidate starts a new generation, so results computed against an older
// generation are never served again.
type RideCache interface {
	Version(ctx context.Context) (int64, error)
	GetSearch(ctx context.Context, version int64, destination string) (rides []*models.Ride, ok bool, err error)
	SetSearch(ctx context.Context, version int64, destination string, rides []*models.Ride) error
	Invalidate(ctx context.Context) error
}
