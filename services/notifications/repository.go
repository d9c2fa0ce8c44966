package notifications

import (
	"context"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/evproyectos/aventados-isw-server/services/notifications ContactRepo

// ContactRepo reads the contact data of the people a booking concerns
type ContactRepo interface {
	GetContact(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}
