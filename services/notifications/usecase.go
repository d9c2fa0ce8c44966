package notifications

import (
	"context"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/evproyectos/aventados-isw-server/services/notifications NotifierUC

// NotifierUC turns booking events into text messages
type NotifierUC interface {
	HandleBookingEvent(ctx context.Context, event models.BookingEvent) error
}
