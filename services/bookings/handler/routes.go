package handler

import (
	"github.com/evproyectos/aventados-isw-server/internal/pkg/constants"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/middleware"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/services/bookings"
	httpHandler "github.com/evproyectos/aventados-isw-server/services/bookings/handler/http"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// HTTPHandler exposes the booking workflow over REST
type HTTPHandler struct {
	bookingsHTTP *httpHandler.BookingsHandler
	cfg          *models.Config
	redisClient  *redis.Client
}

// NewHTTPHandler creates a new combined handler. redisClient may be nil, which disables rate limiting.
func NewHTTPHandler(bookingUC bookings.BookingUC, cfg *models.Config, redisClient *redis.Client) *HTTPHandler {
	return &HTTPHandler{
		bookingsHTTP: httpHandler.NewBookingsHandler(bookingUC),
		cfg:          cfg,
		redisClient:  redisClient,
	}
}

// RegisterRoutes registers all booking routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/bookings", middleware.JWTAuthMiddleware(h.cfg.JWT))

	bookRide := []echo.MiddlewareFunc{}
	if h.redisClient != nil {
		bookRide = append(bookRide, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: h.redisClient,
			Key:         constants.KeyRateLimitBookings,
			Limit:       h.cfg.Bookings.RateLimit,
			Period:      h.cfg.Bookings.RateLimitPeriod,
		}))
	}
	group.POST("/bookride", h.bookingsHTTP.BookRide, bookRide...)

	group.GET("/ride/:rideId", h.bookingsHTTP.ListByRide, middleware.RequireRole(models.RoleDriver))
	group.GET("/driver/:driverId", h.bookingsHTTP.ListByDriver, middleware.RequireRole(models.RoleDriver))
	group.GET("/passenger/:passengerId", h.bookingsHTTP.ListByPassenger, middleware.RequireRole(models.RoleClient))
	group.PUT("/:bookingId/status", h.bookingsHTTP.UpdateBookingStatus, middleware.RequireRole(models.RoleDriver))
}
