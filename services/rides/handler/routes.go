package handler

import (
	"github.com/evproyectos/aventados-isw-server/internal/pkg/middleware"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/services/rides"
	gqlHandler "github.com/evproyectos/aventados-isw-server/services/rides/handler/graphql"
	httpHandler "github.com/evproyectos/aventados-isw-server/services/rides/handler/http"
	"github.com/labstack/echo/v4"
)

// HTTPHandler combines the REST and GraphQL handlers of the ride service
type HTTPHandler struct {
	ridesHTTP *httpHandler.RidesHandler
	graphql   *gqlHandler.Handler
	cfg       *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(rideUC rides.RideUC, cfg *models.Config) (*HTTPHandler, error) {
	gql, err := gqlHandler.NewHandler(rideUC)
	if err != nil {
		return nil, err
	}
	return &HTTPHandler{
		ridesHTTP: httpHandler.NewRidesHandler(rideUC),
		graphql:   gql,
		cfg:       cfg,
	}, nil
}

// RegisterRoutes registers all ride routes. Besides the driver listing, role rules are enforced by the use cases
// so the caller gets the specific refusal message.
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/graphql", h.graphql.Serve)

	ridesGroup := e.Group("/rides", middleware.JWTAuthMiddleware(h.cfg.JWT))
	ridesGroup.POST("", h.ridesHTTP.CreateRide)
	ridesGroup.GET("", h.ridesHTTP.ListRides)
	ridesGroup.GET("/driver/:driverId", h.ridesHTTP.ListByDriver, middleware.RequireRole(models.RoleDriver))
	ridesGroup.GET("/:rideId", h.ridesHTTP.GetRide)
	ridesGroup.PUT("/:rideId", h.ridesHTTP.UpdateRide)
	ridesGroup.DELETE("/:rideId", h.ridesHTTP.DeleteRide)
}
