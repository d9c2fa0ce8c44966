package http

import (
	"net/http"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/middleware"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	"github.com/evproyectos/aventados-isw-server/internal/utils"
	"github.com/evproyectos/aventados-isw-server/services/rides"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

func parseID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// CreateRide publishes a ride owned by the calling driver
func (h *RidesHandler) CreateRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CreateRide")

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), principal, req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to create ride",
			logger.String("driver_id", principal.UserID.String()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", ride)
}

// ListRides returns every ride
func (h *RidesHandler) ListRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.ListRides")

	list, err := h.rideUC.ListRides(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", list)
}

// GetRide returns one ride with its confirmed passengers
func (h *RidesHandler) GetRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.GetRide")

	id, ok := parseID(c, "rideId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), id)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// ListByDriver returns the rides published by a driver
func (h *RidesHandler) ListByDriver(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.ListByDriver")

	driverID, ok := parseID(c, "driverId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	list, err := h.rideUC.ListByDriver(c.Request().Context(), driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", list)
}

// UpdateRide edits a ride owned by the calling driver
func (h *RidesHandler) UpdateRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.UpdateRide")

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	id, ok := parseID(c, "rideId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var update models.RideUpdate
	if err := c.Bind(&update); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.UpdateRide(c.Request().Context(), principal, id, update)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride updated successfully", ride)
}

// DeleteRide removes a ride owned by the calling driver
func (h *RidesHandler) DeleteRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.DeleteRide")

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	id, ok := parseID(c, "rideId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	if err := h.rideUC.DeleteRide(c.Request().Context(), principal, id); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride deleted successfully", nil)
}
