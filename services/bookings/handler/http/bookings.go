package http

import (
	"net/http"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/middleware"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	"github.com/evproyectos/aventados-isw-server/internal/utils"
	"github.com/evproyectos/aventados-isw-server/services/bookings"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BookingsHandler handles HTTP requests for booking operations
type BookingsHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingsHandler creates a new booking HTTP handler
func NewBookingsHandler(bookingUC bookings.BookingUC) *BookingsHandler {
	return &BookingsHandler{
		bookingUC: bookingUC,
	}
}

func parseID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// BookRide records a pending booking for the calling client
func (h *BookingsHandler) BookRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.BookRide")

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.BookRideRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	booking, err := h.bookingUC.BookRide(c.Request().Context(), principal, req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to book ride",
			logger.String("ride_id", req.RideID),
			logger.String("passenger_id", principal.UserID.String()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// UpdateBookingStatus accepts or rejects a pending booking
func (h *BookingsHandler) UpdateBookingStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.UpdateBookingStatus")

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	bookingID, ok := parseID(c, "bookingId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	booking, err := h.bookingUC.UpdateBookingStatus(c.Request().Context(), principal, bookingID, req.Action)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to update booking status",
			logger.String("booking_id", bookingID.String()),
			logger.String("action", req.Action),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	message := "Booking rejected successfully"
	if booking.Status == models.BookingStatusConfirmed {
		message = "Booking accepted successfully"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, booking)
}

// ListByRide returns the bookings of one of the caller's rides
func (h *BookingsHandler) ListByRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.ListByRide")

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	rideID, ok := parseID(c, "rideId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	list, err := h.bookingUC.ListByRide(c.Request().Context(), principal, rideID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", list)
}

// ListByDriver returns the bookings on every ride of the caller
func (h *BookingsHandler) ListByDriver(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.ListByDriver")

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	driverID, ok := parseID(c, "driverId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	list, err := h.bookingUC.ListByDriver(c.Request().Context(), principal, driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", list)
}

// ListByPassenger returns the caller's own bookings
func (h *BookingsHandler) ListByPassenger(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.ListByPassenger")

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	passengerID, ok := parseID(c, "passengerId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid passenger ID")
	}

	list, err := h.bookingUC.ListByPassenger(c.Request().Context(), principal, passengerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", list)
}
