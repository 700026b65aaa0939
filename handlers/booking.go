package handlers

import (
	"errors"
	"net/http"

	"allservices/middleware"
	"allservices/services/booking"
	"allservices/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the Booking Ledger over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// bookingErrorStatus maps ledger errors onto HTTP status codes.
func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrMissingFields),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidPayment):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrServiceNotFound),
		errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrNotAuthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), middleware.ActorID(c), input)
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), err.Error(), "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": created,
	})
}

// GetClientBookings handles GET /api/bookings/client/my-bookings.
func (h *BookingHandler) GetClientBookings(c *gin.Context) {
	bookings, err := h.Service.ListByClient(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetProviderBookings handles GET /api/bookings/provider/my-bookings.
func (h *BookingHandler) GetProviderBookings(c *gin.Context) {
	bookings, err := h.Service.ListByProvider(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingStatus handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), middleware.ActorID(c), input.Status)
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), err.Error(), "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated successfully",
		"booking": updated,
	})
}

// CancelBooking handles PUT /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	cancelled, err := h.Service.Cancel(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), err.Error(), "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled successfully",
		"booking": cancelled,
	})
}
