package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// BookingController handles attendee bookings for events.
type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBookingRequest is the request body for POST /events/{eventID}/bookings.
type CreateBookingRequest struct {
	Email string `json:"email"`
}

func (r *CreateBookingRequest) Validate() []string {
	var errs []string
	if r.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// CreateBookingResponse is the response body for a booking request. Created
// distinguishes a new booking from an idempotent repeat.
type CreateBookingResponse struct {
	Booking *domain.Booking `json:"booking"`
	Created bool            `json:"created"`
}

// CreateBooking godoc
// @Summary Book a spot at an event
// @Description Records a booking for the given email. Booking the same event twice with the same email is idempotent and returns the existing booking with status 200.
// @Tags bookings
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body CreateBookingRequest true "Attendee email"
// @Success 200 {object} helpers.APIResponse "data contains the existing booking (created=false)"
// @Success 201 {object} helpers.APIResponse "data contains the new booking (created=true)"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if _, err := uuid.Parse(eventID); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "event ID must be a valid UUID")
		return
	}
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	booking, created, err := c.Service.CreateBooking(r.Context(), eventID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid email address")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, CreateBookingResponse{Booking: booking, Created: created})
}

// BookingCountResponse is the response body for the booking-count endpoint.
type BookingCountResponse struct {
	EventID string `json:"eventId"`
	Count   int    `json:"count"`
}

// CountBookings godoc
// @Summary Count bookings for an event
// @Description Returns the number of bookings for the event. The count is best effort and reports 0 when it cannot be determined.
// @Tags bookings
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the count"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /events/{eventID}/bookings/count [get]
func (c *BookingController) CountBookings(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if _, err := uuid.Parse(eventID); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "event ID must be a valid UUID")
		return
	}
	count := c.Service.CountBookings(r.Context(), eventID)
	helpers.WriteJSONSuccess(w, http.StatusOK, BookingCountResponse{EventID: eventID, Count: count})
}
