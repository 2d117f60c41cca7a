package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
	"eventboard/internal/slug"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing; the
// image itself is capped separately by the validation pipeline.
const maxMultipartMemory = 8 << 20

// EventController handles the public event pages and the organizer-facing
// creation and update endpoints.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// writeEventError maps pipeline errors to HTTP responses. Input errors carry
// enough detail to correct the request; the slug-uniqueness race maps to 409
// so callers know a retry is reasonable.
func (c *EventController) writeEventError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		missingErr  *domain.MissingFieldsError
		tooLongErr  *domain.FieldTooLongError
		emptyErr    *domain.EmptyListError
		imageErr    *domain.InvalidImageError
		dateTimeErr *domain.InvalidDateTimeError
		uploadErr   *domain.UploadError
	)
	switch {
	case errors.As(err, &missingErr),
		errors.As(err, &tooLongErr),
		errors.As(err, &emptyErr),
		errors.As(err, &imageErr),
		errors.As(err, &dateTimeErr),
		errors.Is(err, domain.ErrMissingImage),
		errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrDuplicateSlug):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "slug conflict, please retry")
	case errors.As(err, &uploadErr):
		c.Logger.ErrorContext(r.Context(), "image upload failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeInternalError, "image upload failed")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// ListEventsResponse is the response body for GET /events.
type ListEventsResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEvents godoc
// @Summary List events
// @Description Returns upcoming events ordered by date, paginated.
// @Tags events
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains events and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.ListEvents(r.Context(), params)
	if err != nil {
		c.writeEventError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Events:     events,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Description Returns the event identified by its slug. The slug must be lowercase alphanumeric with hyphens.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed slug)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slugValue := r.PathValue("slug")
	if !slug.Pattern.MatchString(slugValue) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest,
			"slug must contain only lowercase letters, numbers, and hyphens")
		return
	}
	event, err := c.Service.GetEventBySlug(r.Context(), slugValue)
	if err != nil {
		c.writeEventError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// similarEventsLimit caps the shared-tag filter result.
const similarEventsLimit = 3

// ListSimilarEvents godoc
// @Summary List similar events
// @Description Returns up to 3 events sharing at least one tag with the given event, excluding the event itself.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse "data contains similar events"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug}/similar [get]
func (c *EventController) ListSimilarEvents(w http.ResponseWriter, r *http.Request) {
	slugValue := r.PathValue("slug")
	if !slug.Pattern.MatchString(slugValue) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest,
			"slug must contain only lowercase letters, numbers, and hyphens")
		return
	}
	events, err := c.Service.ListSimilarEvents(r.Context(), slugValue, similarEventsLimit)
	if err != nil {
		c.writeEventError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event from a multipart form. The slug is derived from the title server-side; agenda and tags are JSON-encoded array strings; the image field carries the event image (max 5 MiB).
// @Tags events
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Event title"
// @Param description formData string true "Description"
// @Param overview formData string true "Overview"
// @Param venue formData string true "Venue"
// @Param location formData string true "Location"
// @Param date formData string true "Event date"
// @Param time formData string true "Event time"
// @Param mode formData string true "online, offline, or hybrid"
// @Param audience formData string true "Audience"
// @Param agenda formData string true "JSON array of agenda items"
// @Param organizer formData string true "Organizer name"
// @Param tags formData string true "JSON array of tags"
// @Param image formData file true "Event image"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug race lost)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid form data format")
		return
	}

	sub := &domain.EventSubmission{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Overview:    r.FormValue("overview"),
		Venue:       r.FormValue("venue"),
		Location:    r.FormValue("location"),
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		Mode:        r.FormValue("mode"),
		Audience:    r.FormValue("audience"),
		Agenda:      r.FormValue("agenda"),
		Organizer:   r.FormValue("organizer"),
		Tags:        r.FormValue("tags"),
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		data, rerr := io.ReadAll(file)
		if rerr != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "could not read image")
			return
		}
		sub.Image = data
		sub.ImageContentType = header.Header.Get("Content-Type")
	}

	event, err := c.Service.CreateEvent(r.Context(), sub)
	if err != nil {
		c.writeEventError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEventRequest is the request body for PATCH /events/{slug}. All fields
// optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Overview    *string `json:"overview"`
	Venue       *string `json:"venue"`
	Location    *string `json:"location"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Mode        *string `json:"mode"`
	Audience    *string `json:"audience"`
	Organizer   *string `json:"organizer"`
}

// UpdateEvent godoc
// @Summary Update event details
// @Description Partially updates an event. The slug is recomputed only when the title changes; date and time are renormalized only when supplied.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	slugValue := r.PathValue("slug")
	if !slug.Pattern.MatchString(slugValue) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest,
			"slug must contain only lowercase letters, numbers, and hyphens")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	update := &domain.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Overview:    req.Overview,
		Venue:       req.Venue,
		Location:    req.Location,
		Date:        req.Date,
		Time:        req.Time,
		Mode:        req.Mode,
		Audience:    req.Audience,
		Organizer:   req.Organizer,
	}
	event, err := c.Service.UpdateEvent(r.Context(), slugValue, update)
	if err != nil {
		c.writeEventError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
