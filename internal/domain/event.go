package domain

import (
	"context"
	"time"
)

// Event modes.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

// Field length limits, mirrored by the events table.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 1000
	MaxOverviewLen    = 500
)

// Event represents one schedulable gathering. Slug is derived from the title
// and is never client-supplied; Date and Time are stored in canonical form
// (YYYY-MM-DD and 24-hour HH:MM).
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventSubmission is the raw, untrusted organizer input for creating an
// event. Agenda and Tags arrive as JSON-encoded array strings straight from
// the multipart form; Image is the uploaded file payload.
type EventSubmission struct {
	Title       string
	Description string
	Overview    string
	Venue       string
	Location    string
	Date        string
	Time        string
	Mode        string
	Audience    string
	Agenda      string
	Organizer   string
	Tags        string

	Image            []byte
	ImageContentType string
}

// EventUpdate carries a partial update. Nil fields are unchanged. Slug is
// recomputed only when Title is set; date/time are renormalized only when
// the corresponding field is set.
type EventUpdate struct {
	Title       *string
	Description *string
	Overview    *string
	Venue       *string
	Location    *string
	Date        *string
	Time        *string
	Mode        *string
	Audience    *string
	Organizer   *string
}

// EventRepository defines the interface for event storage. The store carries
// a unique index on slug; Create and Update return ErrDuplicateSlug when that
// index rejects the write.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// SlugExists reports whether any event other than excludeID already owns
	// the slug. excludeID may be empty on creation.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// List returns a page of events whose date is on or after fromDate,
	// together with the total count of such events. fromDate is a canonical
	// YYYY-MM-DD string; dates are stored in that form, so plain string
	// comparison orders and filters them correctly.
	List(ctx context.Context, params PaginationParams, fromDate string) ([]*Event, int, error)
	// ListSimilar returns up to limit events sharing at least one tag with
	// the given tags, excluding excludeID.
	ListSimilar(ctx context.Context, tags []string, excludeID string, limit int) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
}

// EventService defines the event lifecycle operations.
type EventService interface {
	CreateEvent(ctx context.Context, sub *EventSubmission) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	ListSimilarEvents(ctx context.Context, slug string, limit int) ([]*Event, error)
	UpdateEvent(ctx context.Context, slug string, update *EventUpdate) (*Event, error)
}
