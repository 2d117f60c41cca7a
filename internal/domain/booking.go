package domain

import (
	"context"
	"time"
)

// Booking represents one email's registration for one event.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBooking returns a new Booking. ID is set by the repository on create.
func NewBooking(eventID, email string, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		EventID:   eventID,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// BookingRepository defines storage operations for bookings. The store
// enforces a unique (event_id, email) constraint and a foreign key to events;
// Create maps those rejections to ErrDuplicateBooking and ErrNotFound.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByEventAndEmail(ctx context.Context, eventID, email string) (*Booking, error)
	CountByEventID(ctx context.Context, eventID string) (int, error)
}

// BookingService defines booking operations.
type BookingService interface {
	// CreateBooking books the email onto the event. Returns (booking,
	// created, err): created is false when the pair was already booked,
	// which is a normal outcome rather than an error.
	CreateBooking(ctx context.Context, eventID, email string) (*Booking, bool, error)
	// CountBookings is best-effort: it returns 0 on any underlying fault.
	CountBookings(ctx context.Context, eventID string) int
}
