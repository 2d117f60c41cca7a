package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"eventboard/internal/domain"
)

// emailShape is the minimal address check applied before storing a booking.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type bookingService struct {
	bookingRepo  domain.BookingRepository
	eventRepo    domain.EventRepository
	emailService domain.EmailService
	logger       *slog.Logger
	now          func() time.Time
}

// NewBookingService creates a BookingService. emailService may be nil, in
// which case no confirmation emails are sent.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		eventRepo:    eventRepo,
		emailService: emailService,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateBooking books the email onto the event. The duplicate pre-check makes
// the common path cheap, but the store's unique (event_id, email) constraint
// is the ground truth: losing the race to a concurrent identical booking is
// handled by re-reading the winner, not by failing.
func (s *bookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.Booking, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailShape.MatchString(email) {
		return nil, false, domain.ErrInvalidEmail
	}

	if existing, err := s.bookingRepo.GetByEventAndEmail(ctx, eventID, email); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get booking: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get event: %w", err)
	}

	now := s.now()
	booking := domain.NewBooking(eventID, email, now, now)
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrDuplicateBooking) {
			// Lost the race to a concurrent identical booking.
			existing, gerr := s.bookingRepo.GetByEventAndEmail(ctx, eventID, email)
			if gerr != nil {
				return nil, false, fmt.Errorf("get booking after conflict: %w", gerr)
			}
			return existing, false, nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("create booking: %w", err)
	}

	s.sendConfirmation(ctx, event, email)
	return booking, true, nil
}

// sendConfirmation is best-effort: a mail failure is logged and never fails
// the booking.
func (s *bookingService) sendConfirmation(ctx context.Context, event *domain.Event, email string) {
	if s.emailService == nil {
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:      email,
		EventTitle: event.Title,
		EventDate:  event.Date,
		EventTime:  event.Time,
		Venue:      event.Venue,
		Location:   event.Location,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "booking confirmation email failed", "event_id", event.ID, "err", err)
	}
}

// CountBookings returns the number of bookings for the event, or 0 on any
// underlying fault. Counts are presentational, not load-bearing.
func (s *bookingService) CountBookings(ctx context.Context, eventID string) int {
	count, err := s.bookingRepo.CountByEventID(ctx, eventID)
	if err != nil {
		s.logger.WarnContext(ctx, "count bookings failed", "event_id", eventID, "err", err)
		return 0
	}
	return count
}
