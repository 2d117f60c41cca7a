package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"
	"eventboard/internal/normalize"
	"eventboard/internal/sanitize"
	"eventboard/internal/slug"
)

type eventService struct {
	eventRepo      domain.EventRepository
	imageStore     domain.ImageStore
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEventService creates an EventService backed by the given repository and
// image store.
func NewEventService(eventRepo domain.EventRepository, imageStore domain.ImageStore, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		imageStore:     imageStore,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// CreateEvent runs the creation pipeline: sanitize, validate, upload the
// image, derive and resolve a unique slug, normalize date and time, then
// persist once. Any failure before the final persist leaves no record
// behind. A store-level slug duplicate (the check-then-write race) is
// retried once with a fresh uniqueness check before being surfaced.
func (s *eventService) CreateEvent(ctx context.Context, sub *domain.EventSubmission) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sanitizeSubmission(sub)

	agenda, tags, _, err := ValidateSubmission(sub, s.now())
	if err != nil {
		return nil, err
	}

	// Upload before slug resolution so an upload fault aborts with no
	// partial record and no wasted slug work.
	imageURL, err := s.imageStore.Upload(ctx, sub.Image, sub.ImageContentType)
	if err != nil {
		return nil, &domain.UploadError{Err: err}
	}

	date, err := normalize.Date(sub.Date)
	if err != nil {
		return nil, &domain.InvalidDateTimeError{Field: "date", Value: sub.Date}
	}
	timeOfDay, err := normalize.Time(sub.Time)
	if err != nil {
		return nil, &domain.InvalidDateTimeError{Field: "time", Value: sub.Time}
	}

	event := &domain.Event{
		Title:       sub.Title,
		Description: sub.Description,
		Overview:    sub.Overview,
		Image:       imageURL,
		Venue:       sub.Venue,
		Location:    sub.Location,
		Date:        date,
		Time:        timeOfDay,
		Mode:        sub.Mode,
		Audience:    sub.Audience,
		Agenda:      agenda,
		Organizer:   sub.Organizer,
		Tags:        tags,
	}

	// First attempt plus one retry for the slug-uniqueness race: the
	// existence check and the insert are not atomic, so the store's unique
	// index is the final authority.
	for attempt := 0; attempt < 2; attempt++ {
		resolved, err := slug.Resolve(ctx, slug.Make(sub.Title), "", s.eventRepo.SlugExists)
		if err != nil {
			if errors.Is(err, slug.ErrExhausted) {
				return nil, err
			}
			return nil, fmt.Errorf("resolve slug: %w", err)
		}
		event.Slug = resolved
		event.CreatedAt = s.now()
		event.UpdatedAt = event.CreatedAt

		err = s.eventRepo.Create(ctx, event)
		if err == nil {
			return event, nil
		}
		if errors.Is(err, domain.ErrDuplicateSlug) && attempt == 0 {
			continue
		}
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return nil, domain.ErrDuplicateSlug
}

func (s *eventService) GetEventBySlug(ctx context.Context, slugValue string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Listings only show upcoming events. Dates are stored in canonical
	// YYYY-MM-DD form, so today's date doubles as the lower bound.
	fromDate := s.now().Format(normalize.DateLayout)
	events, total, err := s.eventRepo.List(ctx, params, fromDate)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

func (s *eventService) ListSimilarEvents(ctx context.Context, slugValue string, limit int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}

	similar, err := s.eventRepo.ListSimilar(ctx, event.Tags, event.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list similar events: %w", err)
	}
	if similar == nil {
		similar = []*domain.Event{}
	}
	return similar, nil
}

// UpdateEvent applies a partial update. Derivations are recomputed only for
// the fields that actually changed: a new title forces slug re-resolution
// (excluding the event itself from the collision check), while updates that
// leave the title untouched never alter the slug, so external links stay
// valid. The past-date rule is not enforced on update.
func (s *eventService) UpdateEvent(ctx context.Context, slugValue string, update *domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}

	if update.Title != nil {
		title := sanitize.String(*update.Title)
		if title == "" {
			return nil, &domain.MissingFieldsError{Fields: []string{"title"}}
		}
		if len(title) > domain.MaxTitleLen {
			return nil, &domain.FieldTooLongError{Field: "title", Max: domain.MaxTitleLen}
		}
		if title != event.Title {
			resolved, err := slug.Resolve(ctx, slug.Make(title), event.ID, s.eventRepo.SlugExists)
			if err != nil {
				if errors.Is(err, slug.ErrExhausted) {
					return nil, err
				}
				return nil, fmt.Errorf("resolve slug: %w", err)
			}
			event.Slug = resolved
		}
		event.Title = title
	}
	if update.Description != nil {
		d := sanitize.String(*update.Description)
		if len(d) > domain.MaxDescriptionLen {
			return nil, &domain.FieldTooLongError{Field: "description", Max: domain.MaxDescriptionLen}
		}
		event.Description = d
	}
	if update.Overview != nil {
		o := sanitize.String(*update.Overview)
		if len(o) > domain.MaxOverviewLen {
			return nil, &domain.FieldTooLongError{Field: "overview", Max: domain.MaxOverviewLen}
		}
		event.Overview = o
	}
	if update.Venue != nil {
		event.Venue = sanitize.String(*update.Venue)
	}
	if update.Location != nil {
		event.Location = sanitize.String(*update.Location)
	}
	if update.Date != nil {
		date, err := normalize.Date(*update.Date)
		if err != nil {
			return nil, &domain.InvalidDateTimeError{Field: "date", Value: *update.Date}
		}
		event.Date = date
	}
	if update.Time != nil {
		timeOfDay, err := normalize.Time(*update.Time)
		if err != nil {
			return nil, &domain.InvalidDateTimeError{Field: "time", Value: *update.Time}
		}
		event.Time = timeOfDay
	}
	if update.Mode != nil {
		mode := sanitize.String(*update.Mode)
		if mode != domain.ModeOnline && mode != domain.ModeOffline && mode != domain.ModeHybrid {
			return nil, domain.ErrInvalidInput
		}
		event.Mode = mode
	}
	if update.Audience != nil {
		event.Audience = sanitize.String(*update.Audience)
	}
	if update.Organizer != nil {
		event.Organizer = sanitize.String(*update.Organizer)
	}

	event.UpdatedAt = s.now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.ErrDuplicateSlug
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}
