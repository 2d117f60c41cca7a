package services

import (
	"time"

	"eventboard/internal/domain"
	"eventboard/internal/normalize"
	"eventboard/internal/sanitize"
)

// requiredFields lists every field an event submission must carry, in the
// order they are reported when missing.
var requiredFields = []string{
	"title", "description", "overview", "venue", "location",
	"date", "time", "mode", "audience", "agenda", "organizer", "tags",
}

// Image upload limits.
const (
	MaxImageBytes = 5 << 20 // 5 MiB
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// sanitizeSubmission trims every scalar field in place.
func sanitizeSubmission(sub *domain.EventSubmission) {
	sub.Title = sanitize.String(sub.Title)
	sub.Description = sanitize.String(sub.Description)
	sub.Overview = sanitize.String(sub.Overview)
	sub.Venue = sanitize.String(sub.Venue)
	sub.Location = sanitize.String(sub.Location)
	sub.Date = sanitize.String(sub.Date)
	sub.Time = sanitize.String(sub.Time)
	sub.Mode = sanitize.String(sub.Mode)
	sub.Audience = sanitize.String(sub.Audience)
	sub.Organizer = sanitize.String(sub.Organizer)
}

// ValidateSubmission checks a sanitized submission in ordered categories,
// short-circuiting on the first failing category but collecting every missing
// field within the presence category. It is pure: no store access, no
// side effects. On success it returns the parsed agenda and tags and the
// combined event instant.
func ValidateSubmission(sub *domain.EventSubmission, now time.Time) (agenda, tags []string, instant time.Time, err error) {
	// 1. Presence of every required field.
	byName := map[string]string{
		"title": sub.Title, "description": sub.Description, "overview": sub.Overview,
		"venue": sub.Venue, "location": sub.Location, "date": sub.Date,
		"time": sub.Time, "mode": sub.Mode, "audience": sub.Audience,
		"agenda": sub.Agenda, "organizer": sub.Organizer, "tags": sub.Tags,
	}
	var missing []string
	for _, f := range requiredFields {
		if byName[f] == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, nil, time.Time{}, &domain.MissingFieldsError{Fields: missing}
	}

	// Field constraints carried over from the data model.
	if len(sub.Title) > domain.MaxTitleLen {
		return nil, nil, time.Time{}, &domain.FieldTooLongError{Field: "title", Max: domain.MaxTitleLen}
	}
	if len(sub.Description) > domain.MaxDescriptionLen {
		return nil, nil, time.Time{}, &domain.FieldTooLongError{Field: "description", Max: domain.MaxDescriptionLen}
	}
	if len(sub.Overview) > domain.MaxOverviewLen {
		return nil, nil, time.Time{}, &domain.FieldTooLongError{Field: "overview", Max: domain.MaxOverviewLen}
	}
	if sub.Mode != domain.ModeOnline && sub.Mode != domain.ModeOffline && sub.Mode != domain.ModeHybrid {
		return nil, nil, time.Time{}, domain.ErrInvalidInput
	}

	// 2. Image payload must be attached.
	if len(sub.Image) == 0 {
		return nil, nil, time.Time{}, domain.ErrMissingImage
	}

	// 3. Date and time must combine into a single instant.
	instant, nerr := normalize.Instant(sub.Date, sub.Time)
	if nerr != nil {
		field, value := "date", sub.Date
		if nerr == normalize.ErrInvalidTime {
			field, value = "time", sub.Time
		}
		return nil, nil, time.Time{}, &domain.InvalidDateTimeError{Field: field, Value: value}
	}

	// 4. The instant must be strictly in the future (creation only).
	if !instant.After(now) {
		return nil, nil, time.Time{}, domain.ErrPastDate
	}

	// 5. Agenda and tags must parse to non-empty lists.
	agenda = sanitize.StringArray(sub.Agenda)
	if len(agenda) == 0 {
		return nil, nil, time.Time{}, &domain.EmptyListError{Field: "agenda"}
	}
	tags = sanitize.StringArray(sub.Tags)
	if len(tags) == 0 {
		return nil, nil, time.Time{}, &domain.EmptyListError{Field: "tags"}
	}

	// 6. Image type and size bounds.
	if _, ok := allowedImageTypes[sub.ImageContentType]; !ok {
		return nil, nil, time.Time{}, &domain.InvalidImageError{Reason: "unsupported content type " + sub.ImageContentType}
	}
	if len(sub.Image) > MaxImageBytes {
		return nil, nil, time.Time{}, &domain.InvalidImageError{Reason: "file exceeds 5 MiB"}
	}

	return agenda, tags, instant, nil
}
