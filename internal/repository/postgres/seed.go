package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"eventboard/internal/domain"
	"eventboard/internal/slug"
)

// SeedEvents replaces the contents of the events table with the given fixture
// events. Bookings cascade away with their events, so a seed run leaves the
// store in a known state. Slugs are derived from the fixture titles and
// resolved against the freshly cleared table.
func SeedEvents(ctx context.Context, db *sql.DB, events []*domain.Event) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("clear events: %w", err)
	}

	repo := NewEventRepository(db)
	now := time.Now()
	for _, e := range events {
		resolved, err := slug.Resolve(ctx, slug.Make(e.Title), "", repo.SlugExists)
		if err != nil {
			return fmt.Errorf("resolve slug for %q: %w", e.Title, err)
		}
		e.Slug = resolved
		e.CreatedAt = now
		e.UpdatedAt = now
		if err := repo.Create(ctx, e); err != nil {
			return fmt.Errorf("insert %q: %w", e.Title, err)
		}
	}
	return nil
}
