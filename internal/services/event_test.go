package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

// mockEventRepo is an in-memory EventRepository. The taken map backs
// SlugExists; Create and Update enforce it the way the real store's unique
// index would.
type mockEventRepo struct {
	taken       map[string]string        // slug -> owning event ID
	events      map[string]*domain.Event // id -> event
	nextID      int
	createCalls int
	// When set, the first Create fails with ErrDuplicateSlug and registers
	// the slug as taken by a rival, simulating a lost check-then-write race.
	loseFirstCreateRace bool
	createErr           error
	updateErr           error
	listSimilarResult   []*domain.Event
	lastSimilarTags     []string
	lastSimilarExclude  string
	lastListFromDate    string
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{
		taken:  make(map[string]string),
		events: make(map[string]*domain.Event),
	}
}

func (m *mockEventRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	id, ok := m.taken[slug]
	if !ok {
		return false, nil
	}
	if excludeID != "" && id == excludeID {
		return false, nil
	}
	return true, nil
}

func (m *mockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	m.createCalls++
	if m.loseFirstCreateRace && m.createCalls == 1 {
		m.taken[e.Slug] = "rival"
		return domain.ErrDuplicateSlug
	}
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.taken[e.Slug]; ok {
		return domain.ErrDuplicateSlug
	}
	m.nextID++
	e.ID = fmt.Sprintf("ev-%d", m.nextID)
	m.taken[e.Slug] = e.ID
	stored := *e
	m.events[e.ID] = &stored
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (m *mockEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	id, ok := m.taken[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m.GetByID(ctx, id)
}

func (m *mockEventRepo) List(ctx context.Context, params domain.PaginationParams, fromDate string) ([]*domain.Event, int, error) {
	m.lastListFromDate = fromDate
	events := make([]*domain.Event, 0, len(m.events))
	for _, e := range m.events {
		if e.Date < fromDate {
			continue
		}
		copied := *e
		events = append(events, &copied)
	}
	return events, len(events), nil
}

func (m *mockEventRepo) ListSimilar(ctx context.Context, tags []string, excludeID string, limit int) ([]*domain.Event, error) {
	m.lastSimilarTags = tags
	m.lastSimilarExclude = excludeID
	return m.listSimilarResult, nil
}

func (m *mockEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	old, ok := m.events[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if id, taken := m.taken[e.Slug]; taken && id != e.ID {
		return domain.ErrDuplicateSlug
	}
	delete(m.taken, old.Slug)
	m.taken[e.Slug] = e.ID
	stored := *e
	m.events[e.ID] = &stored
	return nil
}

// seed registers an existing event under the given slug.
func (m *mockEventRepo) seed(slug, title string) *domain.Event {
	m.nextID++
	e := &domain.Event{
		ID:    fmt.Sprintf("ev-%d", m.nextID),
		Title: title,
		Slug:  slug,
		Tags:  []string{"react"},
	}
	m.taken[slug] = e.ID
	m.events[e.ID] = e
	return e
}

type mockImageStore struct {
	url     string
	err     error
	uploads int
}

func (m *mockImageStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	m.uploads++
	if m.err != nil {
		return "", m.err
	}
	return m.url, nil
}

var fixedNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestEventService(repo *mockEventRepo, store *mockImageStore) *eventService {
	svc := NewEventService(repo, store, 2*time.Second).(*eventService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validSubmission() *domain.EventSubmission {
	return &domain.EventSubmission{
		Title:            "React Summit",
		Description:      "A conference about React.",
		Overview:         "Two days of talks.",
		Venue:            "Expo Hall",
		Location:         "Amsterdam",
		Date:             "2026-10-12",
		Time:             "9:00 AM",
		Mode:             "offline",
		Audience:         "Frontend engineers",
		Agenda:           `["Registration","Keynote"]`,
		Organizer:        "GitNation",
		Tags:             `["react","javascript"]`,
		Image:            []byte("png-bytes"),
		ImageContentType: "image/png",
	}
}

func TestEventService_CreateEvent(t *testing.T) {
	repo := newMockEventRepo()
	store := &mockImageStore{url: "/uploads/abc.png"}
	svc := newTestEventService(repo, store)

	event, err := svc.CreateEvent(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.Equal(t, "react-summit", event.Slug)
	assert.Equal(t, "2026-10-12", event.Date)
	assert.Equal(t, "09:00", event.Time)
	assert.Equal(t, "/uploads/abc.png", event.Image)
	assert.Equal(t, []string{"Registration", "Keynote"}, event.Agenda)
	assert.Equal(t, []string{"react", "javascript"}, event.Tags)
	assert.Equal(t, fixedNow, event.CreatedAt)
	assert.Equal(t, 1, store.uploads)
}

func TestEventService_CreateEvent_SlugCounters(t *testing.T) {
	repo := newMockEventRepo()
	store := &mockImageStore{url: "/uploads/abc.png"}
	svc := newTestEventService(repo, store)

	// Three events with the same title get react-summit, -1, -2.
	wantSlugs := []string{"react-summit", "react-summit-1", "react-summit-2"}
	for _, want := range wantSlugs {
		event, err := svc.CreateEvent(context.Background(), validSubmission())
		require.NoError(t, err)
		assert.Equal(t, want, event.Slug)
	}
}

func TestEventService_CreateEvent_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(sub *domain.EventSubmission)
		check  func(t *testing.T, err error)
	}{
		{
			name:   "missing fields collected",
			mutate: func(sub *domain.EventSubmission) { sub.Title = ""; sub.Venue = "  " },
			check: func(t *testing.T, err error) {
				var missingErr *domain.MissingFieldsError
				require.ErrorAs(t, err, &missingErr)
				assert.Equal(t, []string{"title", "venue"}, missingErr.Fields)
			},
		},
		{
			name:   "missing image",
			mutate: func(sub *domain.EventSubmission) { sub.Image = nil },
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrMissingImage)
			},
		},
		{
			name:   "past date",
			mutate: func(sub *domain.EventSubmission) { sub.Date = "2020-01-01" },
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrPastDate)
			},
		},
		{
			name:   "unparseable time",
			mutate: func(sub *domain.EventSubmission) { sub.Time = "quarter past nine" },
			check: func(t *testing.T, err error) {
				var dtErr *domain.InvalidDateTimeError
				require.ErrorAs(t, err, &dtErr)
				assert.Equal(t, "time", dtErr.Field)
			},
		},
		{
			name:   "empty agenda list",
			mutate: func(sub *domain.EventSubmission) { sub.Agenda = `[]` },
			check: func(t *testing.T, err error) {
				var emptyErr *domain.EmptyListError
				require.ErrorAs(t, err, &emptyErr)
				assert.Equal(t, "agenda", emptyErr.Field)
			},
		},
		{
			name:   "invalid mode",
			mutate: func(sub *domain.EventSubmission) { sub.Mode = "virtual" },
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
			},
		},
		{
			name:   "unsupported image type",
			mutate: func(sub *domain.EventSubmission) { sub.ImageContentType = "application/pdf" },
			check: func(t *testing.T, err error) {
				var imgErr *domain.InvalidImageError
				require.ErrorAs(t, err, &imgErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockEventRepo()
			svc := newTestEventService(repo, &mockImageStore{url: "/uploads/abc.png"})

			sub := validSubmission()
			tt.mutate(sub)
			_, err := svc.CreateEvent(context.Background(), sub)
			require.Error(t, err)
			tt.check(t, err)
			assert.Equal(t, 0, repo.createCalls, "no persist on validation failure")
		})
	}
}

func TestEventService_CreateEvent_UploadFailureAbortsPersist(t *testing.T) {
	repo := newMockEventRepo()
	store := &mockImageStore{err: errors.New("disk full")}
	svc := newTestEventService(repo, store)

	_, err := svc.CreateEvent(context.Background(), validSubmission())

	var uploadErr *domain.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, 0, repo.createCalls, "nothing persisted after upload failure")
}

func TestEventService_CreateEvent_RetriesLostSlugRace(t *testing.T) {
	repo := newMockEventRepo()
	repo.loseFirstCreateRace = true
	store := &mockImageStore{url: "/uploads/abc.png"}
	svc := newTestEventService(repo, store)

	event, err := svc.CreateEvent(context.Background(), validSubmission())
	require.NoError(t, err)

	// The rival now owns react-summit; the retry resolved the next counter.
	assert.Equal(t, "react-summit-1", event.Slug)
	assert.Equal(t, 2, repo.createCalls)
}

func TestEventService_UpdateEvent(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("description only keeps slug", func(t *testing.T) {
		repo := newMockEventRepo()
		repo.seed("react-summit", "React Summit")
		svc := newTestEventService(repo, &mockImageStore{})

		event, err := svc.UpdateEvent(context.Background(), "react-summit", &domain.EventUpdate{
			Description: strPtr("Updated description"),
		})
		require.NoError(t, err)
		assert.Equal(t, "react-summit", event.Slug)
		assert.Equal(t, "Updated description", event.Description)
		assert.Equal(t, fixedNow, event.UpdatedAt)
	})

	t.Run("title change re-resolves slug", func(t *testing.T) {
		repo := newMockEventRepo()
		repo.seed("react-summit", "React Summit")
		svc := newTestEventService(repo, &mockImageStore{})

		event, err := svc.UpdateEvent(context.Background(), "react-summit", &domain.EventUpdate{
			Title: strPtr("Vue Conf"),
		})
		require.NoError(t, err)
		assert.Equal(t, "vue-conf", event.Slug)
		assert.Equal(t, "Vue Conf", event.Title)
	})

	t.Run("title unchanged keeps slug counters", func(t *testing.T) {
		repo := newMockEventRepo()
		repo.seed("react-summit", "React Summit")
		seeded := repo.seed("react-summit-1", "React Summit")
		svc := newTestEventService(repo, &mockImageStore{})

		// Same title as stored: the counter-suffixed slug must not be
		// recomputed back toward the base.
		event, err := svc.UpdateEvent(context.Background(), seeded.Slug, &domain.EventUpdate{
			Title: strPtr("React Summit"),
		})
		require.NoError(t, err)
		assert.Equal(t, "react-summit-1", event.Slug)
	})

	t.Run("unknown slug", func(t *testing.T) {
		repo := newMockEventRepo()
		svc := newTestEventService(repo, &mockImageStore{})

		_, err := svc.UpdateEvent(context.Background(), "missing-event", &domain.EventUpdate{
			Description: strPtr("x"),
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid date", func(t *testing.T) {
		repo := newMockEventRepo()
		repo.seed("react-summit", "React Summit")
		svc := newTestEventService(repo, &mockImageStore{})

		_, err := svc.UpdateEvent(context.Background(), "react-summit", &domain.EventUpdate{
			Date: strPtr("someday"),
		})
		var dtErr *domain.InvalidDateTimeError
		require.ErrorAs(t, err, &dtErr)
		assert.Equal(t, "date", dtErr.Field)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		repo := newMockEventRepo()
		repo.seed("react-summit", "React Summit")
		svc := newTestEventService(repo, &mockImageStore{})

		_, err := svc.UpdateEvent(context.Background(), "react-summit", &domain.EventUpdate{
			Title: strPtr("   "),
		})
		var missingErr *domain.MissingFieldsError
		require.ErrorAs(t, err, &missingErr)
	})
}

func TestEventService_ListEvents_FiltersPastEvents(t *testing.T) {
	repo := newMockEventRepo()
	past := repo.seed("legacy-conf", "Legacy Conf")
	past.Date = "2025-11-02"
	upcoming := repo.seed("react-summit", "React Summit")
	upcoming.Date = "2026-03-01"
	svc := newTestEventService(repo, &mockImageStore{})

	events, total, err := svc.ListEvents(context.Background(), domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Format("2006-01-02"), repo.lastListFromDate)
	assert.Equal(t, 1, total)
	require.Len(t, events, 1)
	assert.Equal(t, "react-summit", events[0].Slug)
}

func TestEventService_ListSimilarEvents(t *testing.T) {
	repo := newMockEventRepo()
	seeded := repo.seed("react-summit", "React Summit")
	repo.listSimilarResult = []*domain.Event{{ID: "ev-9", Slug: "js-nation"}}
	svc := newTestEventService(repo, &mockImageStore{})

	similar, err := svc.ListSimilarEvents(context.Background(), "react-summit", 3)
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, seeded.Tags, repo.lastSimilarTags)
	assert.Equal(t, seeded.ID, repo.lastSimilarExclude)
}

func TestEventService_ListSimilarEvents_UnknownSlug(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTestEventService(repo, &mockImageStore{})

	_, err := svc.ListSimilarEvents(context.Background(), "missing-event", 3)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_ListSimilarEvents_NilResultBecomesEmpty(t *testing.T) {
	repo := newMockEventRepo()
	repo.seed("react-summit", "React Summit")
	svc := newTestEventService(repo, &mockImageStore{})

	similar, err := svc.ListSimilarEvents(context.Background(), "react-summit", 3)
	require.NoError(t, err)
	assert.NotNil(t, similar)
	assert.Empty(t, similar)
}
