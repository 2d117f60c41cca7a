package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

func TestBookingRepository_Create(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		EventID:   "ev-1",
		Email:     "jane@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO bookings").
					WithArgs("ev-1", "jane@example.com", now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("bk-1"))
			},
		},
		{
			name: "duplicate booking",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO bookings").
					WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_event_id_email_key"})
			},
			wantErr: domain.ErrDuplicateBooking,
		},
		{
			name: "unknown event",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO bookings").
					WillReturnError(&pq.Error{Code: "23503", Constraint: "bookings_event_id_fkey"})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO bookings").
					WillReturnError(errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewBookingRepository(db)

			b := *booking
			err = repo.Create(context.Background(), &b)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.name == "db error":
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "bk-1", b.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_GetByEventAndEmail(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	columns := []string{"id", "event_id", "email", "created_at", "updated_at"}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM bookings WHERE event_id = \\$1 AND email = \\$2").
					WithArgs("ev-1", "jane@example.com").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("bk-1", "ev-1", "jane@example.com", now, now))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM bookings WHERE event_id = \\$1 AND email = \\$2").
					WithArgs("ev-1", "jane@example.com").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewBookingRepository(db)

			b, err := repo.GetByEventAndEmail(context.Background(), "ev-1", "jane@example.com")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "bk-1", b.ID)
				assert.Equal(t, "jane@example.com", b.Email)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_CountByEventID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE event_id = \\$1").
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	repo := NewBookingRepository(db)

	count, err := repo.CountByEventID(context.Background(), "ev-1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
