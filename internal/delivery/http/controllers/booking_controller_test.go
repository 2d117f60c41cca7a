package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	createErr     error
	createResult  *domain.Booking
	createCreated bool
	countResult   int
	lastEventID   string
	lastEmail     string
	lastCountID   string
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.Booking, bool, error) {
	f.lastEventID = eventID
	f.lastEmail = email
	if f.createErr != nil {
		return nil, false, f.createErr
	}
	return f.createResult, f.createCreated, nil
}

func (f *fakeBookingService) CountBookings(ctx context.Context, eventID string) int {
	f.lastCountID = eventID
	return f.countResult
}

const testEventID = "7a9f31d2-6c4e-4f0b-9a21-3f8e5d6c7b01"

func TestBookingController_CreateBooking(t *testing.T) {
	tests := []struct {
		name           string
		eventID        string
		body           string
		fakeErr        error
		fakeResult     *domain.Booking
		fakeCreated    bool
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:        "new booking",
			eventID:     testEventID,
			body:        `{"email":"jane@example.com"}`,
			fakeResult:  &domain.Booking{ID: "bk-1", EventID: testEventID, Email: "jane@example.com"},
			fakeCreated: true,
			wantStatus:  http.StatusCreated,
		},
		{
			name:        "already booked",
			eventID:     testEventID,
			body:        `{"email":"jane@example.com"}`,
			fakeResult:  &domain.Booking{ID: "bk-1", EventID: testEventID, Email: "jane@example.com"},
			fakeCreated: false,
			wantStatus:  http.StatusOK,
		},
		{
			name:           "invalid event ID",
			eventID:        "not-a-uuid",
			body:           `{"email":"jane@example.com"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "UUID",
		},
		{
			name:           "missing email",
			eventID:        testEventID,
			body:           `{}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "email is required",
		},
		{
			name:           "invalid email",
			eventID:        testEventID,
			body:           `{"email":"nonsense"}`,
			fakeErr:        domain.ErrInvalidEmail,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "email",
		},
		{
			name:           "unknown event",
			eventID:        testEventID,
			body:           `{"email":"jane@example.com"}`,
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "event not found",
		},
		{
			name:           "service error",
			eventID:        testEventID,
			body:           `{"email":"jane@example.com"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{
				createErr:     tt.fakeErr,
				createResult:  tt.fakeResult,
				createCreated: tt.fakeCreated,
			}
			ctrl := NewBookingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/events/"+tt.eventID+"/bookings", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.CreateBooking(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusCreated || tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error, "success response must have error nil")
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var data CreateBookingResponse
				require.NoError(t, json.Unmarshal(dataBytes, &data))
				assert.Equal(t, tt.fakeCreated, data.Created)
				require.NotNil(t, data.Booking)
				assert.Equal(t, "bk-1", data.Booking.ID)
				assert.Equal(t, tt.eventID, fake.lastEventID)
				assert.Equal(t, "jane@example.com", fake.lastEmail)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestBookingController_CountBookings(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		count      int
		wantStatus int
	}{
		{name: "existing event", eventID: testEventID, count: 17, wantStatus: http.StatusOK},
		{name: "zero bookings", eventID: testEventID, count: 0, wantStatus: http.StatusOK},
		{name: "invalid event ID", eventID: "nope", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{countResult: tt.count}
			ctrl := NewBookingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/events/"+tt.eventID+"/bookings/count", nil)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.CountBookings(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus != http.StatusOK {
				return
			}
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.Nil(t, envelope.Error)
			dataBytes, err := json.Marshal(envelope.Data)
			require.NoError(t, err)
			var data BookingCountResponse
			require.NoError(t, json.Unmarshal(dataBytes, &data))
			assert.Equal(t, tt.count, data.Count)
			assert.Equal(t, tt.eventID, data.EventID)
		})
	}
}
