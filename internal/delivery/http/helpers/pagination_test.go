package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"eventboard/internal/domain"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want domain.PaginationParams
	}{
		{"defaults", "/events", domain.PaginationParams{Page: 1, PageSize: 20}},
		{"explicit", "/events?page=3&page_size=5", domain.PaginationParams{Page: 3, PageSize: 5}},
		{"page size capped", "/events?page_size=999", domain.PaginationParams{Page: 1, PageSize: 100}},
		{"zero and negative fall back", "/events?page=0&page_size=-1", domain.PaginationParams{Page: 1, PageSize: 20}},
		{"garbage falls back", "/events?page=abc&page_size=1.5", domain.PaginationParams{Page: 1, PageSize: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.want, ParsePagination(r))
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(2, 20, 41)
	assert.Equal(t, PaginationMeta{Page: 2, PageSize: 20, Total: 41, TotalPages: 3}, meta)

	empty := NewPaginationMeta(1, 20, 0)
	assert.Equal(t, 0, empty.TotalPages)

	assert.Equal(t, 0, NewPaginationMeta(1, 0, 10).TotalPages)
}
