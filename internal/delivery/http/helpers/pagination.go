package helpers

import (
	"net/http"
	"strconv"

	"eventboard/internal/domain"
)

// List endpoints page through results with ?page and ?page_size. Anything
// that does not parse as a positive integer falls back to the defaults, and
// page_size is capped at MaxPageSize so a single request cannot drag the
// whole table.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination extracts pagination parameters from the request query.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	params := domain.PaginationParams{Page: DefaultPage, PageSize: DefaultPageSize}
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v >= 1 {
		params.Page = v
	}
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil && v >= 1 {
		params.PageSize = min(v, MaxPageSize)
	}
	return params
}

// PaginationMeta echoes the requested page alongside the total number of
// matching rows so clients can render page controls.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta for a page of results. TotalPages
// rounds up, so a partial final page still counts.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	meta := PaginationMeta{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		meta.TotalPages = (total + pageSize - 1) / pageSize
	}
	return meta
}
