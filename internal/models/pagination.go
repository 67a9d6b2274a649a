package models

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest carries normalized pagination input
type PageRequest struct {
	Page  int
	Limit int
}

// NormalizePage clamps raw pagination input: non-positive page becomes 1,
// non-positive limit becomes the default, and limit is capped to bound the
// cost of a single listing query.
func NormalizePage(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip for this page
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta is the pagination envelope returned alongside listing items
type PageMeta struct {
	TotalCount  int64 `json:"total_count"`
	Page        int   `json:"page"`
	TotalPages  int   `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// NewPageMeta derives page-count metadata from a total and the request
func NewPageMeta(total int64, p PageRequest) PageMeta {
	totalPages := int(math.Ceil(float64(total) / float64(p.Limit)))
	return PageMeta{
		TotalCount:  total,
		Page:        p.Page,
		TotalPages:  totalPages,
		HasNextPage: int64(p.Page)*int64(p.Limit) < total,
		HasPrevPage: p.Page > 1 && total > 0,
	}
}
