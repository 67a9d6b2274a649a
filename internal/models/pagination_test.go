package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"valid input", 3, 25, 3, 25},
		{"zero page", 0, 10, 1, 10},
		{"negative page", -2, 10, 1, 10},
		{"zero limit", 1, 0, 1, DefaultPageSize},
		{"negative limit", 1, -5, 1, DefaultPageSize},
		{"limit above cap", 1, 5000, 1, MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, NormalizePage(1, 10).Offset())
	assert.Equal(t, 20, NormalizePage(3, 10).Offset())
}

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(25, NormalizePage(2, 10))
	assert.Equal(t, int64(25), meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)

	last := NewPageMeta(25, NormalizePage(3, 10))
	assert.False(t, last.HasNextPage)

	empty := NewPageMeta(0, NormalizePage(1, 10))
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNextPage)
	assert.False(t, empty.HasPrevPage)
}
