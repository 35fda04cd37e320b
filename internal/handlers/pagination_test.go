package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", defaultPage, defaultLimit},
		{"?page=3&limit=20", 3, 20},
		{"?page=0&limit=0", defaultPage, defaultLimit},
		{"?page=-2&limit=-5", defaultPage, defaultLimit},
		{"?page=abc&limit=xyz", defaultPage, defaultLimit},
		{"?limit=500", defaultPage, maxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			page, limit := getPaginationParams(httptest.NewRequest("GET", "/api/requests"+tt.query, nil))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestPaginate(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, paginate(s, 1, 2))
	assert.Equal(t, []int{5}, paginate(s, 3, 2))
	assert.Equal(t, []int{}, paginate(s, 4, 2))
	assert.Equal(t, []int{}, paginate([]int(nil), 1, 10))
}
