// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridelink/ridelink/pkg/pagination"
)

/*
TestFromRequest_Clamping verifies query parsing falls back to safe defaults
for missing, invalid, or abusive values.
*/
func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, pagination.DefaultLimit},
		{"explicit", "?page=3&limit=50", 3, 50},
		{"negative_page", "?page=-2", 1, pagination.DefaultLimit},
		{"zero_limit", "?limit=0", 1, pagination.DefaultLimit},
		{"limit_over_max", "?limit=5000", 1, pagination.DefaultLimit},
		{"not_numbers", "?page=abc&limit=xyz", 1, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/favourites"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset verifies SQL offset math for 1-indexed pages.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
}

/*
TestNewMeta_TotalPages verifies ceiling division for the page count.
*/
func TestNewMeta_TotalPages(t *testing.T) {
	assert.Equal(t, 4, pagination.NewMeta(1, 10, 35).TotalPages)
	assert.Equal(t, 1, pagination.NewMeta(1, 10, 10).TotalPages)
	assert.Equal(t, 0, pagination.NewMeta(1, 10, 0).TotalPages)
}
