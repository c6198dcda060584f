package shared_test

import (
	"math"
	"testing"

	"staysync/shared"
	"staysync/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "no data", total: 0, limit: 10, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial page", total: 21, limit: 10, expected: 3},
		{name: "invalid limit", total: 4, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "preference", shared.BuildCacheKey("preference"))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected []int
	}{
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 2}, expected: []int{1, 2}},
		{name: "last partial page", params: dto.QueryParams{Page: 3, Limit: 2}, expected: []int{5}},
		{name: "past the end", params: dto.QueryParams{Page: 4, Limit: 2}, expected: []int{}},
		{name: "no limit", params: dto.QueryParams{}, expected: []int{1, 2, 3, 4, 5}},
		{name: "huge page", params: dto.QueryParams{Page: 4611686018427387905, Limit: 3}, expected: []int{}},
		{name: "huge limit", params: dto.QueryParams{Page: 2, Limit: math.MaxInt}, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Paginate(items, tt.params))
		})
	}
}
