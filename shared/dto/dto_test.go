package dto_test

import (
	"math"
	"net/http"
	"net/url"
	"testing"

	"staysync/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:        "with all valid parameters",
			queryParams: map[string]string{"page": "2", "limit": "20", "search": " Chen "},
			expected:    dto.QueryParams{Page: 2, Limit: 20, Search: "Chen"},
		},
		{
			name:           "defaults applied",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:        "invalid numbers ignored",
			queryParams: map[string]string{"page": "zero", "limit": "-5"},
			expected:    dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back to defaults",
			queryParams:    map[string]string{"page": "0", "limit": "abc"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for k, v := range tt.queryParams {
				values.Set(k, v)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			q := dto.QueryParams{}
			q.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, (&dto.QueryParams{Page: 1, Limit: 10}).Offset())
	assert.Equal(t, 20, (&dto.QueryParams{Page: 3, Limit: 10}).Offset())
	assert.Equal(t, 0, (&dto.QueryParams{}).Offset())
}

func TestQueryParams_OffsetSaturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, (&dto.QueryParams{Page: 4611686018427387905, Limit: 3}).Offset())
	assert.Equal(t, math.MaxInt, (&dto.QueryParams{Page: math.MaxInt, Limit: math.MaxInt}).Offset())
}
