package shared

import (
	"math"
	"strings"

	"staysync/shared/dto"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins a key prefix and its parts, e.g. "preference:client-1".
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// Paginate returns the slice of items on the page described by params.
func Paginate[T any](items []T, params dto.QueryParams) []T {
	offset := params.Offset()
	if offset < 0 || offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if params.Limit > 0 && params.Limit < end-offset {
		end = offset + params.Limit
	}

	return items[offset:end]
}
