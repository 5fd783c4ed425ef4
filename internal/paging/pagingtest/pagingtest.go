// Package pagingtest builds paging.Params for service tests without a request.
package pagingtest

import (
	"strconv"

	"neoflix/internal/paging"
)

// New runs the values through paging.Parse so tests see the same sort
// whitelisting and number defaults a request would.
func New(query, sortKey string, sorts paging.SortSet, order string, limit, skip int) paging.Params {
	values := map[string]string{
		"q":     query,
		"sort":  sortKey,
		"order": order,
		"limit": strconv.Itoa(limit),
		"skip":  strconv.Itoa(skip),
	}
	return paging.Parse(func(key string, _ ...string) string { return values[key] }, sorts)
}
