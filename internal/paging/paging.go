// Package paging parses list parameters (q, sort, order, limit, skip) from a request.
//
// Sort keys end up interpolated into Cypher text because the driver only
// parameterizes values, so a sort key is only ever accepted from a fixed
// whitelist.
package paging

import (
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 6
	DefaultSkip  = 0
)

type Order string

const (
	Asc  Order = "ASC"
	Desc Order = "DESC"
)

// SortSet is an immutable whitelist of sortable property names.
type SortSet struct {
	values []string
}

func NewSortSet(values ...string) SortSet {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return SortSet{values: sorted}
}

func (s SortSet) Contains(value string) bool {
	i := sort.SearchStrings(s.values, value)
	return i < len(s.values) && s.values[i] == value
}

var (
	MovieSort  = NewSortSet("title", "released", "imdbRating", "score")
	PeopleSort = NewSortSet("name", "born", "movieCount")
	RatingSort = NewSortSet("rating", "timestamp")
	// NoSort is used by endpoints with a server-defined order.
	NoSort = NewSortSet()
)

type Params struct {
	Query string
	Sort  string
	Order Order
	Limit int
	Skip  int
}

// QueryFunc matches fiber's (*Ctx).Query.
type QueryFunc func(key string, defaultValue ...string) string

// Parse reads list parameters. An unknown sort key is dropped so the caller
// falls back to its own default; malformed or out-of-range numbers take the
// defaults.
func Parse(query QueryFunc, sorts SortSet) Params {
	p := Default()
	p.Query = query("q")
	p.Order = parseOrder(query("order"))
	p.Limit = parseInt(query("limit"), p.Limit)
	p.Skip = parseInt(query("skip"), p.Skip)
	if s := query("sort"); sorts.Contains(s) {
		p.Sort = s
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Skip < 0 {
		p.Skip = DefaultSkip
	}
	return p
}

// Default is the page used when a request carries no list parameters.
func Default() Params {
	return Params{Order: Asc, Limit: DefaultLimit, Skip: DefaultSkip}
}

// SortOr returns the validated sort key or fallback when none was accepted.
func (p Params) SortOr(fallback string) string {
	if p.Sort == "" {
		return fallback
	}
	return p.Sort
}

// QueryParam is the value bound to $q: nil when no filter was given.
func (p Params) QueryParam() any {
	if p.Query == "" {
		return nil
	}
	return p.Query
}

func parseOrder(raw string) Order {
	if strings.EqualFold(raw, string(Desc)) {
		return Desc
	}
	return Asc
}

func parseInt(raw string, defaultValue int) int {
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
