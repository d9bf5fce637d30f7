package repository

import (
	"strconv"
	"strings"
)

const (
	// CategoryField filters products by category, case-insensitively.
	CategoryField QueryField = "category"
)

// Query describes filtering and offset pagination for listing products.
type Query struct {
	Values map[QueryField]string

	Page  int
	Limit int
}

type QueryField string

func NewQuery() *Query {
	return &Query{
		Values: map[QueryField]string{},
		Page:   DefaultPage,
		Limit:  DefaultPaginationLimit,
	}
}

func (q *Query) With(field QueryField, val string) *Query {
	if val != "" {
		q.Values[field] = val
	}
	return q
}

// ApplyPagination parses page and limit from their text form. Values that are
// not positive integers fall back to the defaults. Limit has no upper bound.
func (q *Query) ApplyPagination(page, limit string) *Query {
	q.Page = parsePositive(page, DefaultPage)
	q.Limit = parsePositive(limit, DefaultPaginationLimit)
	return q
}

// Offset returns the index of the first item on the requested page.
func (q *Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Matches reports whether the product category satisfies the query filter.
func (q *Query) Matches(category string) bool {
	want, ok := q.Values[CategoryField]
	if !ok {
		return true
	}
	return strings.EqualFold(want, category)
}

func parsePositive(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
