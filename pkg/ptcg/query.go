package ptcg

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents the query-string parameters accepted by collection
// endpoints. A nil *QueryParams means "no query string".
//
// Parameters are passed per call; no filter state is retained between calls,
// so one client may serve concurrent collection fetches.
type QueryParams struct {
	// Q is the upstream search expression, e.g. `name:charizard set.id:base1`.
	Q string

	// Page selects a single result page. Zero means "let the engine decide".
	Page int

	// PageSize bounds the number of results per page.
	PageSize int

	// OrderBy sorts results, e.g. "-releaseDate" or "name".
	OrderBy string

	// Select names the fields the upstream should return.
	Select []string

	// Filters holds additional raw query parameters.
	Filters map[string][]string
}

// NewQueryParams creates an empty QueryParams ready for the With* builders.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithQ sets the search expression.
func (q *QueryParams) WithQ(query string) *QueryParams {
	q.Q = query

	return q
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithPageSize sets the page size.
func (q *QueryParams) WithPageSize(size int) *QueryParams {
	q.PageSize = size

	return q
}

// WithOrderBy sets the sort order.
func (q *QueryParams) WithOrderBy(orderBy string) *QueryParams {
	q.OrderBy = orderBy

	return q
}

// WithSelect appends field names to the select list.
func (q *QueryParams) WithSelect(fields ...string) *QueryParams {
	q.Select = append(q.Select, fields...)

	return q
}

// WithFilter appends values to a raw query parameter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the parameters to url.Values for the transport layer.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Q != "" {
		values.Set("q", q.Q)
	}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	if q.OrderBy != "" {
		values.Set("orderBy", q.OrderBy)
	}

	if len(q.Select) > 0 {
		values.Set("select", strings.Join(q.Select, ","))
	}

	for key, vals := range q.Filters {
		if len(vals) > 0 {
			values.Set(key, strings.Join(vals, ","))
		}
	}

	return values
}

// Clone returns a copy so the engine can adjust paging without mutating the
// caller's params.
func (q *QueryParams) Clone() *QueryParams {
	if q == nil {
		return NewQueryParams()
	}

	clone := *q
	clone.Select = append([]string(nil), q.Select...)
	clone.Filters = make(map[string][]string, len(q.Filters))

	for key, vals := range q.Filters {
		clone.Filters[key] = append([]string(nil), vals...)
	}

	return &clone
}
