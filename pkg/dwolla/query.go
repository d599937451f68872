package dwolla

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents the query parameters accepted by list
// endpoints. Not every endpoint honors every field; unknown parameters
// are ignored by the API.
type QueryParams struct {
	// Limit caps the page size. Zero uses the server default of 25.
	Limit int

	// Offset skips results for pagination.
	Offset int

	// Search matches against customer names and business names.
	Search string

	// Status restricts results to a single status.
	Status string

	// Email matches customers by exact email address.
	Email string

	// StartDate and EndDate bound results by creation date, formatted
	// as YYYY-MM-DD.
	StartDate string
	EndDate   string

	// Removed controls whether removed funding sources appear in
	// listings. Nil keeps the server default, which includes them.
	Removed *bool

	// Filters carries endpoint-specific parameters not covered by the
	// fields above. Multiple values are comma-joined.
	Filters map[string][]string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// ToValues converts the parameters to URL query values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	if q.Search != "" {
		values.Set("search", q.Search)
	}

	if q.Status != "" {
		values.Set("status", q.Status)
	}

	if q.Email != "" {
		values.Set("email", q.Email)
	}

	if q.StartDate != "" {
		values.Set("startDate", q.StartDate)
	}

	if q.EndDate != "" {
		values.Set("endDate", q.EndDate)
	}

	if q.Removed != nil {
		values.Set("removed", strconv.FormatBool(*q.Removed))
	}

	for key, vals := range q.Filters {
		values.Set(key, strings.Join(vals, ","))
	}

	return values
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithOffset sets the pagination offset.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = offset

	return q
}

// WithSearch sets the search term.
func (q *QueryParams) WithSearch(search string) *QueryParams {
	q.Search = search

	return q
}

// WithStatus restricts results to a single status.
func (q *QueryParams) WithStatus(status string) *QueryParams {
	q.Status = status

	return q
}

// WithEmail matches customers by exact email address.
func (q *QueryParams) WithEmail(email string) *QueryParams {
	q.Email = email

	return q
}

// WithDateRange bounds results by creation date (YYYY-MM-DD).
func (q *QueryParams) WithDateRange(startDate, endDate string) *QueryParams {
	q.StartDate = startDate
	q.EndDate = endDate

	return q
}

// WithRemoved controls whether removed funding sources appear.
func (q *QueryParams) WithRemoved(removed bool) *QueryParams {
	q.Removed = &removed

	return q
}

// WithFilter adds an endpoint-specific parameter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = values

	return q
}
