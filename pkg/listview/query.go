package listview

import "strings"

// Direction is the sort order applied on top of the ascending comparison.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts asc/desc in any case and defaults to Ascending.
func ParseDirection(raw string) Direction {
	if strings.EqualFold(strings.TrimSpace(raw), string(Descending)) {
		return Descending
	}
	return Ascending
}

// Query holds the user-controlled parameters of a list screen.
type Query struct {
	SearchText    string
	SortKey       string
	SortDirection Direction
	Page          int
	PageSize      int
	Filters       map[string]string
}

// NewQuery returns the first page with the given size and no search, sort or filters.
func NewQuery(pageSize int) Query {
	return Query{Page: 1, PageSize: pageSize, SortDirection: Ascending}
}

// WithSearch replaces the search text and returns to the first page.
func (q Query) WithSearch(text string) Query {
	q.SearchText = text
	q.Page = 1
	return q
}

// WithSort replaces the sort key and direction and returns to the first page.
func (q Query) WithSort(key string, dir Direction) Query {
	q.SortKey = key
	q.SortDirection = dir
	q.Page = 1
	return q
}

// WithFilter sets (or, with an empty value, clears) an equality filter and returns to the first page.
func (q Query) WithFilter(name, value string) Query {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	if value == "" {
		delete(filters, name)
	} else {
		filters[name] = value
	}
	q.Filters = filters
	q.Page = 1
	return q
}

// WithPage moves to another page keeping everything else.
func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}
