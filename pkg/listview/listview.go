// Package listview turns an in-memory record collection and a list query into one render-ready page:
// search, equality filters, stable sort and pagination.
package listview

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"

	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
)

// Page is the computed slice of records plus the metadata pager controls need.
type Page[T any] struct {
	Items         []T
	TotalItems    int
	TotalPages    int
	CurrentPage   int
	PageSize      int
	RangeStart    int
	RangeEnd      int
	HasPrevious   bool
	HasNext       bool
	SortKey       string
	SortDirection Direction
}

// Meta is the pagination block serialised next to list payloads.
type Meta struct {
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
	TotalItems  int    `json:"total_items"`
	TotalPages  int    `json:"total_pages"`
	RangeStart  int    `json:"range_start"`
	RangeEnd    int    `json:"range_end"`
	HasPrevious bool   `json:"has_previous"`
	HasNext     bool   `json:"has_next"`
	Sort        string `json:"sort,omitempty"`
	Order       string `json:"order,omitempty"`
}

// Meta returns the pagination metadata of the page.
func (p Page[T]) Meta() *Meta {
	meta := &Meta{
		Page:        p.CurrentPage,
		PageSize:    p.PageSize,
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		RangeStart:  p.RangeStart,
		RangeEnd:    p.RangeEnd,
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
		Sort:        p.SortKey,
	}
	if p.SortKey != "" {
		meta.Order = string(p.SortDirection)
	}
	return meta
}

// Compute applies q to records. It never mutates records and keeps no state, so it can be
// called on every request or keystroke from any goroutine.
//
// An unknown or empty sort key keeps input order and leaves Page.SortKey empty.
func Compute[T any](records []T, q Query, fields *Fields[T]) (Page[T], error) {
	if q.PageSize <= 0 {
		return Page[T]{}, appErrors.Clone(appErrors.ErrInvalidArgument, "page size must be positive")
	}
	if q.Page < 1 {
		return Page[T]{}, appErrors.Clone(appErrors.ErrInvalidArgument, "page must be a positive integer")
	}
	if fields == nil {
		fields = NewFields[T]()
	}

	filtered := filterRecords(records, q, fields)
	sortKey := sortRecords(filtered, q, fields)

	total := len(filtered)
	totalPages := (total + q.PageSize - 1) / q.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	current := q.Page
	if current > totalPages {
		current = totalPages
	}

	start := (current - 1) * q.PageSize
	end := start + q.PageSize
	if end > total {
		end = total
	}

	page := Page[T]{
		Items:         filtered[start:end:end],
		TotalItems:    total,
		TotalPages:    totalPages,
		CurrentPage:   current,
		PageSize:      q.PageSize,
		HasPrevious:   current > 1,
		HasNext:       current < totalPages,
		SortKey:       sortKey,
		SortDirection: ParseDirection(string(q.SortDirection)),
	}
	if total > 0 {
		page.RangeStart = start + 1
		page.RangeEnd = end
	}
	return page, nil
}

func filterRecords[T any](records []T, q Query, fields *Fields[T]) []T {
	fold := cases.Fold()
	needle := fold.String(q.SearchText)

	checks := make([]filterCheck[T], 0, len(q.Filters))
	for name, value := range q.Filters {
		access, ok := fields.accessors[name]
		if !ok || value == "" {
			continue
		}
		checks = append(checks, filterCheck[T]{access: access, want: fold.String(value)})
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if matchesFilters(rec, checks, fold) && matchesSearch(rec, needle, fields, fold) {
			out = append(out, rec)
		}
	}
	return out
}

type filterCheck[T any] struct {
	access Accessor[T]
	want   string
}

func matchesFilters[T any](rec T, checks []filterCheck[T], fold cases.Caser) bool {
	for _, c := range checks {
		if fold.String(c.access(rec).String()) != c.want {
			return false
		}
	}
	return true
}

func matchesSearch[T any](rec T, needle string, fields *Fields[T], fold cases.Caser) bool {
	if needle == "" {
		return true
	}
	for _, name := range fields.searchable {
		v := fields.accessors[name](rec)
		if v.Kind() == KindEmpty {
			continue
		}
		if strings.Contains(fold.String(v.String()), needle) {
			return true
		}
	}
	return false
}

type keyedRecord[T any] struct {
	rec T
	key Value
}

// sortRecords sorts in place and returns the applied key, or "" when input order was kept.
func sortRecords[T any](records []T, q Query, fields *Fields[T]) string {
	access, ok := fields.accessors[q.SortKey]
	if !ok || q.SortKey == "" {
		return ""
	}

	decorated := make([]keyedRecord[T], len(records))
	for i, rec := range records {
		decorated[i] = keyedRecord[T]{rec: rec, key: access(rec)}
	}

	coll := collate.New(fields.locale)
	desc := ParseDirection(string(q.SortDirection)) == Descending
	slices.SortStableFunc(decorated, func(a, b keyedRecord[T]) int {
		c := compare(a.key, b.key, coll)
		if desc {
			return -c
		}
		return c
	})

	for i := range decorated {
		records[i] = decorated[i].rec
	}
	return q.SortKey
}
