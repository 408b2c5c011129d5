package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hmhy-admin-api/pkg/config"
	"github.com/noah-isme/hmhy-admin-api/pkg/listview"
)

// ListSpec describes the query parameters one list endpoint understands.
type ListSpec struct {
	DefaultSort  string
	DefaultOrder listview.Direction
	Filters      []string
}

// ListQueryParser turns search, sort, order, page, limit and filter parameters into a listview.Query.
type ListQueryParser struct {
	defaultSize int
	maxSize     int
}

// NewListQueryParser constructs a parser bounded by cfg.
func NewListQueryParser(cfg config.ListingConfig) ListQueryParser {
	p := ListQueryParser{defaultSize: cfg.DefaultPageSize, maxSize: cfg.MaxPageSize}
	if p.maxSize <= 0 {
		p.maxSize = 100
	}
	if p.defaultSize <= 0 || p.defaultSize > p.maxSize {
		p.defaultSize = min(10, p.maxSize)
	}
	return p
}

// Parse reads the list parameters of c. A missing or invalid page means 1; limit is clamped to the
// configured maximum.
func (p ListQueryParser) Parse(c *gin.Context, spec ListSpec) listview.Query {
	size := positiveInt(c.Query("limit"), p.defaultSize)
	if size > p.maxSize {
		size = p.maxSize
	}

	q := listview.NewQuery(size).WithSearch(strings.TrimSpace(c.Query("search")))

	sortKey := strings.TrimSpace(c.Query("sort"))
	order := spec.DefaultOrder
	if sortKey == "" {
		sortKey = spec.DefaultSort
	}
	if raw := c.Query("order"); raw != "" {
		order = listview.ParseDirection(raw)
	}
	if order == "" {
		order = listview.Ascending
	}
	if sortKey != "" {
		q = q.WithSort(sortKey, order)
	}

	for _, name := range spec.Filters {
		if value := strings.TrimSpace(c.Query(name)); value != "" {
			q = q.WithFilter(name, value)
		}
	}
	return q.WithPage(positiveInt(c.Query("page"), 1))
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
