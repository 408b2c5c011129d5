package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
	"github.com/noah-isme/hmhy-admin-api/pkg/listview"
)

// lister loads a screen's candidate set and hands it to listview.Compute.
type lister[T any] struct {
	name    string
	fields  *listview.Fields[T]
	metrics *MetricsService
	logger  *zap.Logger
}

func newLister[T any](name string, fields *listview.Fields[T], metrics *MetricsService, logger *zap.Logger) lister[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return lister[T]{name: name, fields: fields, metrics: metrics, logger: logger}
}

func (l lister[T]) page(ctx context.Context, q listview.Query, load func(context.Context) ([]T, error)) (listview.Page[T], error) {
	start := time.Now()
	records, err := load(ctx)
	l.metrics.ObserveDBQuery(l.name+"_list", time.Since(start))
	if err != nil {
		return listview.Page[T]{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+l.name)
	}
	return l.compute(records, q)
}

func (l lister[T]) compute(records []T, q listview.Query) (listview.Page[T], error) {
	page, err := listview.Compute(records, q, l.fields)
	if err != nil {
		return listview.Page[T]{}, err
	}
	if q.SortKey != "" && page.SortKey == "" {
		l.logger.Warn("unknown sort key ignored",
			zap.String("list", l.name),
			zap.String("sort", q.SortKey),
			zap.Strings("allowed", l.fields.Names()),
		)
	}
	return page, nil
}

// all returns every record matching q's search and filters in sorted order.
func (l lister[T]) all(records []T, q listview.Query) ([]T, error) {
	q.Page = 1
	q.PageSize = len(records)
	if q.PageSize == 0 {
		q.PageSize = 1
	}
	page, err := l.compute(records, q)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
