package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
	"github.com/noah-isme/hmhy-admin-api/pkg/listview"
)

type paymentRepository interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	StatusTotals(ctx context.Context) ([]models.PaymentStatusTotal, error)
}

// PaymentService serves the read-only payments screens and feeds payment reports.
type PaymentService struct {
	repo    paymentRepository
	metrics *MetricsService
	list    lister[models.Transaction]
}

// NewPaymentService creates a PaymentService.
func NewPaymentService(repo paymentRepository, metrics *MetricsService, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		repo:    repo,
		metrics: metrics,
		list:    newLister("transactions", TransactionListFields(), metrics, logger),
	}
}

// Stats sums completed revenue and counts transactions per status.
func (s *PaymentService) Stats(ctx context.Context) (*models.PaymentStats, error) {
	start := time.Now()
	totals, err := s.repo.StatusTotals(ctx)
	s.metrics.ObserveDBQuery("payment_totals", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payment totals")
	}
	stats := summarizePayments(totals)
	return &stats, nil
}

// Transactions returns one page of transactions.
func (s *PaymentService) Transactions(ctx context.Context, q listview.Query) (listview.Page[models.Transaction], error) {
	return s.list.page(ctx, q, s.repo.ListTransactions)
}

// ReportTransactions returns every transaction selected by a report request, sorted the way the
// transactions screen would sort it.
func (s *PaymentService) ReportTransactions(ctx context.Context, req models.PaymentReportRequest) ([]models.Transaction, error) {
	start := time.Now()
	records, err := s.repo.ListTransactions(ctx)
	s.metrics.ObserveDBQuery("transactions_report", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load transactions")
	}
	return s.list.all(records, ReportQuery(req))
}

// ReportQuery maps a report request onto a list query. Default order is newest first.
func ReportQuery(req models.PaymentReportRequest) listview.Query {
	q := listview.NewQuery(1).WithSearch(strings.TrimSpace(req.Search))
	sortKey := req.Sort
	if sortKey == "" {
		sortKey = "date"
	}
	order := listview.Descending
	if req.Order != "" {
		order = listview.ParseDirection(req.Order)
	}
	q = q.WithSort(sortKey, order)
	if req.Status != "" {
		q = q.WithFilter("status", string(req.Status))
	}
	if provider := strings.TrimSpace(req.Provider); provider != "" {
		q = q.WithFilter("provider", provider)
	}
	return q
}

func summarizePayments(totals []models.PaymentStatusTotal) models.PaymentStats {
	stats := models.PaymentStats{TotalRevenue: decimal.Zero}
	for _, t := range totals {
		stats.TotalCount += t.Count
		switch t.Status {
		case models.PaymentCompleted:
			stats.CompletedCount += t.Count
			stats.TotalRevenue = stats.TotalRevenue.Add(t.Amount)
		case models.PaymentPending:
			stats.PendingCount += t.Count
		case models.PaymentCancelled:
			stats.CancelledCount += t.Count
		case models.PaymentFailed:
			stats.FailedCount += t.Count
		}
	}
	return stats
}
