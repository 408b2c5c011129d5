package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
	"github.com/noah-isme/hmhy-admin-api/internal/repository"
	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
)

type teacherCounter interface {
	Counts(ctx context.Context) (repository.TeacherCounts, error)
}

type studentStatsSource interface {
	Stats(ctx context.Context) (models.StudentStats, error)
}

type lessonCounter interface {
	CountByStatus(ctx context.Context) (map[models.LessonStatus]int, error)
}

type paymentTotalsSource interface {
	StatusTotals(ctx context.Context) ([]models.PaymentStatusTotal, error)
}

type dashboardCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// DashboardSources groups the counters the dashboard aggregates.
type DashboardSources struct {
	Teachers teacherCounter
	Students studentStatsSource
	Lessons  lessonCounter
	Payments paymentTotalsSource
}

// DashboardService composes the admin dashboard counters.
type DashboardService struct {
	src     DashboardSources
	cache   dashboardCache
	ttl     time.Duration
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// NewDashboardService creates a DashboardService. cache may be nil.
func NewDashboardService(src DashboardSources, cache dashboardCache, ttl time.Duration, metrics *MetricsService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{src: src, cache: cache, ttl: ttl, metrics: metrics, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// Summary returns the dashboard counters and whether they came from cache.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, bool, error) {
	if s.cache != nil {
		var cached models.DashboardSummary
		hit, err := s.cache.Get(ctx, dashboardSummaryKey, &cached)
		if err != nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
		if hit {
			return &cached, true, nil
		}
	}

	start := time.Now()
	summary, err := s.compute(ctx)
	s.metrics.ObserveDBQuery("dashboard_summary", time.Since(start))
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, dashboardSummaryKey, summary, s.ttl); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return summary, false, nil
}

func (s *DashboardService) compute(ctx context.Context) (*models.DashboardSummary, error) {
	teachers, err := s.src.Teachers.Counts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count teachers")
	}
	students, err := s.src.Students.Stats(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count students")
	}
	lessons, err := s.src.Lessons.CountByStatus(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count lessons")
	}
	totals, err := s.src.Payments.StatusTotals(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sum payments")
	}

	return &models.DashboardSummary{
		ActiveTeachers:  teachers.Active,
		DeletedTeachers: teachers.Deleted,
		Students:        students,
		Lessons:         lessons,
		TotalRevenue:    summarizePayments(totals).TotalRevenue,
		GeneratedAt:     s.now(),
	}, nil
}
