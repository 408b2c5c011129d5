package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
	"github.com/noah-isme/hmhy-admin-api/pkg/listview"
)

type lessonRepository interface {
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Lesson, error)
}

type teacherFinder interface {
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
}

// LessonService lists a teacher's lessons.
type LessonService struct {
	repo     lessonRepository
	teachers teacherFinder
	list     lister[models.Lesson]
}

// NewLessonService creates a LessonService.
func NewLessonService(repo lessonRepository, teachers teacherFinder, metrics *MetricsService, logger *zap.Logger) *LessonService {
	return &LessonService{
		repo:     repo,
		teachers: teachers,
		list:     newLister("lessons", LessonListFields(), metrics, logger),
	}
}

// ListForTeacher returns one page of the teacher's lessons.
func (s *LessonService) ListForTeacher(ctx context.Context, teacherID string, q listview.Query) (listview.Page[models.Lesson], error) {
	if status, ok := q.Filters["status"]; ok && status != "" && !validLessonStatus(status) {
		return listview.Page[models.Lesson]{}, appErrors.Clone(appErrors.ErrValidation, "unknown lesson status")
	}
	if s.teachers != nil {
		if _, err := s.teachers.FindByID(ctx, teacherID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return listview.Page[models.Lesson]{}, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
			}
			return listview.Page[models.Lesson]{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch teacher")
		}
	}
	return s.list.page(ctx, q, func(ctx context.Context) ([]models.Lesson, error) {
		return s.repo.ListByTeacher(ctx, teacherID)
	})
}

func validLessonStatus(raw string) bool {
	for _, status := range models.LessonStatuses {
		if strings.EqualFold(string(status), strings.TrimSpace(raw)) {
			return true
		}
	}
	return false
}
