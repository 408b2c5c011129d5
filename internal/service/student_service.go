package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
	"github.com/noah-isme/hmhy-admin-api/pkg/listview"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	SetBlocked(ctx context.Context, id string, blocked bool, reason *string, at time.Time) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (models.StudentStats, error)
}

// StudentService manages students registered through the bot.
type StudentService struct {
	repo      studentRepository
	cache     cacheInvalidator
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	list      lister[models.Student]
}

// NewStudentService creates a StudentService.
func NewStudentService(repo studentRepository, cache cacheInvalidator, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{
		repo:      repo,
		cache:     cache,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
		list:      newLister("students", StudentListFields(), metrics, logger),
	}
}

// List returns one page of students. The status filter accepts active or blocked.
func (s *StudentService) List(ctx context.Context, q listview.Query) (listview.Page[models.Student], error) {
	if status, ok := q.Filters["status"]; ok && status != "" {
		status = strings.ToLower(strings.TrimSpace(status))
		if status != models.StudentStatusActive && status != models.StudentStatusBlocked {
			return listview.Page[models.Student]{}, appErrors.Clone(appErrors.ErrValidation, "status must be active or blocked")
		}
	}
	return s.list.page(ctx, q, s.repo.List)
}

// Stats returns total, active and blocked counts.
func (s *StudentService) Stats(ctx context.Context) (models.StudentStats, error) {
	start := time.Now()
	stats, err := s.repo.Stats(ctx)
	s.metrics.ObserveDBQuery("student_stats", time.Since(start))
	if err != nil {
		return models.StudentStats{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student stats")
	}
	return stats, nil
}

// Get returns a student by id.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, studentErr(err, "failed to fetch student")
	}
	return student, nil
}

// Update edits the student's name and phone number.
func (s *StudentService) Update(ctx context.Context, id string, req models.UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		student.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		student.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.PhoneNumber != nil {
		student.PhoneNumber = trimmedOrNil(req.PhoneNumber)
	}
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, studentErr(err, "failed to update student")
	}
	return student, nil
}

// Block stops a student from booking lessons.
func (s *StudentService) Block(ctx context.Context, id string, req models.BlockStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid block payload")
	}
	return s.setBlocked(ctx, id, true, trimmedOrNil(req.Reason))
}

// Unblock lifts a block.
func (s *StudentService) Unblock(ctx context.Context, id string) (*models.Student, error) {
	return s.setBlocked(ctx, id, false, nil)
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return studentErr(err, "failed to delete student")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	return nil
}

func (s *StudentService) setBlocked(ctx context.Context, id string, blocked bool, reason *string) (*models.Student, error) {
	if err := s.repo.SetBlocked(ctx, id, blocked, reason, time.Now().UTC()); err != nil {
		return nil, studentErr(err, "failed to change student block state")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	return s.Get(ctx, id)
}

func studentErr(err error, message string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
