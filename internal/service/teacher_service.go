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

type teacherRepository interface {
	ListActive(ctx context.Context) ([]models.Teacher, error)
	ListDeleted(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	SoftDelete(ctx context.Context, id, deletedBy string, at time.Time) error
	Restore(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}

// TeacherService covers the admin teacher screens and the teacher's own profile.
type TeacherService struct {
	repo      teacherRepository
	cache     cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
	active    lister[models.Teacher]
	deleted   lister[models.Teacher]
}

// NewTeacherService creates a TeacherService.
func NewTeacherService(repo teacherRepository, cache cacheInvalidator, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TeacherService{
		repo:      repo,
		cache:     cache,
		validator: validate,
		logger:    logger,
		active:    newLister("teachers", TeacherListFields(), metrics, logger),
		deleted:   newLister("deleted_teachers", DeletedTeacherListFields(), metrics, logger),
	}
}

// List returns one page of active teachers.
func (s *TeacherService) List(ctx context.Context, q listview.Query) (listview.Page[models.Teacher], error) {
	return s.active.page(ctx, q, s.repo.ListActive)
}

// ListDeleted returns one page of soft-deleted teachers.
func (s *TeacherService) ListDeleted(ctx context.Context, q listview.Query) (listview.Page[models.Teacher], error) {
	return s.deleted.page(ctx, q, s.repo.ListDeleted)
}

// Get returns a teacher, deleted or not.
func (s *TeacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch teacher")
	}
	return teacher, nil
}

// Update edits an active teacher.
func (s *TeacherService) Update(ctx context.Context, id string, req models.UpdateTeacherRequest) (*models.Teacher, error) {
	if err := s.validateUpdate(req); err != nil {
		return nil, err
	}
	teacher, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}
	applyTeacherUpdate(teacher, req)
	return s.save(ctx, teacher)
}

// SoftDelete hides an active teacher and records who did it.
func (s *TeacherService) SoftDelete(ctx context.Context, actorID, id string) error {
	if err := s.repo.SoftDelete(ctx, id, actorID, time.Now().UTC()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "active teacher not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teacher")
	}
	s.invalidateDashboard(ctx)
	return nil
}

// Restore brings a soft-deleted teacher back.
func (s *TeacherService) Restore(ctx context.Context, id string) (*models.Teacher, error) {
	if err := s.repo.Restore(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "deleted teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to restore teacher")
	}
	s.invalidateDashboard(ctx)
	return s.Get(ctx, id)
}

// HardDelete permanently removes a teacher that was soft-deleted first.
func (s *TeacherService) HardDelete(ctx context.Context, id string) error {
	teacher, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !teacher.Deleted() {
		return appErrors.Clone(appErrors.ErrConflict, "teacher must be soft-deleted first")
	}
	if err := s.repo.HardDelete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrConflict, "teacher must be soft-deleted first")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teacher")
	}
	s.invalidateDashboard(ctx)
	return nil
}

// Profile returns the signed-in teacher.
func (s *TeacherService) Profile(ctx context.Context, teacherID string) (*models.Teacher, error) {
	return s.getActive(ctx, teacherID)
}

// UpdateProfile lets a teacher edit their own profile including payout card and photo.
func (s *TeacherService) UpdateProfile(ctx context.Context, teacherID string, req models.UpdateTeacherProfileRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}
	if err := checkTeacherFields(req.UpdateTeacherRequest); err != nil {
		return nil, err
	}
	teacher, err := s.getActive(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	applyTeacherUpdate(teacher, req.UpdateTeacherRequest)
	if req.ImageURL != nil {
		teacher.ImageURL = trimmedOrNil(req.ImageURL)
	}
	if req.CardNumber != nil {
		teacher.CardNumber = trimmedOrNil(req.CardNumber)
	}
	return s.save(ctx, teacher)
}

func (s *TeacherService) validateUpdate(req models.UpdateTeacherRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	return checkTeacherFields(req)
}

// checkTeacherFields covers the rules struct tags cannot express.
func checkTeacherFields(req models.UpdateTeacherRequest) error {
	if req.HourPrice != nil && req.HourPrice.IsNegative() {
		return appErrors.Clone(appErrors.ErrValidation, "hour_price must not be negative")
	}
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "full_name must not be blank")
	}
	return nil
}

func (s *TeacherService) getActive(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if teacher.Deleted() {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return teacher, nil
}

func (s *TeacherService) save(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	if err := s.repo.Update(ctx, teacher); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update teacher")
	}
	return teacher, nil
}

func (s *TeacherService) invalidateDashboard(ctx context.Context) {
	invalidateDashboard(ctx, s.cache, s.logger)
}

func applyTeacherUpdate(t *models.Teacher, req models.UpdateTeacherRequest) {
	if req.FullName != nil {
		t.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.PhoneNumber != nil {
		t.PhoneNumber = trimmedOrNil(req.PhoneNumber)
	}
	if req.Description != nil {
		t.Description = trimmedOrNil(req.Description)
	}
	if req.Experience != nil {
		t.Experience = *req.Experience
	}
	if req.HourPrice != nil {
		t.HourPrice = *req.HourPrice
	}
	if req.Level != nil {
		t.Level = trimmedOrNil(req.Level)
	}
	if req.PortfolioLink != nil {
		t.PortfolioLink = trimmedOrNil(req.PortfolioLink)
	}
	if req.Specification != nil {
		t.Specification = trimmedOrNil(req.Specification)
	}
}

func invalidateDashboard(ctx context.Context, cache cacheInvalidator, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, DashboardCachePattern); err != nil {
		logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}
