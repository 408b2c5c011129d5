package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
	"github.com/noah-isme/hmhy-admin-api/pkg/listview"
)

type adminRepository interface {
	List(ctx context.Context) ([]models.Admin, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	ExistsByUsername(ctx context.Context, username, excludeID string) (bool, error)
	Create(ctx context.Context, admin *models.Admin) error
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id string) error
}

// AdminService manages admin accounts and the admin profile screen.
type AdminService struct {
	repo      adminRepository
	validator *validator.Validate
	logger    *zap.Logger
	list      lister[models.Admin]
}

// NewAdminService creates an AdminService.
func NewAdminService(repo adminRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AdminService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		list:      newLister("admins", AdminListFields(), metrics, logger),
	}
}

// List returns one page of admins.
func (s *AdminService) List(ctx context.Context, q listview.Query) (listview.Page[models.Admin], error) {
	return s.list.page(ctx, q, s.repo.List)
}

// Get returns an admin by id.
func (s *AdminService) Get(ctx context.Context, id string) (*models.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "admin not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch admin")
	}
	return admin, nil
}

// Create adds an ADMIN account. Superadmins are promoted through Update.
func (s *AdminService) Create(ctx context.Context, req models.CreateAdminRequest) (*models.Admin, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid admin payload")
	}
	username := strings.TrimSpace(req.Username)
	if err := s.ensureUniqueUsername(ctx, username, ""); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	admin := &models.Admin{
		Username:     username,
		PhoneNumber:  trimmedOrNil(req.PhoneNumber),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Active:       true,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create admin")
	}
	s.logger.Info("admin created", zap.String("admin_id", admin.ID))
	return admin, nil
}

// Update changes username, phone number and role.
func (s *AdminService) Update(ctx context.Context, id string, req models.UpdateAdminRequest) (*models.Admin, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid admin payload")
	}
	admin, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyProfile(ctx, admin, req.Username, req.PhoneNumber); err != nil {
		return nil, err
	}
	if req.Role != nil {
		admin.Role = *req.Role
	}
	return s.save(ctx, admin)
}

// Delete removes an admin permanently. Nobody can delete their own account.
func (s *AdminService) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return appErrors.Clone(appErrors.ErrForbidden, "cannot delete your own account")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "admin not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete admin")
	}
	return nil
}

// Profile returns the acting admin's account.
func (s *AdminService) Profile(ctx context.Context, adminID string) (*models.Admin, error) {
	return s.Get(ctx, adminID)
}

// UpdateProfile changes the acting admin's username and phone number.
func (s *AdminService) UpdateProfile(ctx context.Context, adminID string, req models.UpdateProfileRequest) (*models.Admin, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}
	admin, err := s.Get(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if err := s.applyProfile(ctx, admin, req.Username, req.PhoneNumber); err != nil {
		return nil, err
	}
	return s.save(ctx, admin)
}

func (s *AdminService) applyProfile(ctx context.Context, admin *models.Admin, username, phone *string) error {
	if username != nil {
		trimmed := strings.TrimSpace(*username)
		if !strings.EqualFold(trimmed, admin.Username) {
			if err := s.ensureUniqueUsername(ctx, trimmed, admin.ID); err != nil {
				return err
			}
		}
		admin.Username = trimmed
	}
	if phone != nil {
		admin.PhoneNumber = trimmedOrNil(phone)
	}
	return nil
}

func (s *AdminService) save(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	if err := s.repo.Update(ctx, admin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "admin not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update admin")
	}
	return admin, nil
}

func (s *AdminService) ensureUniqueUsername(ctx context.Context, username, excludeID string) error {
	exists, err := s.repo.ExistsByUsername(ctx, username, excludeID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check username")
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "username already taken")
	}
	return nil
}

// trimmedOrNil turns blank optional strings into NULL.
func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
