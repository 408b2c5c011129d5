package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"database/sql"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
	"github.com/noah-isme/hmhy-admin-api/internal/repository"
	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
)

type otpStore interface {
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (*repository.OTPEntry, error)
	IncrementAttempts(ctx context.Context, email string) (int, error)
	Delete(ctx context.Context, email string) error
}

type otpTeacherStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Teacher, error)
	MarkEmailVerified(ctx context.Context, id string) error
}

// Notifier delivers verification codes to teachers.
type Notifier interface {
	SendOTP(ctx context.Context, email, code string, ttl time.Duration) error
}

// LogNotifier writes codes to the log. Codes are only logged at debug level.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier constructs a LogNotifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// SendOTP implements Notifier.
func (n *LogNotifier) SendOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	n.logger.Info("verification code issued", zap.String("email", email), zap.Duration("ttl", ttl))
	n.logger.Debug("verification code", zap.String("email", email), zap.String("code", code))
	return nil
}

// OTPConfig tunes code generation and verification.
type OTPConfig struct {
	TTL         time.Duration
	Length      int
	MaxAttempts int
}

// OTPService issues and verifies teacher email verification codes.
type OTPService struct {
	store     otpStore
	teachers  otpTeacherStore
	audit     auditRecorder
	notifier  Notifier
	validator *validator.Validate
	logger    *zap.Logger
	cfg       OTPConfig
}

// NewOTPService constructs an OTPService.
func NewOTPService(store otpStore, teachers otpTeacherStore, audit auditRecorder, notifier Notifier, validate *validator.Validate, logger *zap.Logger, cfg OTPConfig) *OTPService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.Length <= 0 {
		cfg.Length = 6
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &OTPService{store: store, teachers: teachers, audit: audit, notifier: notifier, validator: validate, logger: logger, cfg: cfg}
}

// Send issues a new code. Unknown or deleted accounts get no code but the same nil result.
func (s *OTPService) Send(ctx context.Context, req models.SendOTPRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid otp payload")
	}
	email := normalizeEmail(req.Email)

	teacher, err := s.teachers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Info("otp requested for unknown email", zap.String("email", email))
			return nil
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch teacher")
	}
	if teacher.Deleted() {
		s.logger.Info("otp requested for deleted teacher", zap.String("teacher_id", teacher.ID))
		return nil
	}

	code, err := generateNumericCode(s.cfg.Length)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate code")
	}
	if err := s.store.Save(ctx, email, code, s.cfg.TTL); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store code")
	}
	if err := s.notifier.SendOTP(ctx, email, code, s.cfg.TTL); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to deliver code")
	}
	return nil
}

// Verify checks a code, consuming it on success and marking the teacher's email verified.
func (s *OTPService) Verify(ctx context.Context, req models.VerifyOTPRequest, meta models.RequestMeta) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid otp payload")
	}
	email := normalizeEmail(req.Email)

	entry, err := s.store.Get(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrOTPNotFound) {
			return appErrors.ErrInvalidOTP
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load code")
	}
	if entry.Attempts >= s.cfg.MaxAttempts {
		s.discard(ctx, email)
		return appErrors.ErrTooManyAttempts
	}

	if subtle.ConstantTimeCompare([]byte(entry.Code), []byte(strings.TrimSpace(req.Code))) != 1 {
		attempts, err := s.store.IncrementAttempts(ctx, email)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record attempt")
		}
		if attempts >= s.cfg.MaxAttempts {
			s.discard(ctx, email)
			return appErrors.ErrTooManyAttempts
		}
		return appErrors.ErrInvalidOTP
	}
	s.discard(ctx, email)

	teacher, err := s.teachers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrInvalidOTP
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch teacher")
	}
	if err := s.teachers.MarkEmailVerified(ctx, teacher.ID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark email verified")
	}

	role := models.RoleTeacher
	if s.audit != nil {
		if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
			UserID:     &teacher.ID,
			Role:       &role,
			Action:     models.AuditActionEmailVerified,
			Resource:   "teachers",
			ResourceID: &teacher.ID,
			IPAddress:  meta.IP,
			UserAgent:  meta.UserAgent,
		}); err != nil {
			s.logger.Warn("failed to record email verification audit log", zap.Error(err))
		}
	}
	return nil
}

func (s *OTPService) discard(ctx context.Context, email string) {
	if err := s.store.Delete(ctx, email); err != nil {
		s.logger.Warn("failed to delete otp", zap.String("email", email), zap.Error(err))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateNumericCode(length int) (string, error) {
	var b strings.Builder
	b.Grow(length)
	ten := big.NewInt(10)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}
