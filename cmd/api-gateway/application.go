package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/hmhy-admin-api/internal/handler"
	"github.com/noah-isme/hmhy-admin-api/internal/repository"
	"github.com/noah-isme/hmhy-admin-api/internal/service"
	"github.com/noah-isme/hmhy-admin-api/pkg/config"
	"github.com/noah-isme/hmhy-admin-api/pkg/jobs"
	"github.com/noah-isme/hmhy-admin-api/pkg/storage"
)

const (
	cacheKeyPrefix = "hmhy:"
	otpKeyPrefix   = "hmhy:otp:"
)

type application struct {
	metrics  *service.MetricsService
	sessions *repository.SessionRepository
	auth     *service.AuthService

	authHandler      *handler.AuthHandler
	adminHandler     *handler.AdminHandler
	teacherHandler   *handler.TeacherHandler
	studentHandler   *handler.StudentHandler
	lessonHandler    *handler.LessonHandler
	paymentHandler   *handler.PaymentHandler
	reportHandler    *handler.ReportHandler
	dashboardHandler *handler.DashboardHandler
	profileHandler   *handler.ProfileHandler
	metricsHandler   *handler.MetricsHandler

	reportQueue *jobs.Queue
}

func newApplication(ctx context.Context, cfg *config.Config, db *sqlx.DB, rdb *redis.Client, logger *zap.Logger) (*application, error) {
	validate := validator.New()
	metrics := service.NewMetricsService()
	lists := handler.NewListQueryParser(cfg.Listing)

	adminRepo := repository.NewAdminRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	cacheSvc := service.NewCacheService(
		repository.NewCacheRepository(rdb, cacheKeyPrefix),
		metrics,
		cfg.Dashboard.CacheTTL,
		logger,
		cfg.Dashboard.CacheEnabled,
	)

	authSvc := service.NewAuthService(adminRepo, teacherRepo, sessionRepo, validate, logger, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	otpSvc := service.NewOTPService(
		repository.NewOTPRepository(rdb, otpKeyPrefix),
		teacherRepo,
		sessionRepo,
		service.NewLogNotifier(logger),
		validate,
		logger,
		service.OTPConfig{TTL: cfg.OTP.TTL, Length: cfg.OTP.Length, MaxAttempts: cfg.OTP.MaxAttempts},
	)

	adminSvc := service.NewAdminService(adminRepo, validate, metrics, logger)
	teacherSvc := service.NewTeacherService(teacherRepo, cacheSvc, validate, metrics, logger)
	studentSvc := service.NewStudentService(studentRepo, cacheSvc, validate, metrics, logger)
	lessonSvc := service.NewLessonService(lessonRepo, teacherRepo, metrics, logger)
	paymentSvc := service.NewPaymentService(paymentRepo, metrics, logger)
	dashboardSvc := service.NewDashboardService(service.DashboardSources{
		Teachers: teacherRepo,
		Students: studentRepo,
		Lessons:  lessonRepo,
		Payments: paymentRepo,
	}, cacheSvc, cfg.Dashboard.CacheTTL, metrics, logger)

	app := &application{
		metrics:          metrics,
		sessions:         sessionRepo,
		auth:             authSvc,
		authHandler:      handler.NewAuthHandler(authSvc, otpSvc),
		adminHandler:     handler.NewAdminHandler(adminSvc, lists),
		teacherHandler:   handler.NewTeacherHandler(teacherSvc, lists),
		studentHandler:   handler.NewStudentHandler(studentSvc, lists),
		lessonHandler:    handler.NewLessonHandler(lessonSvc, lists),
		paymentHandler:   handler.NewPaymentHandler(paymentSvc, lists),
		dashboardHandler: handler.NewDashboardHandler(dashboardSvc),
		profileHandler:   handler.NewProfileHandler(adminSvc, teacherSvc),
		metricsHandler: handler.NewMetricsHandler(metrics, map[string]handler.Pinger{
			"postgres": handler.PingFunc(db.PingContext),
			"redis": handler.PingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}),
		}),
	}

	if !cfg.Reports.Enabled {
		app.reportHandler = handler.NewReportHandler(nil)
		return app, nil
	}

	reportSvc, queue, err := newReportStack(ctx, cfg, db, paymentSvc, validate, metrics, logger)
	if err != nil {
		return nil, err
	}
	app.reportHandler = handler.NewReportHandler(reportSvc)
	app.reportQueue = queue
	return app, nil
}

func newReportStack(ctx context.Context, cfg *config.Config, db *sqlx.DB, payments *service.PaymentService, validate *validator.Validate, metrics *service.MetricsService, logger *zap.Logger) (*service.ReportService, *jobs.Queue, error) {
	rc := cfg.Reports
	files, err := storage.NewLocalStorage(rc.StorageDir)
	if err != nil {
		return nil, nil, fmt.Errorf("init report storage: %w", err)
	}
	signer := storage.NewSignedURLSigner(rc.SignedURLSecret, rc.SignedURLTTL)
	exporter := service.NewExportService(payments, files, signer, service.ExportConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: rc.SignedURLTTL,
	}, logger, nil, nil)

	reportRepo := repository.NewReportRepository(db)
	worker := service.NewReportWorker(reportRepo, exporter, rc.WorkerRetries, metrics, logger)
	queue := jobs.NewQueue(service.ReportJobType, worker.Handle, jobs.QueueConfig{
		Workers:     rc.WorkerConcurrency,
		MaxAttempts: rc.WorkerRetries,
		Logger:      logger,
	})
	queue.Start(ctx)

	reportSvc := service.NewReportService(reportRepo, queue, exporter, validate, metrics, logger, service.ReportServiceConfig{
		ResultTTL:       rc.SignedURLTTL,
		CleanupInterval: rc.CleanupInterval,
	})
	reportSvc.RecoverPendingJobs(ctx)
	reportSvc.StartCleanup(ctx)
	return reportSvc, queue, nil
}

// Close stops background workers.
func (a *application) Close() {
	if a.reportQueue != nil {
		a.reportQueue.Stop()
	}
}
