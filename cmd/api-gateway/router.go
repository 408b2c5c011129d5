package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/hmhy-admin-api/internal/middleware"
	"github.com/noah-isme/hmhy-admin-api/internal/models"
	"github.com/noah-isme/hmhy-admin-api/pkg/config"
	"github.com/noah-isme/hmhy-admin-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/hmhy-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/hmhy-admin-api/pkg/middleware/requestid"
)

func newRouter(cfg *config.Config, app *application, logr *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(app.metrics))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", app.metricsHandler.Health)
	r.GET("/metrics", app.metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	audit := func(action, resource string) gin.HandlerFunc {
		return middleware.Audit(app.sessions, logr, action, resource)
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/admin/login", app.authHandler.AdminLogin)
	auth.POST("/teacher/login", app.authHandler.TeacherLogin)
	auth.POST("/teacher/otp/send", app.authHandler.SendOTP)
	auth.POST("/teacher/otp/verify", app.authHandler.VerifyOTP)
	auth.POST("/refresh", app.authHandler.Refresh)

	// The signed token authorises the download on its own.
	api.GET("/payments/reports/download", app.reportHandler.Download)

	secured := api.Group("")
	secured.Use(middleware.JWT(app.auth))

	secured.POST("/auth/logout", app.authHandler.Logout)
	secured.POST("/auth/change-password", app.authHandler.ChangePassword)
	secured.GET("/auth/me", app.authHandler.Me)

	admins := secured.Group("/admins", middleware.RequireRoles(models.RoleSuperAdmin))
	admins.GET("", app.adminHandler.List)
	admins.GET("/:id", app.adminHandler.Get)
	admins.POST("", audit(models.AuditActionCreate, "admins"), app.adminHandler.Create)
	admins.PUT("/:id", audit(models.AuditActionUpdate, "admins"), app.adminHandler.Update)
	admins.DELETE("/:id", audit(models.AuditActionDelete, "admins"), app.adminHandler.Delete)

	teachers := secured.Group("/teachers", middleware.RequireAdmin())
	teachers.GET("", app.teacherHandler.List)
	teachers.GET("/deleted", app.teacherHandler.ListDeleted)
	teachers.GET("/:id", app.teacherHandler.Get)
	teachers.GET("/:id/lessons", app.lessonHandler.TeacherLessons)
	teachers.PUT("/:id", audit(models.AuditActionUpdate, "teachers"), app.teacherHandler.Update)
	teachers.DELETE("/:id", audit(models.AuditActionDelete, "teachers"), app.teacherHandler.Delete)
	teachers.POST("/:id/restore", audit(models.AuditActionRestore, "teachers"), app.teacherHandler.Restore)
	teachers.DELETE("/:id/hard", audit(models.AuditActionHardDelete, "teachers"), app.teacherHandler.HardDelete)

	students := secured.Group("/students", middleware.RequireAdmin())
	students.GET("", app.studentHandler.List)
	students.GET("/stats", app.studentHandler.Stats)
	students.GET("/:id", app.studentHandler.Get)
	students.PUT("/:id", audit(models.AuditActionUpdate, "students"), app.studentHandler.Update)
	students.POST("/:id/block", audit(models.AuditActionBlock, "students"), app.studentHandler.Block)
	students.POST("/:id/unblock", audit(models.AuditActionUnblock, "students"), app.studentHandler.Unblock)
	students.DELETE("/:id", audit(models.AuditActionDelete, "students"), app.studentHandler.Delete)

	payments := secured.Group("/payments", middleware.RequireAdmin())
	payments.GET("/stats", app.paymentHandler.Stats)
	payments.GET("/transactions", app.paymentHandler.Transactions)
	payments.POST("/reports", app.reportHandler.Create)
	payments.GET("/reports/:id", app.reportHandler.Status)

	secured.GET("/dashboard", middleware.RequireAdmin(), app.dashboardHandler.Summary)

	profile := secured.Group("/profile", middleware.RequireAdmin())
	profile.GET("", app.profileHandler.AdminProfile)
	profile.PUT("", audit(models.AuditActionUpdate, "profile"), app.profileHandler.UpdateAdminProfile)

	teacherSelf := secured.Group("/teacher", middleware.RequireRoles(models.RoleTeacher))
	teacherSelf.GET("/lessons", app.lessonHandler.OwnLessons)
	teacherSelf.GET("/profile", app.profileHandler.TeacherProfile)
	teacherSelf.PUT("/profile", audit(models.AuditActionUpdate, "teacher_profile"), app.profileHandler.UpdateTeacherProfile)

	system := secured.Group("/system", middleware.RequireAdmin())
	system.GET("/metrics", app.metricsHandler.System)

	return r
}
