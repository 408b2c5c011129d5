package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
	"github.com/noah-isme/hmhy-admin-api/pkg/response"
)

type adminProfileService interface {
	Profile(ctx context.Context, adminID string) (*models.Admin, error)
	UpdateProfile(ctx context.Context, adminID string, req models.UpdateProfileRequest) (*models.Admin, error)
}

type teacherProfileService interface {
	Profile(ctx context.Context, teacherID string) (*models.Teacher, error)
	UpdateProfile(ctx context.Context, teacherID string, req models.UpdateTeacherProfileRequest) (*models.Teacher, error)
}

// ProfileHandler lets the caller read and edit their own account.
type ProfileHandler struct {
	admins   adminProfileService
	teachers teacherProfileService
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(admins adminProfileService, teachers teacherProfileService) *ProfileHandler {
	return &ProfileHandler{admins: admins, teachers: teachers}
}

// AdminProfile godoc
// @Summary Current admin profile
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /profile [get]
func (h *ProfileHandler) AdminProfile(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	admin, err := h.admins.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admin, nil)
}

// UpdateAdminProfile godoc
// @Summary Update current admin profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body models.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /profile [put]
func (h *ProfileHandler) UpdateAdminProfile(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	var req models.UpdateProfileRequest
	if !bindJSON(c, &req, "invalid profile payload") {
		return
	}
	admin, err := h.admins.UpdateProfile(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admin, nil)
}

// TeacherProfile godoc
// @Summary Current teacher profile
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teacher/profile [get]
func (h *ProfileHandler) TeacherProfile(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	teacher, err := h.teachers.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher, nil)
}

// UpdateTeacherProfile godoc
// @Summary Update current teacher profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body models.UpdateTeacherProfileRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /teacher/profile [put]
func (h *ProfileHandler) UpdateTeacherProfile(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	var req models.UpdateTeacherProfileRequest
	if !bindJSON(c, &req, "invalid profile payload") {
		return
	}
	teacher, err := h.teachers.UpdateProfile(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher, nil)
}
