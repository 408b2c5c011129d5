package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hmhy-admin-api/internal/middleware"
	"github.com/noah-isme/hmhy-admin-api/internal/models"
	"github.com/noah-isme/hmhy-admin-api/pkg/listview"
	"github.com/noah-isme/hmhy-admin-api/pkg/response"
)

type teacherService interface {
	List(ctx context.Context, q listview.Query) (listview.Page[models.Teacher], error)
	ListDeleted(ctx context.Context, q listview.Query) (listview.Page[models.Teacher], error)
	Get(ctx context.Context, id string) (*models.Teacher, error)
	Update(ctx context.Context, id string, req models.UpdateTeacherRequest) (*models.Teacher, error)
	SoftDelete(ctx context.Context, actorID, id string) error
	Restore(ctx context.Context, id string) (*models.Teacher, error)
	HardDelete(ctx context.Context, id string) error
}

var (
	teacherListSpec        = ListSpec{DefaultSort: "created_at", DefaultOrder: listview.Descending, Filters: []string{"level", "specification"}}
	deletedTeacherListSpec = ListSpec{DefaultSort: "deleted_at", DefaultOrder: listview.Descending}
)

// TeacherHandler manages teacher endpoints.
type TeacherHandler struct {
	service teacherService
	lists   ListQueryParser
}

// NewTeacherHandler constructs handler.
func NewTeacherHandler(svc teacherService, lists ListQueryParser) *TeacherHandler {
	return &TeacherHandler{service: svc, lists: lists}
}

// List godoc
// @Summary List active teachers
// @Tags Teachers
// @Produce json
// @Param search query string false "Search name, email, phone or specification"
// @Param sort query string false "full_name, rating, hour_price, experience or created_at"
// @Param order query string false "asc or desc"
// @Param level query string false "Level filter"
// @Param specification query string false "Specification filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), h.lists.Parse(c, teacherListSpec))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, page, middleware.Meta(c))
}

// ListDeleted godoc
// @Summary List soft-deleted teachers
// @Tags Teachers
// @Produce json
// @Param search query string false "Search name, email or phone"
// @Param sort query string false "deleted_at or full_name"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /teachers/deleted [get]
func (h *TeacherHandler) ListDeleted(c *gin.Context) {
	page, err := h.service.ListDeleted(c.Request.Context(), h.lists.Parse(c, deletedTeacherListSpec))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, page, middleware.Meta(c))
}

// Get godoc
// @Summary Get teacher
// @Tags Teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/{id} [get]
func (h *TeacherHandler) Get(c *gin.Context) {
	teacher, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher, nil)
}

// Update godoc
// @Summary Update teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param id path string true "Teacher ID"
// @Param payload body models.UpdateTeacherRequest true "Teacher payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/{id} [put]
func (h *TeacherHandler) Update(c *gin.Context) {
	var req models.UpdateTeacherRequest
	if !bindJSON(c, &req, "invalid teacher payload") {
		return
	}
	teacher, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher, nil)
}

// Delete godoc
// @Summary Soft delete teacher
// @Tags Teachers
// @Param id path string true "Teacher ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/{id} [delete]
func (h *TeacherHandler) Delete(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	if err := h.service.SoftDelete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Restore godoc
// @Summary Restore soft-deleted teacher
// @Tags Teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/{id}/restore [post]
func (h *TeacherHandler) Restore(c *gin.Context) {
	teacher, err := h.service.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher, nil)
}

// HardDelete godoc
// @Summary Permanently delete a soft-deleted teacher
// @Tags Teachers
// @Param id path string true "Teacher ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /teachers/{id}/hard [delete]
func (h *TeacherHandler) HardDelete(c *gin.Context) {
	if err := h.service.HardDelete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
