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

type studentService interface {
	List(ctx context.Context, q listview.Query) (listview.Page[models.Student], error)
	Stats(ctx context.Context) (models.StudentStats, error)
	Get(ctx context.Context, id string) (*models.Student, error)
	Update(ctx context.Context, id string, req models.UpdateStudentRequest) (*models.Student, error)
	Block(ctx context.Context, id string, req models.BlockStudentRequest) (*models.Student, error)
	Unblock(ctx context.Context, id string) (*models.Student, error)
	Delete(ctx context.Context, id string) error
}

var studentListSpec = ListSpec{DefaultSort: "created_at", DefaultOrder: listview.Descending, Filters: []string{"status"}}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	service studentService
	lists   ListQueryParser
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(svc studentService, lists ListQueryParser) *StudentHandler {
	return &StudentHandler{service: svc, lists: lists}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param search query string false "Search name, phone or telegram username"
// @Param sort query string false "first_name, last_name or created_at"
// @Param order query string false "asc or desc"
// @Param status query string false "active or blocked"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), h.lists.Parse(c, studentListSpec))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, page, middleware.Meta(c))
}

// Stats godoc
// @Summary Student counters
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students/stats [get]
func (h *StudentHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Get godoc
// @Summary Get student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Update godoc
// @Summary Update student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body models.UpdateStudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req models.UpdateStudentRequest
	if !bindJSON(c, &req, "invalid student payload") {
		return
	}
	student, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Block godoc
// @Summary Block student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body models.BlockStudentRequest false "Optional reason"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/block [post]
func (h *StudentHandler) Block(c *gin.Context) {
	var req models.BlockStudentRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req, "invalid block payload") {
		return
	}
	student, err := h.service.Block(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Unblock godoc
// @Summary Unblock student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/unblock [post]
func (h *StudentHandler) Unblock(c *gin.Context) {
	student, err := h.service.Unblock(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Delete godoc
// @Summary Delete student
// @Tags Students
// @Param id path string true "Student ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
