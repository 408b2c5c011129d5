package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hmhy-admin-api/internal/middleware"
	"github.com/noah-isme/hmhy-admin-api/internal/models"
	"github.com/noah-isme/hmhy-admin-api/pkg/listview"
	"github.com/noah-isme/hmhy-admin-api/pkg/response"
)

type lessonService interface {
	ListForTeacher(ctx context.Context, teacherID string, q listview.Query) (listview.Page[models.Lesson], error)
}

var lessonListSpec = ListSpec{DefaultSort: "start_time", DefaultOrder: listview.Descending, Filters: []string{"status"}}

// LessonHandler lists lessons of one teacher.
type LessonHandler struct {
	service lessonService
	lists   ListQueryParser
}

// NewLessonHandler constructs the handler.
func NewLessonHandler(svc lessonService, lists ListQueryParser) *LessonHandler {
	return &LessonHandler{service: svc, lists: lists}
}

// TeacherLessons godoc
// @Summary List a teacher's lessons
// @Tags Lessons
// @Produce json
// @Param id path string true "Teacher ID"
// @Param search query string false "Search lesson or student name"
// @Param sort query string false "start_time, end_time, price or name"
// @Param order query string false "asc or desc"
// @Param status query string false "AVAILABLE, BOOKED, COMPLETED or CANCELLED"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/{id}/lessons [get]
func (h *LessonHandler) TeacherLessons(c *gin.Context) {
	h.list(c, c.Param("id"))
}

// OwnLessons godoc
// @Summary List the calling teacher's lessons
// @Tags Lessons
// @Produce json
// @Param search query string false "Search lesson or student name"
// @Param sort query string false "start_time, end_time, price or name"
// @Param order query string false "asc or desc"
// @Param status query string false "Lesson status"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /teacher/lessons [get]
func (h *LessonHandler) OwnLessons(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	h.list(c, claims.UserID)
}

func (h *LessonHandler) list(c *gin.Context, teacherID string) {
	page, err := h.service.ListForTeacher(c.Request.Context(), teacherID, h.lists.Parse(c, lessonListSpec))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, page, middleware.Meta(c))
}
