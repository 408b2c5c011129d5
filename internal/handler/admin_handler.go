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

type adminService interface {
	List(ctx context.Context, q listview.Query) (listview.Page[models.Admin], error)
	Get(ctx context.Context, id string) (*models.Admin, error)
	Create(ctx context.Context, req models.CreateAdminRequest) (*models.Admin, error)
	Update(ctx context.Context, id string, req models.UpdateAdminRequest) (*models.Admin, error)
	Delete(ctx context.Context, actorID, id string) error
}

var adminListSpec = ListSpec{DefaultSort: "created_at", DefaultOrder: listview.Descending, Filters: []string{"role"}}

// AdminHandler serves the superadmin's admin management endpoints.
type AdminHandler struct {
	service adminService
	lists   ListQueryParser
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(svc adminService, lists ListQueryParser) *AdminHandler {
	return &AdminHandler{service: svc, lists: lists}
}

// List godoc
// @Summary List admins
// @Tags Admins
// @Produce json
// @Param search query string false "Search username, phone or role"
// @Param sort query string false "username, created_at or updated_at"
// @Param order query string false "asc or desc"
// @Param role query string false "Role filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admins [get]
func (h *AdminHandler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), h.lists.Parse(c, adminListSpec))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, page, middleware.Meta(c))
}

// Get godoc
// @Summary Get admin
// @Tags Admins
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admins/{id} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	admin, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admin, nil)
}

// Create godoc
// @Summary Create admin
// @Tags Admins
// @Accept json
// @Produce json
// @Param payload body models.CreateAdminRequest true "Admin payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admins [post]
func (h *AdminHandler) Create(c *gin.Context) {
	var req models.CreateAdminRequest
	if !bindJSON(c, &req, "invalid admin payload") {
		return
	}
	admin, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, admin)
}

// Update godoc
// @Summary Update admin
// @Tags Admins
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param payload body models.UpdateAdminRequest true "Admin payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admins/{id} [put]
func (h *AdminHandler) Update(c *gin.Context) {
	var req models.UpdateAdminRequest
	if !bindJSON(c, &req, "invalid admin payload") {
		return
	}
	admin, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admin, nil)
}

// Delete godoc
// @Summary Delete admin
// @Tags Admins
// @Param id path string true "Admin ID"
// @Success 204 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admins/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	if err := h.service.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
