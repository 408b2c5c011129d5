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

type paymentService interface {
	Stats(ctx context.Context) (*models.PaymentStats, error)
	Transactions(ctx context.Context, q listview.Query) (listview.Page[models.Transaction], error)
}

var transactionListSpec = ListSpec{DefaultSort: "date", DefaultOrder: listview.Descending, Filters: []string{"status", "provider"}}

// PaymentHandler serves payment statistics and the transaction list.
type PaymentHandler struct {
	service paymentService
	lists   ListQueryParser
}

// NewPaymentHandler constructs the handler.
func NewPaymentHandler(svc paymentService, lists ListQueryParser) *PaymentHandler {
	return &PaymentHandler{service: svc, lists: lists}
}

// Stats godoc
// @Summary Payment statistics
// @Tags Payments
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /payments/stats [get]
func (h *PaymentHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Transactions godoc
// @Summary List transactions
// @Tags Payments
// @Produce json
// @Param search query string false "Search student or teacher name"
// @Param sort query string false "date or amount"
// @Param order query string false "asc or desc"
// @Param status query string false "COMPLETED, PENDING, CANCELLED or FAILED"
// @Param provider query string false "Provider filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /payments/transactions [get]
func (h *PaymentHandler) Transactions(c *gin.Context) {
	page, err := h.service.Transactions(c.Request.Context(), h.lists.Parse(c, transactionListSpec))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, page, middleware.Meta(c))
}
