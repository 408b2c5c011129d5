package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
)

type fakeDashboardSrv struct {
	summary *models.DashboardSummary
	hit     bool
	err     error
}

func (f *fakeDashboardSrv) Summary(context.Context) (*models.DashboardSummary, bool, error) {
	return f.summary, f.hit, f.err
}

func TestDashboardHandlerSummary(t *testing.T) {
	handler := NewDashboardHandler(&fakeDashboardSrv{
		summary: &models.DashboardSummary{ActiveTeachers: 4, TotalRevenue: decimal.NewFromInt(1200)},
		hit:     true,
	})

	c, w := newGinContext(http.MethodGet, "/dashboard", nil)
	handler.Summary(c)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, true, env.Meta["cache_hit"])
	assert.Contains(t, env.Meta, "processing_time_ms")
	assert.Contains(t, string(env.Data), `"active_teachers":4`)
}

func TestDashboardHandlerError(t *testing.T) {
	handler := NewDashboardHandler(&fakeDashboardSrv{err: errors.New("db down")})

	c, w := newGinContext(http.MethodGet, "/dashboard", nil)
	handler.Summary(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDashboardHandlerNotConfigured(t *testing.T) {
	handler := NewDashboardHandler(nil)

	c, w := newGinContext(http.MethodGet, "/dashboard", nil)
	handler.Summary(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
