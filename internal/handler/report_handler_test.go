package handler

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hmhy-admin-api/internal/dto"
	"github.com/noah-isme/hmhy-admin-api/internal/models"
	"github.com/noah-isme/hmhy-admin-api/internal/service"
	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
)

type reportServiceMock struct {
	createResp  *dto.ReportJobResponse
	createErr   error
	createdBy   string
	createdReq  models.PaymentReportRequest
	statusResp  *dto.ReportStatusResponse
	statusErr   error
	download    *service.ReportDownload
	downloadErr error
	token       string
}

func (m *reportServiceMock) CreateJob(ctx context.Context, req models.PaymentReportRequest, actorID string) (*dto.ReportJobResponse, error) {
	m.createdReq, m.createdBy = req, actorID
	return m.createResp, m.createErr
}

func (m *reportServiceMock) GetStatus(ctx context.Context, id string) (*dto.ReportStatusResponse, error) {
	return m.statusResp, m.statusErr
}

func (m *reportServiceMock) ResolveDownload(ctx context.Context, token string) (*service.ReportDownload, error) {
	m.token = token
	return m.download, m.downloadErr
}

func TestReportHandlerCreate(t *testing.T) {
	mockSvc := &reportServiceMock{createResp: &dto.ReportJobResponse{ID: "job-1", Status: models.ReportStatusQueued}}
	handler := NewReportHandler(mockSvc)

	c, w := newGinContext(http.MethodPost, "/payments/reports", mustJSON(t, models.PaymentReportRequest{Format: models.ReportFormatCSV, Provider: "payme"}))
	withClaims(c, "a1", models.RoleAdmin)
	handler.Create(c)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "a1", mockSvc.createdBy)
	assert.Equal(t, "payme", mockSvc.createdReq.Provider)
}

func TestReportHandlerStatus(t *testing.T) {
	url := "/api/v1/payments/reports/download?token=abc"
	mockSvc := &reportServiceMock{statusResp: &dto.ReportStatusResponse{ID: "job-1", Status: models.ReportStatusFinished, Progress: 100, DownloadURL: &url}}
	handler := NewReportHandler(mockSvc)

	c, w := newGinContext(http.MethodGet, "/payments/reports/job-1", nil)
	handler.Status(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decodeEnvelope(t, w).Data), "token=abc")
}

func TestReportHandlerDownload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Amount\n"), 0o644))
	file, err := os.Open(path)
	require.NoError(t, err)

	mockSvc := &reportServiceMock{download: &service.ReportDownload{
		File:      file,
		Filename:  "payments.csv",
		Format:    models.ReportFormatCSV,
		ExpiresAt: time.Now().Add(time.Hour),
	}}
	handler := NewReportHandler(mockSvc)

	c, w := newGinContext(http.MethodGet, "/payments/reports/download?token=tok", nil)
	handler.Download(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", mockSvc.token)
	assert.Equal(t, "Date,Amount\n", w.Body.String())
	assert.Equal(t, `attachment; filename="payments.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestReportHandlerDownloadErrors(t *testing.T) {
	mockSvc := &reportServiceMock{downloadErr: appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download token")}
	handler := NewReportHandler(mockSvc)

	c, w := newGinContext(http.MethodGet, "/payments/reports/download", nil)
	handler.Download(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = newGinContext(http.MethodGet, "/payments/reports/download?token=bad", nil)
	handler.Download(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReportHandlerDisabled(t *testing.T) {
	handler := NewReportHandler(nil)

	c, w := newGinContext(http.MethodPost, "/payments/reports", nil)
	withClaims(c, "a1", models.RoleAdmin)
	handler.Create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, appErrors.ErrFeatureDisabled.Code, decodeEnvelope(t, w).Error.Code)
}
