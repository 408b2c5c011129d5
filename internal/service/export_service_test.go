package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
	"github.com/noah-isme/hmhy-admin-api/pkg/storage"
)

type stubTransactionSource struct {
	rows []models.Transaction
	err  error
	got  models.PaymentReportRequest
}

func (s *stubTransactionSource) ReportTransactions(ctx context.Context, req models.PaymentReportRequest) ([]models.Transaction, error) {
	s.got = req
	return s.rows, s.err
}

func reportTransactions() []models.Transaction {
	when := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	return []models.Transaction{
		{ID: "p1", StudentName: strPtr("Aziz Karimov"), TeacherName: strPtr("Nodira"), Amount: decimal.RequireFromString("150000"), Status: models.PaymentCompleted, Provider: "payme", PerformedAt: when},
		{ID: "p2", StudentName: strPtr("Lola Saidova"), Amount: decimal.RequireFromString("90000.5"), Status: models.PaymentPending, Provider: "click", PerformedAt: when.Add(time.Hour)},
	}
}

func newExportServiceForTest(t *testing.T, source transactionSource) *ExportService {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("secret", time.Hour)
	return NewExportService(source, store, signer, ExportConfig{APIPrefix: "/api/v1/", ResultTTL: time.Hour}, zap.NewNop(), nil, nil)
}

func TestExportServiceGenerateCSV(t *testing.T) {
	source := &stubTransactionSource{rows: reportTransactions()}
	svc := newExportServiceForTest(t, source)
	job := &models.ReportJob{ID: "0f8c2b7e-aaaa-bbbb", Params: models.PaymentReportRequest{Format: models.ReportFormatCSV, Provider: "payme"}}

	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RowCount)
	assert.Equal(t, "payme", source.got.Provider)
	assert.True(t, strings.HasPrefix(result.URL, "/api/v1/payments/reports/download?token="))
	assert.Contains(t, result.RelativePath, "0f8c2b7e")
	assert.True(t, strings.HasSuffix(result.RelativePath, ".csv"))

	jobID, relPath, _, err := svc.ParseToken(result.Token, false)
	require.NoError(t, err)
	assert.Equal(t, job.ID, jobID)
	assert.Equal(t, result.RelativePath, relPath)

	file, err := svc.Open(result.RelativePath)
	require.NoError(t, err)
	defer file.Close()
	content, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "Date,Student,Teacher,Provider,Status,Amount")
	assert.Contains(t, text, "2024-03-05 09:30,Aziz Karimov,Nodira,payme,COMPLETED,150000.00")
	assert.Contains(t, text, "Lola Saidova,,click,PENDING,90000.50")
	assert.Contains(t, text, "Completed revenue: 150000.00")
	assert.Contains(t, text, "Filters: provider=payme")
}

func TestExportServiceGeneratePDF(t *testing.T) {
	svc := newExportServiceForTest(t, &stubTransactionSource{rows: reportTransactions()})
	job := &models.ReportJob{ID: "job-pdf", Params: models.PaymentReportRequest{Format: models.ReportFormatPDF}}

	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)
	file, err := svc.Open(result.RelativePath)
	require.NoError(t, err)
	defer file.Close()
	header := make([]byte, 4)
	_, err = file.Read(header)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(header))
}

func TestExportServiceGenerateErrors(t *testing.T) {
	svc := newExportServiceForTest(t, &stubTransactionSource{err: errors.New("db down")})
	_, err := svc.Generate(context.Background(), &models.ReportJob{ID: "j", Params: models.PaymentReportRequest{Format: models.ReportFormatCSV}})
	assert.EqualError(t, err, "db down")

	svc = newExportServiceForTest(t, &stubTransactionSource{})
	_, err = svc.Generate(context.Background(), &models.ReportJob{ID: "j", Params: models.PaymentReportRequest{Format: "xlsx"}})
	assert.Error(t, err)

	_, err = svc.Generate(context.Background(), nil)
	assert.Error(t, err)
}

func TestExportServiceDeleteRemovesFile(t *testing.T) {
	svc := newExportServiceForTest(t, &stubTransactionSource{rows: reportTransactions()})
	result, err := svc.Generate(context.Background(), &models.ReportJob{ID: "job-del", Params: models.PaymentReportRequest{Format: models.ReportFormatCSV}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(result.RelativePath))
	_, err = svc.Open(result.RelativePath)
	assert.Error(t, err)
}
