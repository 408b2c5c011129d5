package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
	"github.com/noah-isme/hmhy-admin-api/pkg/export"
)

type transactionSource interface {
	ReportTransactions(ctx context.Context, req models.PaymentReportRequest) ([]models.Transaction, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type urlSigner interface {
	Generate(id, relPath string) (string, time.Time, error)
	Parse(token string, allowExpired bool) (string, string, time.Time, error)
}

type tableRenderer interface {
	Render(t export.Table) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	RelativePath string
	Token        string
	URL          string
	RowCount     int
	Format       models.ReportFormat
	ExpiresAt    time.Time
}

// ExportService renders payment reports and stores them behind signed download URLs.
type ExportService struct {
	source  transactionSource
	storage fileStorage
	signer  urlSigner
	csv     tableRenderer
	pdf     tableRenderer
	logger  *zap.Logger
	cfg     ExportConfig
	now     func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers fall back to the pkg/export ones.
func NewExportService(source transactionSource, storage fileStorage, signer urlSigner, cfg ExportConfig, logger *zap.Logger, csv, pdf tableRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/api/v1"
	}
	if csv == nil {
		csv = export.NewCSVRenderer()
	}
	if pdf == nil {
		pdf = export.NewPDFRenderer()
	}
	return &ExportService{
		source:  source,
		storage: storage,
		signer:  signer,
		csv:     csv,
		pdf:     pdf,
		logger:  logger,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Generate renders the job's transactions, saves the file and signs a download URL for it.
func (s *ExportService) Generate(ctx context.Context, job *models.ReportJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}
	rows, err := s.source.ReportTransactions(ctx, job.Params)
	if err != nil {
		return nil, err
	}
	table := paymentsTable(rows, job.Params, s.now())

	var payload []byte
	switch job.Params.Format {
	case models.ReportFormatCSV:
		payload, err = s.csv.Render(table)
	case models.ReportFormatPDF:
		payload, err = s.pdf.Render(table)
	default:
		err = fmt.Errorf("unsupported format %s", job.Params.Format)
	}
	if err != nil {
		return nil, err
	}

	relPath, err := s.storage.Save(s.filename(job), payload)
	if err != nil {
		return nil, err
	}
	token, expiresAt, err := s.signer.Generate(job.ID, relPath)
	if err != nil {
		return nil, err
	}
	s.logger.Info("payment report rendered",
		zap.String("job_id", job.ID),
		zap.String("format", string(job.Params.Format)),
		zap.Int("rows", len(rows)),
		zap.Int("bytes", len(payload)),
	)

	return &ExportResult{
		RelativePath: relPath,
		Token:        token,
		URL:          s.DownloadURL(token),
		RowCount:     len(rows),
		Format:       job.Params.Format,
		ExpiresAt:    expiresAt,
	}, nil
}

// DownloadURL is the API path serving token.
func (s *ExportService) DownloadURL(token string) string {
	return strings.TrimRight(s.cfg.APIPrefix, "/") + "/payments/reports/download?token=" + url.QueryEscape(token)
}

// ParseToken validates download token metadata.
func (s *ExportService) ParseToken(token string, allowExpired bool) (jobID, relPath string, expiresAt time.Time, err error) {
	return s.signer.Parse(token, allowExpired)
}

// Open returns a handle to the stored file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Delete removes a stored export file.
func (s *ExportService) Delete(relPath string) error {
	return s.storage.Delete(relPath)
}

// Cleanup removes files older than ttl, or ResultTTL when ttl <= 0.
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) filename(job *models.ReportJob) string {
	return fmt.Sprintf("payments_%s_%s.%s", s.now().Format("20060102_150405"), shortID(job.ID), job.Params.Format)
}

func shortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "na"
	}
	return id
}

var paymentColumns = []export.Column{
	{Key: "date", Header: "Date", Weight: 1.3},
	{Key: "student", Header: "Student", Weight: 1.6},
	{Key: "teacher", Header: "Teacher", Weight: 1.6},
	{Key: "provider", Header: "Provider"},
	{Key: "status", Header: "Status"},
	{Key: "amount", Header: "Amount", Align: export.AlignRight},
}

func paymentsTable(rows []models.Transaction, params models.PaymentReportRequest, generatedAt time.Time) export.Table {
	table := export.Table{
		Title:   "Payments report",
		Columns: paymentColumns,
		Rows:    make([]map[string]string, 0, len(rows)),
	}
	completed := decimal.Zero
	for _, t := range rows {
		table.Rows = append(table.Rows, map[string]string{
			"date":     t.PerformedAt.UTC().Format("2006-01-02 15:04"),
			"student":  derefString(t.StudentName),
			"teacher":  derefString(t.TeacherName),
			"provider": t.Provider,
			"status":   string(t.Status),
			"amount":   t.Amount.StringFixed(2),
		})
		if t.Status == models.PaymentCompleted {
			completed = completed.Add(t.Amount)
		}
	}

	table.Footer = append(table.Footer,
		"Transactions: "+strconv.Itoa(len(rows)),
		"Completed revenue: "+completed.StringFixed(2),
	)
	if filters := describeReportFilters(params); filters != "" {
		table.Footer = append(table.Footer, "Filters: "+filters)
	}
	table.Footer = append(table.Footer, "Generated: "+generatedAt.Format(time.RFC3339))
	return table
}

func describeReportFilters(p models.PaymentReportRequest) string {
	var parts []string
	if p.Status != "" {
		parts = append(parts, "status="+string(p.Status))
	}
	if p.Provider != "" {
		parts = append(parts, "provider="+p.Provider)
	}
	if p.Search != "" {
		parts = append(parts, "search="+p.Search)
	}
	return strings.Join(parts, ", ")
}

func derefString(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
