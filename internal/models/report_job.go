package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ReportFormat enumerates supported export formats.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

// ReportStatus captures background job lifecycle states.
type ReportStatus string

const (
	ReportStatusQueued     ReportStatus = "QUEUED"
	ReportStatusProcessing ReportStatus = "PROCESSING"
	ReportStatusFinished   ReportStatus = "FINISHED"
	ReportStatusFailed     ReportStatus = "FAILED"
)

// PaymentReportRequest selects the transactions exported into a report. It is persisted as JSONB.
type PaymentReportRequest struct {
	Format   ReportFormat  `json:"format" validate:"required,oneof=csv pdf"`
	Status   PaymentStatus `json:"status,omitempty" validate:"omitempty,oneof=COMPLETED PENDING CANCELLED FAILED"`
	Provider string        `json:"provider,omitempty" validate:"omitempty,max=64"`
	Search   string        `json:"search,omitempty" validate:"omitempty,max=120"`
	Sort     string        `json:"sort,omitempty" validate:"omitempty,oneof=date amount"`
	Order    string        `json:"order,omitempty" validate:"omitempty,oneof=asc desc"`
}

// Value marshals the request for the params column.
func (p PaymentReportRequest) Value() (driver.Value, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal report params: %w", err)
	}
	return data, nil
}

// Scan reads the params column.
func (p *PaymentReportRequest) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*p = PaymentReportRequest{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for PaymentReportRequest", value)
	}
	if len(data) == 0 {
		*p = PaymentReportRequest{}
		return nil
	}
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("unmarshal report params: %w", err)
	}
	return nil
}

// ReportJob is the persisted state of one asynchronous payment report.
type ReportJob struct {
	ID           string               `db:"id" json:"id"`
	Params       PaymentReportRequest `db:"params" json:"params"`
	Status       ReportStatus         `db:"status" json:"status"`
	Progress     int                  `db:"progress" json:"progress"`
	RowCount     int                  `db:"row_count" json:"row_count"`
	FilePath     *string              `db:"file_path" json:"-"`
	DownloadURL  *string              `db:"download_url" json:"download_url,omitempty"`
	ExpiresAt    *time.Time           `db:"expires_at" json:"expires_at,omitempty"`
	CreatedBy    string               `db:"created_by" json:"created_by"`
	CreatedAt    time.Time            `db:"created_at" json:"created_at"`
	FinishedAt   *time.Time           `db:"finished_at" json:"finished_at,omitempty"`
	ErrorMessage *string              `db:"error_message" json:"error_message,omitempty"`
}
