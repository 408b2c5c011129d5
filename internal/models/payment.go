package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a transaction.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCancelled PaymentStatus = "CANCELLED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Transaction is a lesson payment recorded by a payment provider integration.
type Transaction struct {
	ID          string          `db:"id" json:"id"`
	LessonID    *string         `db:"lesson_id" json:"lesson_id,omitempty"`
	StudentID   *string         `db:"student_id" json:"student_id,omitempty"`
	StudentName *string         `db:"student_name" json:"student_name,omitempty"`
	TeacherID   *string         `db:"teacher_id" json:"teacher_id,omitempty"`
	TeacherName *string         `db:"teacher_name" json:"teacher_name,omitempty"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Status      PaymentStatus   `db:"status" json:"status"`
	Provider    string          `db:"provider" json:"provider"`
	PerformedAt time.Time       `db:"performed_at" json:"date"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// PaymentStats summarises revenue and transaction counts.
type PaymentStats struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalCount     int             `json:"total_transactions"`
	CompletedCount int             `json:"completed"`
	PendingCount   int             `json:"pending"`
	CancelledCount int             `json:"cancelled"`
	FailedCount    int             `json:"failed"`
}

// PaymentStatusTotal is one aggregated row of the stats query.
type PaymentStatusTotal struct {
	Status PaymentStatus   `db:"status"`
	Count  int             `db:"count"`
	Amount decimal.Decimal `db:"amount"`
}
