package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates the admin dashboard counters.
type DashboardSummary struct {
	ActiveTeachers  int                  `json:"active_teachers"`
	DeletedTeachers int                  `json:"deleted_teachers"`
	Students        StudentStats         `json:"students"`
	Lessons         map[LessonStatus]int `json:"lessons"`
	TotalRevenue    decimal.Decimal      `json:"total_revenue"`
	GeneratedAt     time.Time            `json:"generated_at"`
}
