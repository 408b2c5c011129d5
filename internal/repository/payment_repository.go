package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
)

// PaymentRepository reads recorded transactions.
type PaymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository constructs a PaymentRepository.
func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// ListTransactions returns all transactions with student and teacher display names, newest first.
func (r *PaymentRepository) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	const query = `SELECT t.id, t.lesson_id, t.student_id, NULLIF(TRIM(CONCAT(s.first_name, ' ', s.last_name)), '') AS student_name, t.teacher_id, te.full_name AS teacher_name, t.amount, t.status, t.provider, t.performed_at, t.created_at
FROM transactions t
LEFT JOIN students s ON s.id = t.student_id
LEFT JOIN teachers te ON te.id = t.teacher_id
ORDER BY t.performed_at DESC`
	var txs []models.Transaction
	if err := r.db.SelectContext(ctx, &txs, query); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// StatusTotals aggregates count and amount per status.
func (r *PaymentRepository) StatusTotals(ctx context.Context) ([]models.PaymentStatusTotal, error) {
	const query = `SELECT status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount FROM transactions GROUP BY status`
	var totals []models.PaymentStatusTotal
	if err := r.db.SelectContext(ctx, &totals, query); err != nil {
		return nil, fmt.Errorf("payment status totals: %w", err)
	}
	return totals, nil
}
