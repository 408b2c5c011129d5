package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
)

func TestPaymentRepositoryListTransactions(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPaymentRepository(db)

	at := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "lesson_id", "student_id", "student_name", "teacher_id", "teacher_name", "amount", "status", "provider", "performed_at", "created_at"}).
		AddRow("p1", "l1", "s1", "Ann Lee", "t1", "Bob Ray", "150000.50", "COMPLETED", "click", at, at)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN teachers te ON te.id = t.teacher_id")).WillReturnRows(rows)

	txs, err := repo.ListTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.PaymentCompleted, txs[0].Status)
	assert.Equal(t, "150000.5", txs[0].Amount.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepositoryStatusTotals(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPaymentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count", "amount"}).
			AddRow("COMPLETED", 3, "450000").
			AddRow("FAILED", 1, "99000"))

	totals, err := repo.StatusTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.True(t, decimal.RequireFromString("450000").Equal(totals[0].Amount))
	assert.Equal(t, 1, totals[1].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
