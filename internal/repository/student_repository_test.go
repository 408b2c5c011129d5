package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
)

func TestStudentRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "phone_number", "tg_id", "tg_username", "is_blocked", "blocked_at", "blocked_reason", "created_at", "updated_at"}).
		AddRow("s1", "Ann", "Lee", nil, "1001", "annlee", false, nil, nil, now, now).
		AddRow("s2", "Bob", "Ray", "+998900000000", nil, nil, true, now, "spam", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM students ORDER BY created_at DESC")).WillReturnRows(rows)

	students, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, models.StudentStatusActive, students[0].Status())
	assert.Equal(t, models.StudentStatusBlocked, students[1].Status())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositorySetBlocked(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	reason := "abusive messages"

	mock.ExpectExec(regexp.QuoteMeta("SET is_blocked = TRUE, blocked_at = $2, blocked_reason = $3")).
		WithArgs("s1", at, "abusive messages").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetBlocked(context.Background(), "s1", true, &reason, at))

	mock.ExpectExec(regexp.QuoteMeta("SET is_blocked = FALSE, blocked_at = NULL, blocked_reason = NULL")).
		WithArgs("s1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetBlocked(context.Background(), "s1", false, nil, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryStats(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(*) FILTER (WHERE is_blocked)")).
		WillReturnRows(sqlmock.NewRows([]string{"total", "active", "blocked"}).AddRow(10, 8, 2))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StudentStats{Total: 10, Active: 8, Blocked: 2}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
