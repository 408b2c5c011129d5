package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
)

var teacherRowColumns = []string{"id", "email", "password_hash", "full_name", "phone_number", "description", "experience", "hour_price", "level", "portfolio_link", "specification", "rating", "image_url", "card_number", "email_verified", "deleted_at", "deleted_by", "created_at", "updated_at"}

func TestTeacherRepositoryListActive(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(teacherRowColumns).
		AddRow("t1", "ann@hmhy.uz", "hash", "Ann Karimova", nil, nil, 4, "150000.00", "C1", nil, "IELTS", 4.8, nil, nil, true, nil, nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM teachers WHERE deleted_at IS NULL ORDER BY created_at DESC")).WillReturnRows(rows)

	teachers, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.True(t, decimal.RequireFromString("150000").Equal(teachers[0].HourPrice))
	assert.False(t, teachers[0].Deleted())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryListDeleted(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(teacherRowColumns).
		AddRow("t2", "bob@hmhy.uz", "hash", "Bob", nil, nil, 1, "90000", nil, nil, nil, 0, nil, nil, false, now, "a1", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE deleted_at IS NOT NULL ORDER BY deleted_at DESC")).WillReturnRows(rows)

	teachers, err := repo.ListDeleted(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.True(t, teachers[0].Deleted())
	require.NotNil(t, teachers[0].DeletedBy)
	assert.Equal(t, "a1", *teachers[0].DeletedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositorySoftDeleteRestoreHardDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE teachers SET deleted_at = $2, deleted_by = $3, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL")).
		WithArgs("t1", at, "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SoftDelete(context.Background(), "t1", "a1", at))

	mock.ExpectExec(regexp.QuoteMeta("SET deleted_at = NULL, deleted_by = NULL")).
		WithArgs("t1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Restore(context.Background(), "t1"), sql.ErrNoRows)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM teachers WHERE id = $1 AND deleted_at IS NOT NULL")).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.HardDelete(context.Background(), "t1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryUpdateSkipsDeleted(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectExec("UPDATE teachers SET full_name").WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Update(context.Background(), &models.Teacher{ID: "t9", FullName: "Gone"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryCounts(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(*) FILTER (WHERE deleted_at IS NULL)")).
		WillReturnRows(sqlmock.NewRows([]string{"active", "deleted"}).AddRow(12, 3))

	counts, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, TeacherCounts{Active: 12, Deleted: 3}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
