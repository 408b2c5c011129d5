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

func TestLessonRepositoryListByTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLessonRepository(db)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "teacher_id", "name", "student_id", "student_first_name", "student_last_name", "start_time", "end_time", "price", "status", "google_meet_url", "created_at", "updated_at"}).
		AddRow("l1", "t1", "Speaking", "s1", "Ann", "Lee", start, start.Add(time.Hour), "120000", "BOOKED", nil, start, start).
		AddRow("l2", "t1", "Grammar", nil, nil, nil, start.Add(-24*time.Hour), start.Add(-23*time.Hour), "100000", "AVAILABLE", nil, start, start)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN students s ON s.id = l.student_id")).
		WithArgs("t1").
		WillReturnRows(rows)

	lessons, err := repo.ListByTeacher(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, models.LessonBooked, lessons[0].Status)
	require.NotNil(t, lessons[0].StudentFirstName)
	assert.Equal(t, "Ann", *lessons[0].StudentFirstName)
	assert.Nil(t, lessons[1].StudentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepositoryCountByStatusFillsMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLessonRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, COUNT(*) AS count FROM lessons GROUP BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("BOOKED", 4).AddRow("COMPLETED", 9))

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[models.LessonStatus]int{
		models.LessonAvailable: 0,
		models.LessonBooked:    4,
		models.LessonCompleted: 9,
		models.LessonCancelled: 0,
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
