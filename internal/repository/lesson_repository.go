package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
)

// LessonRepository reads lessons together with the booking student's name.
type LessonRepository struct {
	db *sqlx.DB
}

// NewLessonRepository constructs a LessonRepository.
func NewLessonRepository(db *sqlx.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// ListByTeacher returns every lesson of teacherID, latest start first.
func (r *LessonRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Lesson, error) {
	const query = `SELECT l.id, l.teacher_id, l.name, l.student_id, s.first_name AS student_first_name, s.last_name AS student_last_name, l.start_time, l.end_time, l.price, l.status, l.google_meet_url, l.created_at, l.updated_at
FROM lessons l
LEFT JOIN students s ON s.id = l.student_id
WHERE l.teacher_id = $1
ORDER BY l.start_time DESC`
	var lessons []models.Lesson
	if err := r.db.SelectContext(ctx, &lessons, query, teacherID); err != nil {
		return nil, fmt.Errorf("list teacher lessons: %w", err)
	}
	return lessons, nil
}

// CountByStatus returns the number of lessons per status. Missing statuses count zero.
func (r *LessonRepository) CountByStatus(ctx context.Context) (map[models.LessonStatus]int, error) {
	const query = `SELECT status, COUNT(*) AS count FROM lessons GROUP BY status`
	var rows []struct {
		Status models.LessonStatus `db:"status"`
		Count  int                 `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count lessons by status: %w", err)
	}
	counts := make(map[models.LessonStatus]int, len(models.LessonStatuses))
	for _, status := range models.LessonStatuses {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
