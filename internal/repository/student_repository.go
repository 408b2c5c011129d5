package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
)

const studentColumns = `id, first_name, last_name, phone_number, tg_id, tg_username, is_blocked, blocked_at, blocked_reason, created_at, updated_at`

// StudentRepository handles persistence for students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository instantiates the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns every student, newest first.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return &student, nil
}

// Update writes the student's name and phone number.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now().UTC()
	const query = `UPDATE students SET first_name = :first_name, last_name = :last_name, phone_number = :phone_number, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return requireAffected(res, "update student")
}

// SetBlocked blocks or unblocks a student. reason is ignored when unblocking.
func (r *StudentRepository) SetBlocked(ctx context.Context, id string, blocked bool, reason *string, at time.Time) error {
	var (
		res sql.Result
		err error
	)
	if blocked {
		res, err = r.db.ExecContext(ctx, `UPDATE students SET is_blocked = TRUE, blocked_at = $2, blocked_reason = $3, updated_at = $2 WHERE id = $1`, id, at, reason)
	} else {
		res, err = r.db.ExecContext(ctx, `UPDATE students SET is_blocked = FALSE, blocked_at = NULL, blocked_reason = NULL, updated_at = $2 WHERE id = $1`, id, at)
	}
	if err != nil {
		return fmt.Errorf("set student blocked: %w", err)
	}
	return requireAffected(res, "set student blocked")
}

// Delete removes a student.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return requireAffected(res, "delete student")
}

// Stats counts students by block state.
func (r *StudentRepository) Stats(ctx context.Context) (models.StudentStats, error) {
	const query = `SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE NOT is_blocked) AS active, COUNT(*) FILTER (WHERE is_blocked) AS blocked FROM students`
	var stats models.StudentStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return models.StudentStats{}, fmt.Errorf("student stats: %w", err)
	}
	return stats, nil
}
