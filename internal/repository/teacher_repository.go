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

const teacherColumns = `id, email, password_hash, full_name, phone_number, description, experience, hour_price, level, portfolio_link, specification, rating, image_url, card_number, email_verified, deleted_at, deleted_by, created_at, updated_at`

// TeacherCounts splits teachers by soft-delete state.
type TeacherCounts struct {
	Active  int `db:"active"`
	Deleted int `db:"deleted"`
}

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// ListActive returns teachers that are not soft-deleted.
func (r *TeacherRepository) ListActive(ctx context.Context) ([]models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE deleted_at IS NULL ORDER BY created_at DESC`
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// ListDeleted returns soft-deleted teachers, most recently deleted first.
func (r *TeacherRepository) ListDeleted(ctx context.Context) ([]models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE deleted_at IS NOT NULL ORDER BY deleted_at DESC`
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list deleted teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher regardless of soft-delete state.
func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find teacher by id: %w", err)
	}
	return &teacher, nil
}

// FindByEmail fetches a teacher by email.
func (r *TeacherRepository) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE LOWER(email) = LOWER($1)`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find teacher by email: %w", err)
	}
	return &teacher, nil
}

// Update persists editable profile columns of an active teacher.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	teacher.UpdatedAt = time.Now().UTC()
	const query = `UPDATE teachers SET full_name = :full_name, phone_number = :phone_number, description = :description, experience = :experience, hour_price = :hour_price, level = :level, portfolio_link = :portfolio_link, specification = :specification, image_url = :image_url, card_number = :card_number, updated_at = :updated_at WHERE id = :id AND deleted_at IS NULL`
	res, err := r.db.NamedExecContext(ctx, query, teacher)
	if err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}
	return requireAffected(res, "update teacher")
}

// SoftDelete marks an active teacher as deleted by deletedBy.
func (r *TeacherRepository) SoftDelete(ctx context.Context, id, deletedBy string, at time.Time) error {
	const query = `UPDATE teachers SET deleted_at = $2, deleted_by = $3, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, id, at, deletedBy)
	if err != nil {
		return fmt.Errorf("soft delete teacher: %w", err)
	}
	return requireAffected(res, "soft delete teacher")
}

// Restore clears the soft-delete markers.
func (r *TeacherRepository) Restore(ctx context.Context, id string) error {
	const query = `UPDATE teachers SET deleted_at = NULL, deleted_by = NULL, updated_at = $2 WHERE id = $1 AND deleted_at IS NOT NULL`
	res, err := r.db.ExecContext(ctx, query, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("restore teacher: %w", err)
	}
	return requireAffected(res, "restore teacher")
}

// HardDelete removes a soft-deleted teacher permanently.
func (r *TeacherRepository) HardDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1 AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return fmt.Errorf("hard delete teacher: %w", err)
	}
	return requireAffected(res, "hard delete teacher")
}

// UpdatePassword stores a new password hash.
func (r *TeacherRepository) UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE teachers SET password_hash = $2, updated_at = $3 WHERE id = $1`, id, passwordHash, updatedAt); err != nil {
		return fmt.Errorf("update teacher password: %w", err)
	}
	return nil
}

// MarkEmailVerified flags the teacher's email as confirmed.
func (r *TeacherRepository) MarkEmailVerified(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE teachers SET email_verified = TRUE, updated_at = $2 WHERE id = $1`, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark teacher email verified: %w", err)
	}
	return nil
}

// Counts returns the number of active and soft-deleted teachers.
func (r *TeacherRepository) Counts(ctx context.Context) (TeacherCounts, error) {
	const query = `SELECT COUNT(*) FILTER (WHERE deleted_at IS NULL) AS active, COUNT(*) FILTER (WHERE deleted_at IS NOT NULL) AS deleted FROM teachers`
	var counts TeacherCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return TeacherCounts{}, fmt.Errorf("count teachers: %w", err)
	}
	return counts, nil
}
