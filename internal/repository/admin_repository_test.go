package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
)

var adminRowColumns = []string{"id", "username", "phone_number", "password_hash", "role", "active", "last_login", "created_at", "updated_at"}

func TestAdminRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAdminRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(adminRowColumns).
		AddRow("a1", "root", nil, "hash", "SUPERADMIN", true, nil, now, now).
		AddRow("a2", "ops", "+998901112233", "hash", "ADMIN", true, now, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM admins ORDER BY created_at DESC")).WillReturnRows(rows)

	admins, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, models.RoleSuperAdmin, admins[0].Role)
	require.NotNil(t, admins[1].PhoneNumber)
	assert.Equal(t, "+998901112233", *admins[1].PhoneNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepositoryFindByUsernameNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAdminRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(username) = LOWER($1)")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepositoryExistsByUsernameExcludesSelf(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAdminRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM admins WHERE LOWER(username) = LOWER($1) AND id <> $2 LIMIT 1")).
		WithArgs("ops", "a2").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsByUsername(context.Background(), "ops", "a2")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepositoryCreateUpdateDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAdminRepository(db)

	mock.ExpectExec("INSERT INTO admins").WillReturnResult(sqlmock.NewResult(1, 1))
	admin := &models.Admin{Username: "ops", PasswordHash: "hash", Role: models.RoleAdmin, Active: true}
	require.NoError(t, repo.Create(context.Background(), admin))
	assert.NotEmpty(t, admin.ID)
	assert.False(t, admin.CreatedAt.IsZero())

	mock.ExpectExec("UPDATE admins SET username").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), admin))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM admins WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
