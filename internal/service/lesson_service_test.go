package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
	"github.com/noah-isme/hmhy-admin-api/pkg/listview"
)

type fakeLessonRepo struct {
	byTeacher map[string][]models.Lesson
}

func (f *fakeLessonRepo) ListByTeacher(ctx context.Context, teacherID string) ([]models.Lesson, error) {
	return f.byTeacher[teacherID], nil
}

func TestLessonServiceListForTeacher(t *testing.T) {
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	repo := &fakeLessonRepo{byTeacher: map[string][]models.Lesson{
		"t1": {
			{ID: "l1", Name: "IELTS Writing", StudentFirstName: strPtr("Aziz"), StartTime: start, Status: models.LessonCompleted, Price: decimal.RequireFromString("150000")},
			{ID: "l2", Name: "IELTS Speaking", StartTime: start.Add(48 * time.Hour), Status: models.LessonAvailable, Price: decimal.RequireFromString("150000")},
			{ID: "l3", Name: "Mock test", StudentFirstName: strPtr("Malika"), StartTime: start.Add(24 * time.Hour), Status: models.LessonBooked, Price: decimal.RequireFromString("200000")},
		},
	}}
	svc := NewLessonService(repo, seededTeachers(), nil, zap.NewNop())
	ctx := context.Background()

	page, err := svc.ListForTeacher(ctx, "t1", listview.NewQuery(10).WithSort("start_time", listview.Descending))
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, []string{"l2", "l3", "l1"}, []string{page.Items[0].ID, page.Items[1].ID, page.Items[2].ID})

	page, err = svc.ListForTeacher(ctx, "t1", listview.NewQuery(10).WithSearch("malika"))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "l3", page.Items[0].ID)

	page, err = svc.ListForTeacher(ctx, "t1", listview.NewQuery(10).WithFilter("status", "completed"))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "l1", page.Items[0].ID)

	_, err = svc.ListForTeacher(ctx, "t1", listview.NewQuery(10).WithFilter("status", "postponed"))
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.ListForTeacher(ctx, "nobody", listview.NewQuery(10))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestLessonServiceUnknownSortKeepsRepositoryOrder(t *testing.T) {
	repo := &fakeLessonRepo{byTeacher: map[string][]models.Lesson{
		"t1": {{ID: "b", Name: "B"}, {ID: "a", Name: "A"}},
	}}
	svc := NewLessonService(repo, nil, nil, zap.NewNop())

	page, err := svc.ListForTeacher(context.Background(), "t1", listview.NewQuery(10).WithSort("room", listview.Ascending))
	require.NoError(t, err)
	assert.Equal(t, "b", page.Items[0].ID)
	assert.Empty(t, page.Meta().Sort)
}
