package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/hmhy-admin-api/internal/models"
	"github.com/noah-isme/hmhy-admin-api/internal/repository"
	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
	"github.com/noah-isme/hmhy-admin-api/pkg/jobs"
)

type reportRepoStub struct {
	jobs    map[string]*models.ReportJob
	cleared []string
}

func newReportRepoStub() *reportRepoStub {
	return &reportRepoStub{jobs: map[string]*models.ReportJob{}}
}

func (r *reportRepoStub) Create(ctx context.Context, job *models.ReportJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now().UTC()
	r.jobs[job.ID] = job
	return nil
}

func (r *reportRepoStub) GetByID(ctx context.Context, id string) (*models.ReportJob, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (r *reportRepoStub) Update(ctx context.Context, id string, params repository.UpdateReportJobParams) error {
	job, ok := r.jobs[id]
	if !ok {
		return sql.ErrNoRows
	}
	if params.Status != nil {
		job.Status = *params.Status
	}
	if params.Progress != nil {
		job.Progress = *params.Progress
	}
	if params.RowCount != nil {
		job.RowCount = *params.RowCount
	}
	if params.FilePath != nil {
		job.FilePath = params.FilePath
	}
	if params.DownloadURL != nil {
		job.DownloadURL = params.DownloadURL
	}
	if params.ExpiresAt != nil {
		job.ExpiresAt = params.ExpiresAt
	}
	if params.ErrorMessage != nil {
		job.ErrorMessage = params.ErrorMessage
	}
	if params.FinishedAt != nil {
		job.FinishedAt = params.FinishedAt
	}
	return nil
}

func (r *reportRepoStub) ListQueued(ctx context.Context, limit int) ([]models.ReportJob, error) {
	var queued []models.ReportJob
	for _, job := range r.jobs {
		if job.Status == models.ReportStatusQueued {
			queued = append(queued, *job)
		}
	}
	return queued, nil
}

func (r *reportRepoStub) ListFinishedBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.ReportJob, error) {
	var out []models.ReportJob
	for _, job := range r.jobs {
		if job.Status == models.ReportStatusFinished && job.FilePath != nil && job.FinishedAt != nil && job.FinishedAt.Before(cutoff) {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *reportRepoStub) ClearFile(ctx context.Context, id string) error {
	job := r.jobs[id]
	job.FilePath = nil
	job.DownloadURL = nil
	r.cleared = append(r.cleared, id)
	return nil
}

type recordingQueue struct {
	jobs []jobs.Job
	err  error
}

func (q *recordingQueue) Enqueue(job jobs.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

type failingGenerator struct{ err error }

func (g failingGenerator) Generate(ctx context.Context, job *models.ReportJob) (*ExportResult, error) {
	return nil, g.err
}

func newReportFixture(t *testing.T) (*ReportService, *ReportWorker, *reportRepoStub, *recordingQueue, *ExportService) {
	t.Helper()
	repo := newReportRepoStub()
	queue := &recordingQueue{}
	exporter := newExportServiceForTest(t, &stubTransactionSource{rows: reportTransactions()})
	svc := NewReportService(repo, queue, exporter, nil, nil, zap.NewNop(), ReportServiceConfig{ResultTTL: time.Hour})
	worker := NewReportWorker(repo, exporter, 3, nil, zap.NewNop())
	return svc, worker, repo, queue, exporter
}

func TestReportServiceLifecycle(t *testing.T) {
	svc, worker, repo, queue, _ := newReportFixture(t)
	ctx := context.Background()

	resp, err := svc.CreateJob(ctx, models.PaymentReportRequest{Format: models.ReportFormatCSV}, "a1")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusQueued, resp.Status)
	require.Len(t, queue.jobs, 1)
	assert.Equal(t, ReportJobType, queue.jobs[0].Type)

	status, err := svc.GetStatus(ctx, resp.ID)
	require.NoError(t, err)
	assert.Nil(t, status.DownloadURL)

	require.NoError(t, worker.Handle(ctx, jobs.Job{ID: resp.ID, Type: ReportJobType, Attempt: 1}))

	status, err = svc.GetStatus(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusFinished, status.Status)
	assert.Equal(t, 100, status.Progress)
	assert.Equal(t, 2, status.RowCount)
	assert.Equal(t, models.ReportFormatCSV, status.Format)
	require.NotNil(t, status.DownloadURL)
	require.NotNil(t, status.ExpiresAt)
	assert.Nil(t, status.Error)

	token := (*status.DownloadURL)[len("/api/v1/payments/reports/download?token="):]
	download, err := svc.ResolveDownload(ctx, token)
	require.NoError(t, err)
	defer download.File.Close()
	assert.Equal(t, *repo.jobs[resp.ID].FilePath, download.Filename)
	body, err := io.ReadAll(download.File)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Aziz Karimov")
}

func TestReportServiceCreateJobValidation(t *testing.T) {
	svc, _, repo, queue, _ := newReportFixture(t)

	_, err := svc.CreateJob(context.Background(), models.PaymentReportRequest{Format: "xlsx"}, "a1")
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.jobs)
	assert.Empty(t, queue.jobs)
}

func TestReportServiceCreateJobQueueFull(t *testing.T) {
	svc, _, repo, queue, _ := newReportFixture(t)
	queue.err = jobs.ErrQueueFull

	_, err := svc.CreateJob(context.Background(), models.PaymentReportRequest{Format: models.ReportFormatPDF}, "a1")
	assert.Equal(t, appErrors.ErrServiceUnavailable.Code, appErrors.FromError(err).Code)
	require.Len(t, repo.jobs, 1)
	for _, job := range repo.jobs {
		assert.Equal(t, models.ReportStatusFailed, job.Status)
		assert.NotNil(t, job.FinishedAt)
	}
}

func TestReportServiceGetStatusNotFound(t *testing.T) {
	svc, _, _, _, _ := newReportFixture(t)

	_, err := svc.GetStatus(context.Background(), "missing")
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestReportServiceResolveDownloadRejects(t *testing.T) {
	svc, _, repo, _, exporter := newReportFixture(t)
	ctx := context.Background()

	_, err := svc.ResolveDownload(ctx, "")
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.ResolveDownload(ctx, "garbage")
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	require.NoError(t, repo.Create(ctx, &models.ReportJob{ID: "pending", Status: models.ReportStatusProcessing}))
	token, _, err := exporter.signer.Generate("pending", "payments.csv")
	require.NoError(t, err)
	_, err = svc.ResolveDownload(ctx, token)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	other := "other.csv"
	repo.jobs["pending"].Status = models.ReportStatusFinished
	repo.jobs["pending"].FilePath = &other
	_, err = svc.ResolveDownload(ctx, token)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestReportWorkerRetriesThenFails(t *testing.T) {
	repo := newReportRepoStub()
	require.NoError(t, repo.Create(context.Background(), &models.ReportJob{ID: "job-1", Status: models.ReportStatusQueued}))
	worker := NewReportWorker(repo, failingGenerator{err: errors.New("boom")}, 2, nil, zap.NewNop())

	err := worker.Handle(context.Background(), jobs.Job{ID: "job-1", Attempt: 1})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, models.ReportStatusQueued, repo.jobs["job-1"].Status)
	assert.Equal(t, 0, repo.jobs["job-1"].Progress)

	err = worker.Handle(context.Background(), jobs.Job{ID: "job-1", Attempt: 2})
	assert.Error(t, err)
	job := repo.jobs["job-1"]
	assert.Equal(t, models.ReportStatusFailed, job.Status)
	assert.Equal(t, 100, job.Progress)
	require.NotNil(t, job.ErrorMessage)
	assert.Equal(t, "boom", *job.ErrorMessage)
	assert.NotNil(t, job.FinishedAt)
}

func TestReportWorkerIgnoresMissingJob(t *testing.T) {
	worker := NewReportWorker(newReportRepoStub(), failingGenerator{}, 1, nil, nil)
	assert.NoError(t, worker.Handle(context.Background(), jobs.Job{ID: "gone", Attempt: 1}))
}

func TestReportServiceRecoverPendingJobs(t *testing.T) {
	svc, _, repo, queue, _ := newReportFixture(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.ReportJob{ID: "q1", Status: models.ReportStatusQueued}))
	require.NoError(t, repo.Create(ctx, &models.ReportJob{ID: "done", Status: models.ReportStatusFinished}))

	assert.Equal(t, 1, svc.RecoverPendingJobs(ctx))
	require.Len(t, queue.jobs, 1)
	assert.Equal(t, "q1", queue.jobs[0].ID)
}

func TestReportServiceCleanupExpired(t *testing.T) {
	svc, worker, repo, _, exporter := newReportFixture(t)
	ctx := context.Background()

	resp, err := svc.CreateJob(ctx, models.PaymentReportRequest{Format: models.ReportFormatCSV}, "a1")
	require.NoError(t, err)
	require.NoError(t, worker.Handle(ctx, jobs.Job{ID: resp.ID, Attempt: 1}))

	relPath := *repo.jobs[resp.ID].FilePath
	assert.Equal(t, 0, svc.CleanupExpired(ctx))

	old := time.Now().UTC().Add(-2 * time.Hour)
	repo.jobs[resp.ID].FinishedAt = &old
	assert.Equal(t, 1, svc.CleanupExpired(ctx))
	assert.Equal(t, []string{resp.ID}, repo.cleared)
	assert.Nil(t, repo.jobs[resp.ID].FilePath)
	_, err = exporter.Open(relPath)
	assert.Error(t, err)
}
