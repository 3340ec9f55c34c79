package repository

import (
	"context"
	"encoding/json"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

type JobsRepo struct {
	pool *pgxpool.Pool
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

// Save upserts the job; the processor calls it at every status change.
func (r *JobsRepo) Save(ctx context.Context, j *domain.RenderJob) error {
	metaB, err := json.Marshal(j.Metadata)
	if err != nil {
		return errors.Wrap(err, "marshal job metadata")
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO render_jobs (id, user_id, resume_id, template, status, metadata, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at`,
		j.ID, j.UserID, j.ResumeID, j.Template, string(j.Status), metaB, j.CreatedAt, j.UpdatedAt)
	return errors.Wrap(err, "upsert render job")
}

func (r *JobsRepo) Get(ctx context.Context, id uuid.UUID) (domain.RenderJob, error) {
	var (
		j      domain.RenderJob
		status string
		metaB  []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, resume_id, template, status, metadata, created_at, updated_at
		FROM render_jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.UserID, &j.ResumeID, &j.Template, &status, &metaB, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return domain.RenderJob{}, wrap(err, "select render job")
	}
	j.Status = domain.JobStatus(status)
	j.Metadata = map[string]interface{}{}
	if len(metaB) > 0 {
		if err := json.Unmarshal(metaB, &j.Metadata); err != nil {
			return domain.RenderJob{}, errors.Wrapf(err, "decode job %s metadata", id)
		}
	}
	return j, nil
}
