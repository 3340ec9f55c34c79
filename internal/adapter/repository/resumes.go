package repository

import (
	"context"
	"encoding/json"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

type resumeRow struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Template  string
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

const resumeColumns = `id, user_id, template, data, created_at, updated_at`

func (r *ResumesRepo) Create(ctx context.Context, res *domain.Resume) error {
	data, err := json.Marshal(res.Values)
	if err != nil {
		return errors.Wrap(err, "marshal resume values")
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (`+resumeColumns+`) VALUES ($1,$2,$3,$4,$5,$6)`,
		res.ID, res.UserID, res.Template, data, res.CreatedAt, res.UpdatedAt)
	return errors.Wrap(err, "insert resume")
}

func (r *ResumesRepo) Get(ctx context.Context, id uuid.UUID) (domain.Resume, error) {
	var row resumeRow
	err := r.pool.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id).
		Scan(&row.ID, &row.UserID, &row.Template, &row.Data, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return domain.Resume{}, wrap(err, "select resume")
	}
	return row.toDomain()
}

func (r *ResumesRepo) Update(ctx context.Context, res *domain.Resume) error {
	data, err := json.Marshal(res.Values)
	if err != nil {
		return errors.Wrap(err, "marshal resume values")
	}
	tag, err := r.pool.Exec(ctx, `UPDATE resumes SET template = $2, data = $3, updated_at = $4 WHERE id = $1`,
		res.ID, res.Template, data, res.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "update resume")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ResumesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	return errors.Wrap(err, "delete resume")
}

func (r *ResumesRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Resume, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list resumes")
	}
	defer rows.Close()

	var list []resumeRow
	for rows.Next() {
		var row resumeRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.Template, &row.Data, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "scan resume")
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list resumes")
	}

	var decodeErr error
	out := slice.Map(list, func(_ int, row resumeRow) domain.Resume {
		res, err := row.toDomain()
		if err != nil && decodeErr == nil {
			decodeErr = err
		}
		return res
	})
	return out, decodeErr
}

func (row resumeRow) toDomain() (domain.Resume, error) {
	var values model.ResumeValues
	if len(row.Data) > 0 {
		if err := json.Unmarshal(row.Data, &values); err != nil {
			return domain.Resume{}, errors.Wrapf(err, "decode resume %s", row.ID)
		}
	}
	return domain.Resume{
		ID:        row.ID,
		UserID:    row.UserID,
		Template:  row.Template,
		Values:    values,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
