package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

type jobTypeRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r jobTypeRow) toEntity() *entity.JobType {
	return &entity.JobType{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type JobTypeRepositoryAdapter struct {
	db *sqlx.DB
}

func NewJobTypeRepositoryAdapter(db *sqlx.DB) *JobTypeRepositoryAdapter {
	return &JobTypeRepositoryAdapter{db: db}
}

const jobTypeColumns = `id, name, COALESCE(description, '') AS description, created_at, updated_at`

func (r *JobTypeRepositoryAdapter) FindByID(ctx context.Context, id int64) (*entity.JobType, error) {
	var row jobTypeRow
	err := r.db.GetContext(ctx, &row, `SELECT `+jobTypeColumns+` FROM job_types WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrInvalidJobType
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить тип задания")
	}
	return row.toEntity(), nil
}

func (r *JobTypeRepositoryAdapter) List(ctx context.Context) ([]*entity.JobType, error) {
	var rows []jobTypeRow
	query := `SELECT ` + jobTypeColumns + ` FROM job_types ORDER BY created_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить типы заданий")
	}

	result := make([]*entity.JobType, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}
	return result, nil
}
