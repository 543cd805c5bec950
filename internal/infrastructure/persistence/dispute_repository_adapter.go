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

type disputeRow struct {
	ID                          int64        `db:"id"`
	JobID                       int64        `db:"job_id"`
	InitiatorID                 int64        `db:"initiator_id"`
	Resolved                    bool         `db:"resolved"`
	ResolvedInFavorOfFreelancer sql.NullBool `db:"resolved_in_favor_of_freelancer"`
	ResolutionDate              sql.NullTime `db:"resolution_date"`
	CreatedAt                   time.Time    `db:"created_at"`
	UpdatedAt                   time.Time    `db:"updated_at"`
}

func (r disputeRow) toEntity() *entity.Dispute {
	d := &entity.Dispute{
		ID:          r.ID,
		JobID:       r.JobID,
		InitiatorID: r.InitiatorID,
		Resolved:    r.Resolved,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.ResolvedInFavorOfFreelancer.Valid {
		v := r.ResolvedInFavorOfFreelancer.Bool
		d.ResolvedInFavorOfFreelancer = &v
	}
	if r.ResolutionDate.Valid {
		t := r.ResolutionDate.Time
		d.ResolutionDate = &t
	}
	return d
}

type DisputeRepositoryAdapter struct {
	db *sqlx.DB
}

func NewDisputeRepositoryAdapter(db *sqlx.DB) *DisputeRepositoryAdapter {
	return &DisputeRepositoryAdapter{db: db}
}

// updateJobStatusQuery меняет статус задания только из ожидаемого предыдущего.
const updateJobStatusQuery = `UPDATE jobs SET status = $2, updated_at = $3 WHERE id = $1 AND status = $4`

func updateJobStatus(ctx context.Context, tx *sqlx.Tx, job *entity.Job) error {
	result, err := tx.ExecContext(ctx, updateJobStatusQuery,
		job.ID, string(job.Status), job.UpdatedAt, string(job.PreviousStatus()))
	if err != nil {
		return err
	}
	return checkStatusGuard(result)
}

func (r *DisputeRepositoryAdapter) Open(ctx context.Context, dispute *entity.Dispute, job *entity.Job) error {
	err := withTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO disputes (job_id, initiator_id, resolved, created_at, updated_at)
			VALUES ($1, $2, FALSE, $3, $4)
			RETURNING id
		`
		if err := tx.QueryRowxContext(ctx, query,
			dispute.JobID, dispute.InitiatorID, dispute.CreatedAt, dispute.UpdatedAt,
		).Scan(&dispute.ID); err != nil {
			return err
		}

		return updateJobStatus(ctx, tx, job)
	})
	if isUniqueViolation(err, "") {
		return apperror.ErrDisputeExists
	}
	if errors.Is(err, apperror.ErrJobStatusChanged) {
		return err
	}
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось открыть спор")
	}
	return nil
}

func (r *DisputeRepositoryAdapter) FindByJobID(ctx context.Context, jobID int64) (*entity.Dispute, error) {
	query := `
		SELECT id, job_id, initiator_id, resolved, resolved_in_favor_of_freelancer,
		       resolution_date, created_at, updated_at
		FROM disputes
		WHERE job_id = $1
	`

	var row disputeRow
	err := r.db.GetContext(ctx, &row, query, jobID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrDisputeNotFound
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить спор")
	}
	return row.toEntity(), nil
}

func (r *DisputeRepositoryAdapter) Resolve(ctx context.Context, dispute *entity.Dispute, job *entity.Job) error {
	err := withTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE disputes
			SET resolved = $2, resolved_in_favor_of_freelancer = $3, resolution_date = $4, updated_at = $5
			WHERE id = $1
		`
		if _, err := tx.ExecContext(ctx, query,
			dispute.ID,
			dispute.Resolved,
			dispute.ResolvedInFavorOfFreelancer,
			dispute.ResolutionDate,
			dispute.UpdatedAt,
		); err != nil {
			return err
		}

		return updateJobStatus(ctx, tx, job)
	})
	if errors.Is(err, apperror.ErrJobStatusChanged) {
		return err
	}
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось закрыть спор")
	}
	return nil
}
