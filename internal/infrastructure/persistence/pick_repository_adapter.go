package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

const pickUniqueConstraint = "job_picks_job_freelancer_key"

type PickRepositoryAdapter struct {
	db *sqlx.DB
}

func NewPickRepositoryAdapter(db *sqlx.DB) *PickRepositoryAdapter {
	return &PickRepositoryAdapter{db: db}
}

// Create полагается на уникальный индекс (job_id, freelancer_id), поэтому
// два одновременных отклика одного фрилансера не пройдут оба.
func (r *PickRepositoryAdapter) Create(ctx context.Context, pick *entity.JobPick) error {
	query := `
		INSERT INTO job_picks (job_id, freelancer_id, picked_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query, pick.JobID, pick.FreelancerID, pick.PickedAt).Scan(&pick.ID)
	if isUniqueViolation(err, pickUniqueConstraint) {
		return apperror.ErrAlreadyPicked
	}
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить отклик")
	}
	return nil
}

func (r *PickRepositoryAdapter) Exists(ctx context.Context, jobID, freelancerID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM job_picks WHERE job_id = $1 AND freelancer_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, jobID, freelancerID); err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось проверить отклик")
	}
	return exists, nil
}

type pickedFreelancerRow struct {
	ID            int64  `db:"id"`
	Username      string `db:"username"`
	WalletAddress string `db:"wallet_address"`
	Name          string `db:"name"`
	Bio           string `db:"bio"`
	Image         string `db:"image"`
}

func (r *PickRepositoryAdapter) ListFreelancers(ctx context.Context, jobID int64) ([]entity.UserSummary, error) {
	query := `
		SELECT u.id, COALESCE(u.username, '') AS username, u.wallet_address,
		       COALESCE(u.name, '') AS name, COALESCE(u.bio, '') AS bio, u.image
		FROM job_picks p
		JOIN users u ON u.id = p.freelancer_id
		WHERE p.job_id = $1
		ORDER BY p.picked_at ASC, p.id ASC
	`

	var rows []pickedFreelancerRow
	if err := r.db.SelectContext(ctx, &rows, query, jobID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить отклики")
	}

	result := make([]entity.UserSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.UserSummary{
			ID:            row.ID,
			Username:      row.Username,
			WalletAddress: row.WalletAddress,
			Name:          row.Name,
			Bio:           row.Bio,
			Image:         row.Image,
		})
	}
	return result, nil
}
