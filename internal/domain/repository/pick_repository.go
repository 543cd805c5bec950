package repository

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
)

type PickRepository interface {
	// Create атомарно проверяет уникальность пары (задание, фрилансер)
	// и возвращает apperror.ErrAlreadyPicked при повторе.
	Create(ctx context.Context, pick *entity.JobPick) error
	Exists(ctx context.Context, jobID, freelancerID int64) (bool, error)
	ListFreelancers(ctx context.Context, jobID int64) ([]entity.UserSummary, error)
}
