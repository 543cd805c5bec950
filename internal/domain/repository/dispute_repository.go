package repository

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
)

type DisputeRepository interface {
	// Open сохраняет спор и новый статус задания в одной транзакции.
	Open(ctx context.Context, dispute *entity.Dispute, job *entity.Job) error
	FindByJobID(ctx context.Context, jobID int64) (*entity.Dispute, error)
	Resolve(ctx context.Context, dispute *entity.Dispute, job *entity.Job) error
}
