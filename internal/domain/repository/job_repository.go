package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	Update(ctx context.Context, job *entity.Job) error
	// Delete удаляет задание вместе с откликами, сообщениями и спором.
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entity.Job, error)
	FindByIDAndClient(ctx context.Context, id, clientID int64) (*entity.Job, error)
	List(ctx context.Context, filter JobFilter) ([]*entity.Job, error)
	ListByClient(ctx context.Context, clientID int64) ([]*entity.Job, error)
	// ListByFreelancer возвращает задания, где пользователь назначен или откликнулся, без повторов.
	ListByFreelancer(ctx context.Context, userID int64) ([]*entity.Job, error)
	ListCompletedByFreelancer(ctx context.Context, userID int64) ([]*entity.Job, error)
}

type JobFilter struct {
	JobTypeID     *int64
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	Status        *valueobject.JobStatus
	ExcludeStatus *valueobject.JobStatus
	Search        string
	Limit         int
}

type JobTypeRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.JobType, error)
	List(ctx context.Context) ([]*entity.JobType, error)
}
