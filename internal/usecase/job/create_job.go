package job

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/infrastructure/cache"
	"github.com/ignatzorin/web3-freelance/internal/metrics"
	"github.com/ignatzorin/web3-freelance/internal/validation"
)

type CreateJobInput struct {
	ClientID    int64
	Title       string
	Description string
	Info        string
	Amount      valueobject.Amount
	JobTypeID   int64
	Image       string
}

type CreateJobUseCase struct {
	jobRepo     repository.JobRepository
	jobTypeRepo repository.JobTypeRepository
	cache       cache.Cache
}

func NewCreateJobUseCase(jobRepo repository.JobRepository, jobTypeRepo repository.JobTypeRepository, c cache.Cache) *CreateJobUseCase {
	return &CreateJobUseCase{jobRepo: jobRepo, jobTypeRepo: jobTypeRepo, cache: c}
}

func (uc *CreateJobUseCase) Execute(ctx context.Context, input CreateJobInput) (*entity.Job, error) {
	if err := validation.ValidateJobText(input.Title, input.Description, input.Info); err != nil {
		return nil, err
	}

	if _, err := uc.jobTypeRepo.FindByID(ctx, input.JobTypeID); err != nil {
		return nil, err
	}

	job, err := entity.NewJob(input.ClientID, input.Title, input.Description, input.Info, input.Amount, input.JobTypeID, input.Image)
	if err != nil {
		return nil, err
	}

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	metrics.JobCreated()
	cache.InvalidateJobListings(ctx, uc.cache)

	// Перечитываем, чтобы вернуть заказчика и тип задания.
	return uc.jobRepo.FindByID(ctx, job.ID)
}
