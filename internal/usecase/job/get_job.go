package job

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/infrastructure/cache"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

type GetJobUseCase struct {
	jobRepo repository.JobRepository
}

func NewGetJobUseCase(jobRepo repository.JobRepository) *GetJobUseCase {
	return &GetJobUseCase{jobRepo: jobRepo}
}

func (uc *GetJobUseCase) Execute(ctx context.Context, jobID int64) (*entity.Job, error) {
	return uc.jobRepo.FindByID(ctx, jobID)
}

type DeleteJobInput struct {
	JobID    int64
	ClientID int64
}

// DeleteJobUseCase удаляет задание заказчика, пока оно не отправлено в сеть.
type DeleteJobUseCase struct {
	jobRepo repository.JobRepository
	cache   cache.Cache
}

func NewDeleteJobUseCase(jobRepo repository.JobRepository, c cache.Cache) *DeleteJobUseCase {
	return &DeleteJobUseCase{jobRepo: jobRepo, cache: c}
}

func (uc *DeleteJobUseCase) Execute(ctx context.Context, input DeleteJobInput) error {
	job, err := uc.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return err
	}
	if !job.IsOwnedBy(input.ClientID) {
		return apperror.New(apperror.ErrCodeForbidden, "Only the client can delete this job")
	}
	if !job.CanBeDeleted() {
		return apperror.New(apperror.ErrCodeInvalidTransition, "Only jobs in NEW status can be deleted")
	}

	if err := uc.jobRepo.Delete(ctx, job.ID); err != nil {
		return err
	}
	cache.InvalidateJobListings(ctx, uc.cache)
	return nil
}
