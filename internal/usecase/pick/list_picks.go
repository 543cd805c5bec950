package pick

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
)

type ListPicksInput struct {
	JobID    int64
	ClientID int64
}

// ListPicksUseCase показывает откликнувшихся фрилансеров только заказчику задания.
// Чужое задание неотличимо от отсутствующего.
type ListPicksUseCase struct {
	jobRepo  repository.JobRepository
	pickRepo repository.PickRepository
}

func NewListPicksUseCase(jobRepo repository.JobRepository, pickRepo repository.PickRepository) *ListPicksUseCase {
	return &ListPicksUseCase{jobRepo: jobRepo, pickRepo: pickRepo}
}

func (uc *ListPicksUseCase) Execute(ctx context.Context, input ListPicksInput) ([]entity.UserSummary, error) {
	job, err := uc.jobRepo.FindByIDAndClient(ctx, input.JobID, input.ClientID)
	if err != nil {
		return nil, err
	}
	return uc.pickRepo.ListFreelancers(ctx, job.ID)
}
