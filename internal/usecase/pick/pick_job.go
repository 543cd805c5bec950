package pick

import (
	"context"
	"errors"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/metrics"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

type PickJobInput struct {
	JobID        int64
	FreelancerID int64
}

// PickJobUseCase записывает отклик фрилансера на задание.
// Повторный отклик отсекает уникальный индекс в хранилище, а не предварительная проверка.
type PickJobUseCase struct {
	jobRepo  repository.JobRepository
	pickRepo repository.PickRepository
}

func NewPickJobUseCase(jobRepo repository.JobRepository, pickRepo repository.PickRepository) *PickJobUseCase {
	return &PickJobUseCase{jobRepo: jobRepo, pickRepo: pickRepo}
}

func (uc *PickJobUseCase) Execute(ctx context.Context, input PickJobInput) (*entity.Job, error) {
	job, err := uc.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}

	if job.IsAssignedTo(input.FreelancerID) {
		metrics.ObservePick("already_assigned")
		return nil, apperror.ErrAlreadyAssigned
	}

	if err := uc.pickRepo.Create(ctx, entity.NewJobPick(job.ID, input.FreelancerID)); err != nil {
		if errors.Is(err, apperror.ErrAlreadyPicked) {
			metrics.ObservePick("already_picked")
		} else {
			metrics.ObservePick("error")
		}
		return nil, err
	}

	metrics.ObservePick("ok")
	return job, nil
}

// SuccessMessage - текст ответа на успешный отклик.
func SuccessMessage(job *entity.Job) string {
	return "You have successfully picked the job: " + job.Title
}
