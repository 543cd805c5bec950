package dispute

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/infrastructure/cache"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

type OpenDisputeInput struct {
	JobID  int64
	UserID int64
}

// OpenDisputeUseCase открывает спор по принятому заданию.
// Открыть его может только заказчик или назначенный фрилансер.
type OpenDisputeUseCase struct {
	jobRepo     repository.JobRepository
	disputeRepo repository.DisputeRepository
	cache       cache.Cache
}

func NewOpenDisputeUseCase(jobRepo repository.JobRepository, disputeRepo repository.DisputeRepository, c cache.Cache) *OpenDisputeUseCase {
	return &OpenDisputeUseCase{jobRepo: jobRepo, disputeRepo: disputeRepo, cache: c}
}

func (uc *OpenDisputeUseCase) Execute(ctx context.Context, input OpenDisputeInput) (*entity.Dispute, error) {
	job, err := uc.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if !job.IsParticipant(input.UserID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "Only the job participants can open a dispute")
	}
	if job.Status != valueobject.JobStatusAccepted {
		return nil, apperror.New(apperror.ErrCodeInvalidTransition, "Dispute can only be opened for an accepted job")
	}

	dispute := entity.NewDispute(job.ID, input.UserID)
	if err := job.OpenDispute(); err != nil {
		return nil, err
	}
	if err := uc.disputeRepo.Open(ctx, dispute, job); err != nil {
		return nil, err
	}
	cache.InvalidateJobListings(ctx, uc.cache)

	return dispute, nil
}

type GetDisputeInput struct {
	JobID  int64
	UserID int64
}

type GetDisputeUseCase struct {
	jobRepo     repository.JobRepository
	disputeRepo repository.DisputeRepository
}

func NewGetDisputeUseCase(jobRepo repository.JobRepository, disputeRepo repository.DisputeRepository) *GetDisputeUseCase {
	return &GetDisputeUseCase{jobRepo: jobRepo, disputeRepo: disputeRepo}
}

func (uc *GetDisputeUseCase) Execute(ctx context.Context, input GetDisputeInput) (*entity.Dispute, error) {
	job, err := uc.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if !job.IsParticipant(input.UserID) {
		return nil, apperror.ErrForbidden
	}
	return uc.disputeRepo.FindByJobID(ctx, job.ID)
}

type ResolveDisputeInput struct {
	JobID               int64
	InFavorOfFreelancer bool
}

// ResolveDisputeUseCase вызывается оператором после решения арбитража.
type ResolveDisputeUseCase struct {
	jobRepo     repository.JobRepository
	disputeRepo repository.DisputeRepository
	cache       cache.Cache
}

func NewResolveDisputeUseCase(jobRepo repository.JobRepository, disputeRepo repository.DisputeRepository, c cache.Cache) *ResolveDisputeUseCase {
	return &ResolveDisputeUseCase{jobRepo: jobRepo, disputeRepo: disputeRepo, cache: c}
}

func (uc *ResolveDisputeUseCase) Execute(ctx context.Context, input ResolveDisputeInput) (*entity.Dispute, error) {
	job, err := uc.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	dispute, err := uc.disputeRepo.FindByJobID(ctx, job.ID)
	if err != nil {
		return nil, err
	}

	if err := dispute.Resolve(input.InFavorOfFreelancer); err != nil {
		return nil, err
	}
	if err := job.Resolve(); err != nil {
		return nil, err
	}
	if err := uc.disputeRepo.Resolve(ctx, dispute, job); err != nil {
		return nil, err
	}
	cache.InvalidateJobListings(ctx, uc.cache)

	return dispute, nil
}
