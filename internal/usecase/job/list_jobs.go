package job

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/infrastructure/cache"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
	"github.com/ignatzorin/web3-freelance/internal/validation"
)

// Размер публичных подборок на главной странице.
const (
	NewestJobsLimit     = 6
	TopFreelancersLimit = 6
)

type ListJobsInput struct {
	JobTypeID *int64
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Status    string
	Search    string
}

// ListJobsUseCase ищет задания по необязательным фильтрам, объединённым через AND.
type ListJobsUseCase struct {
	jobRepo repository.JobRepository
}

func NewListJobsUseCase(jobRepo repository.JobRepository) *ListJobsUseCase {
	return &ListJobsUseCase{jobRepo: jobRepo}
}

func (uc *ListJobsUseCase) Execute(ctx context.Context, input ListJobsInput) ([]*entity.Job, error) {
	filter := repository.JobFilter{
		JobTypeID: input.JobTypeID,
		MinAmount: input.MinAmount,
		MaxAmount: input.MaxAmount,
		Search:    strings.TrimSpace(input.Search),
	}

	if input.Status != "" {
		status, err := valueobject.NewJobStatus(strings.ToUpper(input.Status))
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	if err := validation.ValidateLength("search", filter.Search, 0, validation.MaxSearchQueryLength); err != nil {
		return nil, err
	}
	if filter.MinAmount != nil && filter.MaxAmount != nil && filter.MinAmount.GreaterThan(*filter.MaxAmount) {
		return nil, apperror.Validation("min_amount cannot be greater than max_amount")
	}

	return uc.jobRepo.List(ctx, filter)
}

type ListClientJobsUseCase struct {
	jobRepo repository.JobRepository
}

func NewListClientJobsUseCase(jobRepo repository.JobRepository) *ListClientJobsUseCase {
	return &ListClientJobsUseCase{jobRepo: jobRepo}
}

func (uc *ListClientJobsUseCase) Execute(ctx context.Context, clientID int64) ([]*entity.Job, error) {
	return uc.jobRepo.ListByClient(ctx, clientID)
}

// ListFreelancerJobsUseCase возвращает задания, где пользователь назначен или откликнулся.
type ListFreelancerJobsUseCase struct {
	jobRepo repository.JobRepository
}

func NewListFreelancerJobsUseCase(jobRepo repository.JobRepository) *ListFreelancerJobsUseCase {
	return &ListFreelancerJobsUseCase{jobRepo: jobRepo}
}

func (uc *ListFreelancerJobsUseCase) Execute(ctx context.Context, userID int64) ([]*entity.Job, error) {
	return uc.jobRepo.ListByFreelancer(ctx, userID)
}

// ListNewestJobsUseCase - последние задания, уже отправленные в сеть.
type ListNewestJobsUseCase struct {
	jobRepo repository.JobRepository
	cache   cache.Cache
	ttl     time.Duration
}

func NewListNewestJobsUseCase(jobRepo repository.JobRepository, c cache.Cache, ttl time.Duration) *ListNewestJobsUseCase {
	return &ListNewestJobsUseCase{jobRepo: jobRepo, cache: c, ttl: ttl}
}

func (uc *ListNewestJobsUseCase) Execute(ctx context.Context) ([]*entity.Job, error) {
	return cache.GetOrSet(ctx, uc.cache, cache.NewestJobsKey, uc.ttl, func() ([]*entity.Job, error) {
		excluded := valueobject.JobStatusNew
		return uc.jobRepo.List(ctx, repository.JobFilter{
			ExcludeStatus: &excluded,
			Limit:         NewestJobsLimit,
		})
	})
}

type TopFreelancersUseCase struct {
	userRepo repository.UserRepository
	cache    cache.Cache
	ttl      time.Duration
}

func NewTopFreelancersUseCase(userRepo repository.UserRepository, c cache.Cache, ttl time.Duration) *TopFreelancersUseCase {
	return &TopFreelancersUseCase{userRepo: userRepo, cache: c, ttl: ttl}
}

func (uc *TopFreelancersUseCase) Execute(ctx context.Context) ([]entity.FreelancerRank, error) {
	return cache.GetOrSet(ctx, uc.cache, cache.TopFreelancersKey, uc.ttl, func() ([]entity.FreelancerRank, error) {
		return uc.userRepo.TopFreelancers(ctx, TopFreelancersLimit)
	})
}

type ListJobTypesUseCase struct {
	jobTypeRepo repository.JobTypeRepository
}

func NewListJobTypesUseCase(jobTypeRepo repository.JobTypeRepository) *ListJobTypesUseCase {
	return &ListJobTypesUseCase{jobTypeRepo: jobTypeRepo}
}

func (uc *ListJobTypesUseCase) Execute(ctx context.Context) ([]*entity.JobType, error) {
	return uc.jobTypeRepo.List(ctx)
}
