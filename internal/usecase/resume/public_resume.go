package resume

import (
	"context"
	"time"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

type CompletedProject struct {
	ID          int64
	Title       string
	Amount      valueobject.Amount
	Description string
	CompletedAt time.Time
}

// Resume - публичное резюме фрилансера.
type Resume struct {
	User              *entity.User
	CompletedProjects []CompletedProject
	TotalIncome       valueobject.Amount
}

type PublicResumeUseCase struct {
	userRepo repository.UserRepository
	jobRepo  repository.JobRepository
}

func NewPublicResumeUseCase(userRepo repository.UserRepository, jobRepo repository.JobRepository) *PublicResumeUseCase {
	return &PublicResumeUseCase{userRepo: userRepo, jobRepo: jobRepo}
}

func (uc *PublicResumeUseCase) Execute(ctx context.Context, walletAddress string) (*Resume, error) {
	wallet, err := valueobject.NewWalletAddress(walletAddress)
	if err != nil {
		// Некорректный адрес не может принадлежать пользователю.
		return nil, apperror.ErrUserNotFound
	}

	user, err := uc.userRepo.FindByWallet(ctx, wallet.String())
	if err != nil {
		return nil, err
	}

	jobs, err := uc.jobRepo.ListCompletedByFreelancer(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resume := &Resume{
		User:              user,
		CompletedProjects: make([]CompletedProject, 0, len(jobs)),
		TotalIncome:       valueobject.ZeroAmount(),
	}
	for _, job := range jobs {
		resume.CompletedProjects = append(resume.CompletedProjects, CompletedProject{
			ID:          job.ID,
			Title:       job.Title,
			Amount:      job.Amount,
			Description: job.Description,
			CompletedAt: job.UpdatedAt,
		})
		resume.TotalIncome = resume.TotalIncome.Add(job.Amount)
	}
	return resume, nil
}
