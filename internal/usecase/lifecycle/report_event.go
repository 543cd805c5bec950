package lifecycle

import (
	"context"
	"strings"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/infrastructure/cache"
	"github.com/ignatzorin/web3-freelance/internal/metrics"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

// События смарт-контракта, которые сообщает обходчик.
const (
	EventCreated   = "created"
	EventAccepted  = "accepted"
	EventCompleted = "completed"
)

type ReportEventInput struct {
	JobID            int64
	Event            string
	TxHash           string
	ClientWallet     string
	FreelancerWallet string
}

// ReportEventUseCase двигает задание по жизненному циклу по событиям из сети.
// Хэши транзакций хранятся как есть и не проверяются.
// Повтор уже применённого события с тем же хэшем ничего не меняет.
type ReportEventUseCase struct {
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	cache    cache.Cache
}

func NewReportEventUseCase(jobRepo repository.JobRepository, userRepo repository.UserRepository, c cache.Cache) *ReportEventUseCase {
	return &ReportEventUseCase{jobRepo: jobRepo, userRepo: userRepo, cache: c}
}

func (uc *ReportEventUseCase) Execute(ctx context.Context, input ReportEventInput) (*entity.Job, error) {
	job, err := uc.apply(ctx, input)
	metrics.ObserveLifecycleEvent(input.Event, err == nil)
	return job, err
}

func (uc *ReportEventUseCase) apply(ctx context.Context, input ReportEventInput) (*entity.Job, error) {
	txHash := strings.TrimSpace(input.TxHash)
	if txHash == "" {
		return nil, apperror.Validation("tx_hash is required")
	}

	job, err := uc.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}

	switch input.Event {
	case EventCreated:
		if sameHash(job.TransactionCreate, txHash) {
			return job, nil
		}
		if err := uc.checkClient(ctx, job, input.ClientWallet); err != nil {
			return nil, err
		}
		err = job.MarkPushed(txHash)
	case EventAccepted:
		if sameHash(job.TransactionAcceptJob, txHash) {
			return job, nil
		}
		freelancer, ferr := uc.findByWallet(ctx, input.FreelancerWallet)
		if ferr != nil {
			return nil, ferr
		}
		err = job.Accept(freelancer.ID, txHash)
	case EventCompleted:
		if sameHash(job.TransactionCompleteJob, txHash) {
			return job, nil
		}
		err = job.Complete(txHash)
	default:
		return nil, apperror.Validation("Unknown event: " + input.Event)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	cache.InvalidateJobListings(ctx, uc.cache)

	return uc.jobRepo.FindByID(ctx, job.ID)
}

func (uc *ReportEventUseCase) checkClient(ctx context.Context, job *entity.Job, rawWallet string) error {
	client, err := uc.findByWallet(ctx, rawWallet)
	if err != nil {
		return err
	}
	if !job.IsOwnedBy(client.ID) {
		return apperror.Validation("client_wallet does not match the job client")
	}
	return nil
}

func (uc *ReportEventUseCase) findByWallet(ctx context.Context, raw string) (*entity.User, error) {
	wallet, err := valueobject.NewWalletAddress(raw)
	if err != nil {
		return nil, err
	}
	return uc.userRepo.FindByWallet(ctx, wallet.String())
}

func sameHash(stored *string, txHash string) bool {
	return stored != nil && strings.EqualFold(*stored, txHash)
}
