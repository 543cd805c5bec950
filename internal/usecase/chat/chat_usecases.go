package chat

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/metrics"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
	"github.com/ignatzorin/web3-freelance/internal/usecase/access"
)

type SendMessageInput struct {
	JobID           int64
	SenderID        int64
	ReceiverAddress string
	Content         string
}

// SendMessageUseCase добавляет сообщение в переписку по заданию.
type SendMessageUseCase struct {
	userRepo repository.UserRepository
	jobRepo  repository.JobRepository
	chatRepo repository.ChatRepository
	guard    *access.Guard
}

func NewSendMessageUseCase(
	userRepo repository.UserRepository,
	jobRepo repository.JobRepository,
	chatRepo repository.ChatRepository,
	guard *access.Guard,
) *SendMessageUseCase {
	return &SendMessageUseCase{userRepo: userRepo, jobRepo: jobRepo, chatRepo: chatRepo, guard: guard}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*entity.ChatMessage, error) {
	receiver, err := uc.findReceiver(ctx, input.ReceiverAddress)
	if err != nil {
		return nil, err
	}

	job, err := uc.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if err := uc.guard.RequireChatAccess(ctx, input.SenderID, job); err != nil {
		return nil, err
	}

	msg, err := entity.NewChatMessage(job.ID, input.SenderID, receiver.ID, input.Content)
	if err != nil {
		return nil, err
	}
	if err := uc.chatRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	metrics.ChatMessageStored()
	return msg, nil
}

func (uc *SendMessageUseCase) findReceiver(ctx context.Context, raw string) (*entity.User, error) {
	wallet, err := valueobject.NewWalletAddress(raw)
	if err != nil {
		return nil, apperror.ErrRecipientNotFound
	}
	receiver, err := uc.userRepo.FindByWallet(ctx, wallet.String())
	if apperror.IsNotFound(err) {
		return nil, apperror.ErrRecipientNotFound
	}
	return receiver, err
}

type ListMessagesInput struct {
	JobID       int64
	RequesterID int64
	UserA       string
	UserB       string
}

// ListMessagesUseCase отдаёт переписку по заданию в хронологическом порядке.
// Фильтр по паре кошельков применяется, только если заданы оба.
type ListMessagesUseCase struct {
	jobRepo  repository.JobRepository
	chatRepo repository.ChatRepository
	guard    *access.Guard
}

func NewListMessagesUseCase(jobRepo repository.JobRepository, chatRepo repository.ChatRepository, guard *access.Guard) *ListMessagesUseCase {
	return &ListMessagesUseCase{jobRepo: jobRepo, chatRepo: chatRepo, guard: guard}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, input ListMessagesInput) ([]entity.ChatMessageView, error) {
	job, err := uc.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if err := uc.guard.RequireChatAccess(ctx, input.RequesterID, job); err != nil {
		return nil, err
	}

	filter := repository.ChatFilter{JobID: job.ID}
	if input.UserA != "" && input.UserB != "" {
		a, err := valueobject.NewWalletAddress(input.UserA)
		if err != nil {
			return nil, err
		}
		b, err := valueobject.NewWalletAddress(input.UserB)
		if err != nil {
			return nil, err
		}
		filter.WalletA, filter.WalletB = a.String(), b.String()
	}

	return uc.chatRepo.List(ctx, filter)
}
