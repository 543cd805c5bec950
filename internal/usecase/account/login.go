package account

import (
	"context"
	"time"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

// TokenIssuer выпускает токен доступа для пользователя.
type TokenIssuer interface {
	Issue(user *entity.User) (string, time.Time, error)
}

type LoginInput struct {
	WalletAddress string
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// LoginUseCase находит или создаёт пользователя по кошельку и выдаёт токен.
type LoginUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

func NewLoginUseCase(userRepo repository.UserRepository, tokens TokenIssuer) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, tokens: tokens}
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	wallet, err := valueobject.NewWalletAddress(input.WalletAddress)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.CreateIfNotExists(ctx, entity.NewUser(wallet))
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperror.ErrAccountDisabled
	}

	token, exp, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось выпустить токен")
	}

	return &LoginOutput{Token: token, ExpiresAt: exp, User: user}, nil
}
