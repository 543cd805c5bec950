package repository

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByWallet(ctx context.Context, wallet string) (*entity.User, error)
	// CreateIfNotExists вставляет пользователя или возвращает уже существующего
	// с тем же адресом кошелька.
	CreateIfNotExists(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	TopFreelancers(ctx context.Context, limit int) ([]entity.FreelancerRank, error)
}
