package account

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/validation"
)

type GetUserInfoUseCase struct {
	userRepo repository.UserRepository
}

func NewGetUserInfoUseCase(userRepo repository.UserRepository) *GetUserInfoUseCase {
	return &GetUserInfoUseCase{userRepo: userRepo}
}

func (uc *GetUserInfoUseCase) Execute(ctx context.Context, userID int64) (*entity.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}

type UpdateProfileInput struct {
	UserID int64
	Patch  entity.ProfilePatch
}

// UpdateProfileUseCase применяет только заданные поля профиля.
type UpdateProfileUseCase struct {
	userRepo repository.UserRepository
}

func NewUpdateProfileUseCase(userRepo repository.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*entity.User, error) {
	if err := validation.ValidateProfilePatch(input.Patch); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if input.Patch.IsEmpty() {
		return user, nil
	}

	user.Apply(input.Patch)
	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
