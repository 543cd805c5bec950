package dto

import (
	"time"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
)

type LoginRequest struct {
	WalletAddress string `json:"wallet_address"`
}

type LoginResponse struct {
	Token         string    `json:"token"`
	ExpiresAt     time.Time `json:"expires_at"`
	Username      string    `json:"username"`
	WalletAddress string    `json:"wallet_address"`
	Image         string    `json:"image"`
	Name          string    `json:"name"`
}

func ToLoginResponse(token string, expiresAt time.Time, user *entity.User) LoginResponse {
	return LoginResponse{
		Token:         token,
		ExpiresAt:     expiresAt,
		Username:      user.DisplayUsername(),
		WalletAddress: user.WalletAddress,
		Image:         user.Image,
		Name:          user.Name,
	}
}

// UpdateProfileRequest: отсутствующее поле и null одинаково означают "не менять".
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	Image     *string `json:"image"`
	Facebook  *string `json:"facebook"`
	Twitter   *string `json:"twitter"`
	Linkedin  *string `json:"linkedin"`
	Github    *string `json:"github"`
	Instagram *string `json:"instagram"`
}

func (r UpdateProfileRequest) ToPatch() entity.ProfilePatch {
	return entity.ProfilePatch{
		Name:      valueobject.FromPtr(r.Name),
		Bio:       valueobject.FromPtr(r.Bio),
		Image:     valueobject.FromPtr(r.Image),
		Facebook:  valueobject.FromPtr(r.Facebook),
		Twitter:   valueobject.FromPtr(r.Twitter),
		Linkedin:  valueobject.FromPtr(r.Linkedin),
		Github:    valueobject.FromPtr(r.Github),
		Instagram: valueobject.FromPtr(r.Instagram),
	}
}

type UserInfoResponse struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	WalletAddress string    `json:"wallet_address"`
	Email         *string   `json:"email"`
	Name          string    `json:"name"`
	Bio           string    `json:"bio"`
	Image         string    `json:"image"`
	Facebook      string    `json:"facebook"`
	Twitter       string    `json:"twitter"`
	Linkedin      string    `json:"linkedin"`
	Github        string    `json:"github"`
	Instagram     string    `json:"instagram"`
	DateJoined    time.Time `json:"date_joined"`
}

func ToUserInfoResponse(user *entity.User) UserInfoResponse {
	return UserInfoResponse{
		ID:            user.ID,
		Username:      user.DisplayUsername(),
		WalletAddress: user.WalletAddress,
		Email:         user.Email,
		Name:          user.Name,
		Bio:           user.Bio,
		Image:         user.Image,
		Facebook:      user.SocialLinks.Facebook,
		Twitter:       user.SocialLinks.Twitter,
		Linkedin:      user.SocialLinks.Linkedin,
		Github:        user.SocialLinks.Github,
		Instagram:     user.SocialLinks.Instagram,
		DateJoined:    user.DateJoined,
	}
}

type UpdateProfileResponse struct {
	Message string           `json:"message"`
	User    UserInfoResponse `json:"user"`
}

type UserSummaryDTO struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	WalletAddress string `json:"wallet_address"`
	Name          string `json:"name"`
	Image         string `json:"image"`
}

func ToUserSummaryDTO(u *entity.UserSummary) *UserSummaryDTO {
	if u == nil {
		return nil
	}
	return &UserSummaryDTO{
		ID:            u.ID,
		Username:      u.Username,
		WalletAddress: u.WalletAddress,
		Name:          u.Name,
		Image:         u.Image,
	}
}

// FreelancerProfileDTO - профиль откликнувшегося фрилансера.
type FreelancerProfileDTO struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	WalletAddress string `json:"wallet_address"`
	Name          string `json:"name"`
	Bio           string `json:"bio"`
	Image         string `json:"image"`
}

func ToFreelancerProfiles(users []entity.UserSummary) []FreelancerProfileDTO {
	out := make([]FreelancerProfileDTO, 0, len(users))
	for _, u := range users {
		out = append(out, FreelancerProfileDTO{
			ID:            u.ID,
			Username:      u.Username,
			WalletAddress: u.WalletAddress,
			Name:          u.Name,
			Bio:           u.Bio,
			Image:         u.Image,
		})
	}
	return out
}

type TopFreelancerDTO struct {
	ID                 int64  `json:"id"`
	Username           string `json:"username"`
	Name               string `json:"name"`
	Image              string `json:"image"`
	WalletAddress      string `json:"wallet_address"`
	CompletedJobsCount int64  `json:"completed_jobs_count"`
}

func ToTopFreelancers(ranks []entity.FreelancerRank) []TopFreelancerDTO {
	out := make([]TopFreelancerDTO, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, TopFreelancerDTO{
			ID:                 r.User.ID,
			Username:           r.User.Username,
			Name:               r.User.Name,
			Image:              r.User.Image,
			WalletAddress:      r.User.WalletAddress,
			CompletedJobsCount: r.CompletedJobsCount,
		})
	}
	return out
}
