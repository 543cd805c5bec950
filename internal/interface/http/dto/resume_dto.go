package dto

import (
	"time"

	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/usecase/resume"
)

type CompletedProjectDTO struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Amount      valueobject.Amount `json:"amount"`
	Description string             `json:"description"`
	CompletedAt time.Time          `json:"completed_at"`
}

type ResumeResponse struct {
	ID                int64                 `json:"id"`
	Username          string                `json:"username"`
	Name              string                `json:"name"`
	Email             *string               `json:"email"`
	Bio               string                `json:"bio"`
	Image             string                `json:"image"`
	WalletAddress     string                `json:"wallet_address"`
	DateJoined        time.Time             `json:"date_joined"`
	SocialLinks       map[string]string     `json:"social_links"`
	CompletedProjects []CompletedProjectDTO `json:"completed_projects"`
	TotalIncome       valueobject.Amount    `json:"total_income"`
}

func ToResumeResponse(r *resume.Resume) ResumeResponse {
	projects := make([]CompletedProjectDTO, 0, len(r.CompletedProjects))
	for _, p := range r.CompletedProjects {
		projects = append(projects, CompletedProjectDTO{
			ID:          p.ID,
			Title:       p.Title,
			Amount:      p.Amount,
			Description: p.Description,
			CompletedAt: p.CompletedAt,
		})
	}

	return ResumeResponse{
		ID:                r.User.ID,
		Username:          r.User.DisplayUsername(),
		Name:              r.User.Name,
		Email:             r.User.Email,
		Bio:               r.User.Bio,
		Image:             r.User.Image,
		WalletAddress:     r.User.WalletAddress,
		DateJoined:        r.User.DateJoined,
		SocialLinks:       r.User.SocialLinks.AsMap(),
		CompletedProjects: projects,
		TotalIncome:       r.TotalIncome,
	}
}
