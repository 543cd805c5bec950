package entity

import (
	"time"

	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
)

// DefaultImage подставляется, когда пользователь или задание не указали картинку.
const DefaultImage = "https://placehold.co/150x150"

// DefaultUsernamePrefix - префикс имени для пользователей, созданных при первом входе.
const DefaultUsernamePrefix = "User_"

type User struct {
	ID            int64
	WalletAddress string
	Username      *string
	Email         *string
	Name          string
	Bio           string
	Image         string
	SocialLinks   SocialLinks
	IsActive      bool
	DateJoined    time.Time
}

type SocialLinks struct {
	Facebook  string
	Twitter   string
	Linkedin  string
	Github    string
	Instagram string
}

// AsMap возвращает ссылки в виде словаря для публичного резюме.
func (s SocialLinks) AsMap() map[string]string {
	return map[string]string{
		"facebook":  s.Facebook,
		"twitter":   s.Twitter,
		"linkedin":  s.Linkedin,
		"github":    s.Github,
		"instagram": s.Instagram,
	}
}

func NewUser(wallet valueobject.WalletAddress) *User {
	username := DefaultUsernamePrefix + wallet.String()
	return &User{
		WalletAddress: wallet.String(),
		Username:      &username,
		Image:         DefaultImage,
		IsActive:      true,
		DateJoined:    time.Now(),
	}
}

func (u *User) DisplayUsername() string {
	if u.Username == nil {
		return ""
	}
	return *u.Username
}

// Summary - краткая карточка пользователя для вложения в задания и сообщения.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:            u.ID,
		Username:      u.DisplayUsername(),
		WalletAddress: u.WalletAddress,
		Name:          u.Name,
		Bio:           u.Bio,
		Image:         u.Image,
	}
}

type UserSummary struct {
	ID            int64
	Username      string
	WalletAddress string
	Name          string
	Bio           string
	Image         string
}

// ProfilePatch - частичное обновление профиля. Отсутствующие поля не меняются.
type ProfilePatch struct {
	Name      valueobject.Optional[string]
	Bio       valueobject.Optional[string]
	Image     valueobject.Optional[string]
	Facebook  valueobject.Optional[string]
	Twitter   valueobject.Optional[string]
	Linkedin  valueobject.Optional[string]
	Github    valueobject.Optional[string]
	Instagram valueobject.Optional[string]
}

func (p ProfilePatch) IsEmpty() bool {
	return !p.Name.IsSet() && !p.Bio.IsSet() && !p.Image.IsSet() &&
		!p.Facebook.IsSet() && !p.Twitter.IsSet() && !p.Linkedin.IsSet() &&
		!p.Github.IsSet() && !p.Instagram.IsSet()
}

// Apply переносит заданные поля патча в пользователя.
func (u *User) Apply(p ProfilePatch) {
	p.Name.ApplyTo(&u.Name)
	p.Bio.ApplyTo(&u.Bio)
	p.Image.ApplyTo(&u.Image)
	p.Facebook.ApplyTo(&u.SocialLinks.Facebook)
	p.Twitter.ApplyTo(&u.SocialLinks.Twitter)
	p.Linkedin.ApplyTo(&u.SocialLinks.Linkedin)
	p.Github.ApplyTo(&u.SocialLinks.Github)
	p.Instagram.ApplyTo(&u.SocialLinks.Instagram)
}

// FreelancerRank - строка рейтинга лучших фрилансеров.
type FreelancerRank struct {
	User               UserSummary
	CompletedJobsCount int64
}
