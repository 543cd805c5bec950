package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

// Константы валидации
const (
	MaxNameLength        = 255
	MaxBioLength         = 1000
	MaxSocialLinkLength  = 255
	MaxImageLength       = 500
	MaxJobTitleLength    = 255
	MaxJobInfoLength     = 5000
	MaxSearchQueryLength = 200
)

// ValidateLength проверяет длину строки в символах.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return apperror.Validation(fmt.Sprintf("%s must be at least %d characters", fieldName, min))
	}
	if max > 0 && length > max {
		return apperror.Validation(fmt.Sprintf("%s must be at most %d characters", fieldName, max))
	}
	return nil
}

// ValidateLink проверяет ссылку на соцсеть. Пустая строка допустима.
func ValidateLink(fieldName, link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil
	}
	if err := ValidateLength(fieldName, link, 0, MaxSocialLinkLength); err != nil {
		return err
	}

	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return apperror.Validation(fieldName + " must be an http(s) URL")
	}
	return nil
}

// ValidateProfilePatch проверяет только заданные поля патча.
func ValidateProfilePatch(p entity.ProfilePatch) error {
	if v, ok := p.Name.Get(); ok {
		if err := ValidateLength("name", strings.TrimSpace(v), 0, MaxNameLength); err != nil {
			return err
		}
	}
	if v, ok := p.Bio.Get(); ok {
		if err := ValidateLength("bio", strings.TrimSpace(v), 0, MaxBioLength); err != nil {
			return err
		}
	}
	if v, ok := p.Image.Get(); ok {
		if err := ValidateLength("image", v, 0, MaxImageLength); err != nil {
			return err
		}
	}

	links := []struct {
		name  string
		value valueobject.Optional[string]
	}{
		{"facebook", p.Facebook},
		{"twitter", p.Twitter},
		{"linkedin", p.Linkedin},
		{"github", p.Github},
		{"instagram", p.Instagram},
	}
	for _, l := range links {
		if v, ok := l.value.Get(); ok {
			if err := ValidateLink(l.name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateJobText проверяет текстовые поля нового задания.
func ValidateJobText(title, description, info string) error {
	if strings.TrimSpace(title) == "" {
		return apperror.Validation("Title is required")
	}
	if strings.TrimSpace(description) == "" {
		return apperror.Validation("Description is required")
	}
	if err := ValidateLength("title", strings.TrimSpace(title), 0, MaxJobTitleLength); err != nil {
		return err
	}
	return ValidateLength("info", info, 0, MaxJobInfoLength)
}
