package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

// Context ключи для gin.Context.
const (
	ContextUserKey      = "user"
	ContextRequestIDKey = "requestID"
)

type TokenParser interface {
	Parse(raw string) (int64, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)
}

// AuthMiddleware проверяет Bearer токен и кладёт пользователя в контекст.
// Ни один обработчик не выполняется до успешной проверки.
func AuthMiddleware(tokens TokenParser, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			response.Error(c, apperror.ErrUnauthenticated)
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if raw == "" {
			response.Error(c, apperror.ErrUnauthenticated)
			return
		}

		userID, err := tokens.Parse(raw)
		if err != nil {
			response.Error(c, apperror.ErrInvalidCredential)
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperror.ErrUserNotFound) {
				response.Error(c, apperror.ErrInvalidCredential)
				return
			}
			response.Error(c, err)
			return
		}
		if !user.IsActive {
			response.Error(c, apperror.ErrAccountDisabled)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser возвращает пользователя, положенного AuthMiddleware.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	raw, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := raw.(*entity.User)
	return user, ok && user != nil
}
