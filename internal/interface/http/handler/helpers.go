package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/http/middleware"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

// currentUser достаёт пользователя из контекста. Если его нет, ответ уже записан.
func currentUser(c *gin.Context) (*entity.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated)
		return nil, false
	}
	return user, true
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Parameter "+name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// bindJSON разбирает тело запроса. Ошибки валидации значений (например суммы)
// отдаются как есть, остальные - как некорректный JSON.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr)
			return false
		}
		response.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

func parseInt64Query(c *gin.Context, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperror.Validation(key + " must be an integer")
	}
	return &value, nil
}

func parseDecimalQuery(c *gin.Context, key string) (*decimal.Decimal, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperror.Validation(key + " must be a number")
	}
	return &value, nil
}

// queryAny возвращает первый непустой параметр запроса из перечисленных имён.
func queryAny(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := c.Query(key); v != "" {
			return v
		}
	}
	return ""
}
