package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

const WorkerKeyHeader = "X-Worker-Key"

// WorkerKeyMiddleware пускает к служебным маршрутам только обходчик с общим ключом.
// Пустой ключ отключает маршруты целиком.
func WorkerKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			response.NotFound(c, "Not found")
			return
		}
		got := c.GetHeader(WorkerKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			response.Error(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
