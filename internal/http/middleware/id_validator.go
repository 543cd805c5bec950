package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
)

// IDValidator проверяет, что параметр с указанным именем - положительное целое.
// Использование: router.GET("/jobs/:id", IDValidator("id"), handler.GetJob)
func IDValidator(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param(paramName), 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(c, "Parameter "+paramName+" must be a positive integer")
			return
		}
		c.Next()
	}
}
