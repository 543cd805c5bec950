package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger присваивает запросу идентификатор и пишет строку лога после ответа.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
		}
		if user, ok := CurrentUser(c); ok {
			fields["user_id"] = user.ID
		}

		entry := logger.Get().WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("запрос завершился ошибкой")
		case status >= 400:
			entry.Warn("запрос отклонён")
		default:
			entry.Info("запрос обработан")
		}
	}
}

// Recovery перехватывает панику в обработчике и отвечает маскированной 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf("panic: %v", rec)
				if c.Writer.Written() {
					logger.Get().WithError(err).Error("паника после начала ответа")
					c.Abort()
					return
				}
				response.Error(c, err)
			}
		}()
		c.Next()
	}
}
