package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"cavebeat-backend/internal/delivery/http/response"
	"cavebeat-backend/internal/domain"
	"cavebeat-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.WarnContext(c.Request.Context(), "Request failed",
					"path", c.FullPath(), "status", appErr.Code, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Never expose internal error details to clients.
		logger.ErrorContext(c.Request.Context(), "Internal Server Error",
			"path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

// Recovery turns panics into the standard 500 envelope.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "Panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		c.Abort()
	})
}

// AccessLog writes one structured line per request.
func AccessLog(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		c.Next()
		reqID, _ := c.Get(string(domain.KeyRequestID))
		logger.InfoContext(c.Request.Context(), "HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"ip", c.ClientIP(),
			"request_id", reqID,
		)
	}
}
