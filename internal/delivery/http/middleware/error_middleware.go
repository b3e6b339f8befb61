package middleware

import (
	"errors"
	"net/http"

	"contact-relay/internal/delivery/http/response"
	"contact-relay/pkg/apperror"
	"contact-relay/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.IsServerFault() {
				logger.Log.Error("Request failed",
					"kind", appErr.Kind,
					"status", appErr.Code,
					"error", appErr.Message,
					"cause", appErr.Err,
					"request_id", c.GetString(RequestIDKey),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Unknown errors never reach the client verbatim.
		logger.Log.Error("Internal Server Error", "error", err, "request_id", c.GetString(RequestIDKey))
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
