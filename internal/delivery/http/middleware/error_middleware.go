package middleware

import (
	"errors"
	"net/http"

	"contact-form-backend/internal/delivery/http/response"
	"contact-form-backend/pkg/apperror"
	"contact-form-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString("RequestID")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("Request failed", "status", appErr.Code, "error", appErr.Err, "request_id", requestID)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("Internal Server Error", "error", err, "request_id", requestID)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
