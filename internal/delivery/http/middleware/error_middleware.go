package middleware

import (
	"errors"
	"net/http"

	"go-izcloud-backend/internal/delivery/http/response"
	"go-izcloud-backend/pkg/apperror"
	"go-izcloud-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// The wrapped cause stays in the logs; only the curated
				// message reaches the client.
				if appErr.Err != nil {
					logger.Log.Error("request failed",
						"status", appErr.Code,
						"path", c.FullPath(),
						"request_id", c.GetString(RequestIDKey),
						"error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("unhandled error",
					"path", c.FullPath(),
					"request_id", c.GetString(RequestIDKey),
					"error", err)
				response.Error(c, http.StatusInternalServerError, "An error occurred while processing your request.")
			}
		}
	}
}
