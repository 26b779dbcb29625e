package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendorledger/internal/core/apperror"
	"vendorledger/pkg/logger"
)

// ErrorHandler middleware transforms errors into the flat error envelope
// {"error": <message>}. Hides internal errors from clients while logging
// full details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
			return
		}

		// Unknown error - log and return generic message
		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
		)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
