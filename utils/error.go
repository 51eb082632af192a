package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware that catches panics and returns the standard
// failure envelope so a handler bug never leaks a bare 500 page.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONFail sends the standard failure envelope {success:false, error:<message>}.
func JSONFail(c *gin.Context, status int, message string) {
	GetLogger().Warn("Request failed", zap.Int("status", status), zap.String("error", message))
	c.JSON(status, gin.H{"success": false, "error": message})
}
