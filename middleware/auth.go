package middleware

import (
	"fmt"
	"net/http"
	"strings"

	operatorRepo "porter/database/repository/operator"
	"porter/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthOperatorMiddleware authenticates dashboard operators. The presented
// token must be valid AND match the session hash stored at sign-in; revoking
// a session deletes the hash, instantly invalidating the token.
func JWTAuthOperatorMiddleware(repo operatorRepo.OperatorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		operatorID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || operatorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Insufficient authorization",
			})
			return
		}

		key := fmt.Sprintf("auth:token:%s", operatorID)
		storedHash, err := utils.GetAuthCacheClient().Get(c.Request.Context(), key).Result()
		if err != nil || storedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Session expired or revoked",
			})
			return
		}

		op, err := repo.GetByID(c.Request.Context(), operatorID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unknown operator",
			})
			return
		}

		c.Set("operatorID", op.ID)
		c.Set("operatorRole", op.Role)
		c.Next()
	}
}

// RequireAdmin gates admin-only endpoints. Must run after operator auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get("operatorRole"); role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Admin role required",
			})
			return
		}
		c.Next()
	}
}
