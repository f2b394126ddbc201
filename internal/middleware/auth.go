package middleware

import (
	"net/http"
	"strings"

	"smartystreets-api/internal/auth"
	"smartystreets-api/internal/errors"
	"smartystreets-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires an HS256 bearer token signed with secret.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := auth.ValidateJWT(parts[1], secret)
		if err != nil {
			unauthorized(c, err.Error())
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("scope", claims.Scope)
		c.Next()
	}
}

func unauthorized(c *gin.Context, reason string) {
	logger.GlobalLogger.Printf("Unauthorized request: path=%s, client_ip=%s, reason=%s", c.Request.URL.Path, c.ClientIP(), reason)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"message": errors.MsgUnauthorized,
			"code":    errors.ErrCodeUnauthorized,
		},
	})
}
