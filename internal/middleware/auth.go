package middleware

import (
	"net/http"
	"strings"

	"spill/internal/pkg"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// AuthMiddleware validates the bearer token and injects the user id.
func AuthMiddleware() gin.HandlerFunc {
	return authenticate(false)
}

// WSAuthMiddleware also accepts a ?token= query parameter, because browser
// websocket clients cannot set request headers. Query tokens end up in
// access logs, so only the websocket route uses this variant.
func WSAuthMiddleware() gin.HandlerFunc {
	return authenticate(true)
}

func authenticate(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization format"})
				return
			}
			tokenStr = parts[1]
		} else if allowQuery {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing authorization token"})
			return
		}

		claims, err := pkg.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
