package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Bossbrown1770/AUTO-CAR/services"
)

// Context keys set by RequireAuth.
const (
	UserIDKey = "user_id"
	RoleKey   = "role"
)

// RequireAuth validates the Bearer token and stores the caller's identity on
// the request context.
func RequireAuth(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.Validate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(RoleKey, role)
		c.Next()
	}
}

// RequireRole rejects callers whose token does not carry the given role.
// Must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id set by RequireAuth.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
