package middleware

import (
	"net/http"
	"strings"

	"go-chain-ops/internal/auth"
	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware checks the bearer token and puts the caller's
// identity on the context. If the identity has registered as a User,
// its role is attached too; unregistered identities pass through
// with no role.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Format: "Bearer <token>"
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("identity", claims.Identity)

		var user models.User
		if err := database.DB.First(&user, "id = ?", claims.Identity).Error; err == nil {
			c.Set("role", string(user.Role))
		}

		c.Next()
	}
}

// RequireRole guards endpoints that only one role may call.
func RequireRole(allowedRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != allowedRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			c.Abort()
			return
		}
		c.Next()
	}
}
