package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campground/internal/auth"
	"campground/internal/shared/utils/response"
	"campground/internal/users"
)

// JWTAuth authenticates requests with a Bearer access token and stores the
// claims on the gin context.
func JWTAuth(authService auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "authorization header is required", nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "authorization header format must be Bearer {token}", nil)
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// RequireAdmin rejects requests whose token does not carry the ADMIN role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "user role not found in context", nil)
			c.Abort()
			return
		}

		if role.(string) != string(users.RoleAdmin) {
			response.Error(c, http.StatusForbidden, "insufficient permissions", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
