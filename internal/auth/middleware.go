package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the httpOnly cookie carrying the session token.
	CookieName = "auth_token"

	userIDKey = "auth_user_id"
	roleKey   = "auth_role"
)

// RequireAuth rejects requests without a valid session token with 401.
// The token is read from the auth cookie, else from a Bearer header.
func (s *Service) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: No token provided."})
			return
		}

		claims, err := s.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid token."})
			return
		}

		c.Set(userIDKey, claims.UserID())
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// UserID returns the authenticated user's ID, or "" outside RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// Role returns the authenticated user's role, or "" outside RequireAuth.
func Role(c *gin.Context) string {
	return c.GetString(roleKey)
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
