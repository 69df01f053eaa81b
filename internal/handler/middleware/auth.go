package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"marketlink/internal/domain/user"
	"marketlink/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUsernameKey = "username"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		userID, username, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUsernameKey, username)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": userID.String(),
			"role":    string(role),
		})
		c.Next()
	}
}

// RequireRole allows only the listed roles. Marketplace roles are peers
// rather than a hierarchy, so membership is exact.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	allowed := make(map[user.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if _, ok := allowed[role]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(ctxUsernameKey)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
