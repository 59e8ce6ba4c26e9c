package auth

import (
	"strings"

	"codeberg.org/insightsnap/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// context keys set by the middleware
const (
	ctxUserID = "user_id"
	ctxRole   = "user_role"
)

// validates bearer tokens and adds the subject to the request context
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, secret)
		if !ok {
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, string(claims.Role))

		c.Next()
	}
}

// validates bearer tokens and additionally requires the admin role
func AdminMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, secret)
		if !ok {
			return
		}

		if claims.Role != RoleAdmin {
			errors.Forbidden(c, "admin access required")
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, string(claims.Role))

		c.Next()
	}
}

// extracts and validates the Authorization header; aborts with 401 on failure
func bearerClaims(c *gin.Context, secret string) (*Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		errors.Unauthorized(c, "authorization header required")
		c.Abort()
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		errors.Unauthorized(c, "invalid authorization header format")
		c.Abort()
		return nil, false
	}

	claims, err := ValidateToken(secret, parts[1])
	if err != nil {
		errors.Unauthorized(c, "invalid or expired token")
		c.Abort()
		return nil, false
	}

	return claims, true
}

// extracts the subject id set by the middleware
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return "", false
	}

	return userID.(string), true
}

// extracts the role set by the middleware
func GetRole(c *gin.Context) (Role, bool) {
	role, exists := c.Get(ctxRole)
	if !exists {
		return "", false
	}

	return Role(role.(string)), true
}
