package auth

import (
	"codeberg.org/insightsnap/server/insightsnap/plans"
	"codeberg.org/insightsnap/server/insightsnap/users"
	"codeberg.org/insightsnap/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all user authentication routes. The rate limit middleware
// covers every credential endpoint in the group.
func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository, planRepo *plans.Repository, secret string, rateLimit gin.HandlerFunc) {
	authGroup := router.Group("/auth", rateLimit)
	{
		authGroup.POST("/register", RegisterHandler(userRepo, planRepo, secret))
		authGroup.POST("/login", LoginHandler(userRepo, secret))
		authGroup.GET("/me", auth.Middleware(secret), MeHandler(userRepo))
	}
}
