package users

import (
	"codeberg.org/insightsnap/server/internal/auth"
	"codeberg.org/insightsnap/server/internal/entitlements"
	"github.com/gin-gonic/gin"
)

// registers all user account routes
func RegisterRoutes(router *gin.RouterGroup, engine *entitlements.Engine, secret string) {
	userGroup := router.Group("/users")
	userGroup.Use(auth.Middleware(secret))
	{
		userGroup.GET("/credits", CreditsHandler(engine))
		userGroup.POST("/upgrade", UpgradeHandler(engine))
	}
}
