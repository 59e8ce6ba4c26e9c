package admin

import (
	"codeberg.org/insightsnap/server/insightsnap/admins"
	"codeberg.org/insightsnap/server/insightsnap/plans"
	"codeberg.org/insightsnap/server/insightsnap/settings"
	"codeberg.org/insightsnap/server/insightsnap/users"
	"codeberg.org/insightsnap/server/internal/auth"
	"codeberg.org/insightsnap/server/internal/entitlements"
	"github.com/gin-gonic/gin"
)

// registers the admin console routes. Login is public; everything else
// requires an admin bearer token.
func RegisterRoutes(
	router *gin.RouterGroup,
	adminRepo *admins.Repository,
	planRepo *plans.Repository,
	settingsRepo *settings.Repository,
	userRepo *users.Repository,
	engine *entitlements.Engine,
	secret string,
	rateLimit gin.HandlerFunc,
) {
	adminGroup := router.Group("/admin")
	{
		adminGroup.POST("/auth/login", rateLimit, LoginHandler(adminRepo, secret))

		protected := adminGroup.Group("", auth.AdminMiddleware(secret))
		{
			protected.GET("/pricing", ListPlansHandler(planRepo))
			protected.POST("/pricing", CreatePlanHandler(planRepo))
			protected.PUT("/pricing/:id", UpdatePlanHandler(planRepo))
			protected.DELETE("/pricing/:id", DeletePlanHandler(planRepo))

			protected.GET("/payment-settings", GetPaymentSettingsHandler(settingsRepo))
			protected.PUT("/payment-settings", UpdatePaymentSettingsHandler(settingsRepo))

			protected.GET("/seo-settings", ListSEOHandler(settingsRepo))
			protected.PUT("/seo-settings/:page", UpdateSEOHandler(settingsRepo))

			protected.GET("/users", ListUsersHandler(userRepo))
			protected.PUT("/users/:id/credits", UpdateUserCreditsHandler(engine))
		}
	}
}
