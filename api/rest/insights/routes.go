package insights

import (
	"codeberg.org/insightsnap/server/insightsnap/plans"
	"codeberg.org/insightsnap/server/insightsnap/searches"
	"codeberg.org/insightsnap/server/insightsnap/users"
	"codeberg.org/insightsnap/server/internal/auth"
	"codeberg.org/insightsnap/server/internal/entitlements"
	"codeberg.org/insightsnap/server/internal/insights"
	"github.com/gin-gonic/gin"
)

// registers all insight routes
func RegisterRoutes(
	router *gin.RouterGroup,
	engine *entitlements.Engine,
	provider insights.Provider,
	userRepo *users.Repository,
	planRepo *plans.Repository,
	searchRepo *searches.Repository,
	secret string,
) {
	group := router.Group("/insights")
	group.Use(auth.Middleware(secret))
	{
		group.POST("/search", SearchHandler(engine, provider, userRepo, planRepo, searchRepo))
		group.POST("/generate", GenerateHandler(engine, provider))
		group.POST("/export", ExportHandler(engine))
		group.GET("/history", HistoryHandler(searchRepo))
	}
}
