package pricing

import (
	"codeberg.org/insightsnap/server/insightsnap/plans"
	"github.com/gin-gonic/gin"
)

// registers the public pricing routes
func RegisterRoutes(router *gin.RouterGroup, planRepo *plans.Repository) {
	group := router.Group("/pricing")
	{
		group.GET("/plans", ListPlansHandler(planRepo))
	}
}
