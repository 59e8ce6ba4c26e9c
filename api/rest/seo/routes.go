package seo

import (
	"codeberg.org/insightsnap/server/insightsnap/settings"
	"github.com/gin-gonic/gin"
)

// registers the public SEO routes
func RegisterRoutes(router *gin.RouterGroup, settingsRepo *settings.Repository) {
	router.GET("/seo-settings/:page", GetPageHandler(settingsRepo))
}
