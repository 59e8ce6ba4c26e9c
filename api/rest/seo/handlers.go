package seo

import (
	"net/http"

	"codeberg.org/insightsnap/server/insightsnap/settings"
	apierrors "codeberg.org/insightsnap/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// GetPageHandler godoc
// @Summary Get SEO metadata for a page
// @Description Public read of a page's SEO metadata
// @Tags seo
// @Produce json
// @Param page path string true "Page identifier"
// @Success 200 {object} PageMeta
// @Failure 404 {object} apierrors.ErrorResponse
// @Router /api/seo-settings/{page} [get]
func GetPageHandler(settingsRepo *settings.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := c.Param("page")

		record, err := settingsRepo.FindSEOByPage(c.Request.Context(), page)
		if err != nil {
			apierrors.NotFound(c, "seo settings for this page")
			return
		}

		c.JSON(http.StatusOK, NewPageMeta(record))
	}
}
