package pricing

import (
	"net/http"

	"codeberg.org/insightsnap/server/insightsnap/plans"
	apierrors "codeberg.org/insightsnap/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListPlansHandler godoc
// @Summary List pricing plans
// @Description Return all active plans with their public fields
// @Tags pricing
// @Produce json
// @Success 200 {array} PublicPlan
// @Router /api/pricing/plans [get]
func ListPlansHandler(planRepo *plans.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		active, err := planRepo.List(c.Request.Context(), true)
		if err != nil {
			apierrors.InternalError(c, "failed to load plans", err)
			return
		}

		result := make([]PublicPlan, 0, len(active))
		for _, plan := range active {
			result = append(result, NewPublicPlan(plan))
		}

		c.JSON(http.StatusOK, result)
	}
}
