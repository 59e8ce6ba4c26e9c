package users

import (
	"errors"
	"net/http"

	"codeberg.org/insightsnap/server/internal/auth"
	"codeberg.org/insightsnap/server/internal/entitlements"
	apierrors "codeberg.org/insightsnap/server/internal/errors"
	"codeberg.org/insightsnap/server/internal/metrics"
	"github.com/gin-gonic/gin"
)

// CreditsHandler godoc
// @Summary Get credit balances
// @Description Return the authenticated user's current credit ledger
// @Tags users
// @Produce json
// @Success 200 {object} entitlements.Ledger
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Router /api/users/credits [get]
// @Security BearerAuth
func CreditsHandler(engine *entitlements.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		ledger, err := engine.Ledger(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, entitlements.ErrUserNotFound) {
				apierrors.NotFound(c, "user")
				return
			}

			apierrors.InternalError(c, "failed to load credits", err)
			return
		}

		c.JSON(http.StatusOK, ledger)
	}
}

// UpgradeHandler godoc
// @Summary Switch subscription plan
// @Description Change the user's plan and reset the credit ledger to the plan's quotas
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpgradeRequest true "Target plan"
// @Success 200 {object} UpgradeResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Router /api/users/upgrade [post]
// @Security BearerAuth
func UpgradeHandler(engine *entitlements.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req UpgradeRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		planName, ledger, err := engine.Upgrade(c.Request.Context(), userID, req.PlanID)
		if err != nil {
			switch {
			case errors.Is(err, entitlements.ErrPlanNotFound):
				apierrors.NotFound(c, "plan")
			case errors.Is(err, entitlements.ErrUserNotFound):
				apierrors.NotFound(c, "user")
			default:
				apierrors.InternalError(c, "failed to switch plan", err)
			}

			return
		}

		metrics.PlanUpgradesTotal.Inc()

		c.JSON(http.StatusOK, UpgradeResponse{
			Success: true,
			Plan:    planName,
			Credits: *ledger,
		})
	}
}
