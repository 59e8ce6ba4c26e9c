package admin

import (
	"errors"
	"net/http"
	"time"

	"codeberg.org/insightsnap/server/insightsnap/admins"
	"codeberg.org/insightsnap/server/insightsnap/plans"
	"codeberg.org/insightsnap/server/insightsnap/settings"
	"codeberg.org/insightsnap/server/insightsnap/users"
	"codeberg.org/insightsnap/server/internal/auth"
	"codeberg.org/insightsnap/server/internal/entitlements"
	apierrors "codeberg.org/insightsnap/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// LoginHandler godoc
// @Summary Admin login
// @Description Authenticate an administrator and return a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Router /api/admin/auth/login [post]
func LoginHandler(adminRepo *admins.Repository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		admin, err := adminRepo.FindByUsername(c.Request.Context(), req.Username)
		if err != nil || !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
			apierrors.Unauthorized(c, "invalid credentials")
			return
		}

		token, err := auth.GenerateToken(secret, admin.ID, auth.RoleAdmin)
		if err != nil {
			apierrors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			Token: token,
			Admin: AdminProfile{
				ID:       admin.ID,
				Username: admin.Username,
				Role:     string(auth.RoleAdmin),
			},
		})
	}
}

// ListPlansHandler godoc
// @Summary List all plans (admin)
// @Description Return every plan, active or not
// @Tags admin
// @Produce json
// @Success 200 {array} plans.PricingPlan
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Router /api/admin/pricing [get]
// @Security BearerAuth
func ListPlansHandler(planRepo *plans.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := planRepo.List(c.Request.Context(), false)
		if err != nil {
			apierrors.InternalError(c, "failed to load plans", err)
			return
		}

		if result == nil {
			result = []plans.PricingPlan{}
		}

		c.JSON(http.StatusOK, result)
	}
}

// CreatePlanHandler godoc
// @Summary Create a plan
// @Description Create a pricing plan; existing users keep their current ledgers
// @Tags admin
// @Accept json
// @Produce json
// @Param request body PlanRequest true "Plan fields"
// @Success 200 {object} plans.PricingPlan
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Router /api/admin/pricing [post]
// @Security BearerAuth
func CreatePlanHandler(planRepo *plans.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlanRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		plan, err := planRepo.Create(c.Request.Context(), req.Fields())
		if err != nil {
			apierrors.InternalError(c, "failed to create plan", err)
			return
		}

		c.JSON(http.StatusOK, plan)
	}
}

// UpdatePlanHandler godoc
// @Summary Update a plan
// @Description Replace a plan's fields; quotas apply to future upgrades only
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body PlanRequest true "Plan fields"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Router /api/admin/pricing/{id} [put]
// @Security BearerAuth
func UpdatePlanHandler(planRepo *plans.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		planID := c.Param("id")

		var req PlanRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		if _, err := planRepo.Update(c.Request.Context(), planID, req.Fields()); err != nil {
			if errors.Is(err, entitlements.ErrPlanNotFound) {
				apierrors.NotFound(c, "plan")
				return
			}

			apierrors.InternalError(c, "failed to update plan", err)
			return
		}

		c.JSON(http.StatusOK, SuccessResponse{Success: true, ID: planID})
	}
}

// DeletePlanHandler godoc
// @Summary Delete a plan
// @Description Remove a pricing plan; subscribed users keep the copied plan name
// @Tags admin
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Router /api/admin/pricing/{id} [delete]
// @Security BearerAuth
func DeletePlanHandler(planRepo *plans.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		planID := c.Param("id")

		if err := planRepo.Delete(c.Request.Context(), planID); err != nil {
			if errors.Is(err, entitlements.ErrPlanNotFound) {
				apierrors.NotFound(c, "plan")
				return
			}

			apierrors.InternalError(c, "failed to delete plan", err)
			return
		}

		c.JSON(http.StatusOK, SuccessResponse{Success: true})
	}
}

// GetPaymentSettingsHandler godoc
// @Summary Get payment gateway settings
// @Description Return per-gateway enabled flags and non-secret identifiers
// @Tags admin
// @Produce json
// @Success 200 {object} PaymentSettingsResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Router /api/admin/payment-settings [get]
// @Security BearerAuth
func GetPaymentSettingsHandler(settingsRepo *settings.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := settingsRepo.ListPayment(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "failed to load payment settings", err)
			return
		}

		var resp PaymentSettingsResponse

		for _, gw := range all {
			switch gw.Gateway {
			case "razorpay":
				resp.Razorpay = GatewaySummary{Enabled: gw.Enabled, KeyID: gw.KeyID}
			case "paypal":
				resp.PayPal = GatewaySummary{Enabled: gw.Enabled, ClientID: gw.ClientID}
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// UpdatePaymentSettingsHandler godoc
// @Summary Update payment gateway settings
// @Description Upsert one gateway's enabled flag and opaque credentials
// @Tags admin
// @Accept json
// @Produce json
// @Param request body PaymentUpdateRequest true "Gateway settings"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Router /api/admin/payment-settings [put]
// @Security BearerAuth
func UpdatePaymentSettingsHandler(settingsRepo *settings.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentUpdateRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		if _, err := settingsRepo.UpsertPayment(c.Request.Context(), req.Gateway, req.Enabled, req.Credentials); err != nil {
			apierrors.InternalError(c, "failed to save payment settings", err)
			return
		}

		c.JSON(http.StatusOK, SuccessResponse{Success: true})
	}
}

// ListSEOHandler godoc
// @Summary List SEO settings
// @Description Return SEO metadata for every configured page
// @Tags admin
// @Produce json
// @Success 200 {array} settings.SEOSettings
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Router /api/admin/seo-settings [get]
// @Security BearerAuth
func ListSEOHandler(settingsRepo *settings.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := settingsRepo.ListSEO(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "failed to load seo settings", err)
			return
		}

		if result == nil {
			result = []settings.SEOSettings{}
		}

		c.JSON(http.StatusOK, result)
	}
}

// UpdateSEOHandler godoc
// @Summary Update SEO settings for a page
// @Description Upsert a page's SEO metadata by page name
// @Tags admin
// @Accept json
// @Produce json
// @Param page path string true "Page identifier"
// @Param request body SEOUpdateRequest true "SEO fields"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Router /api/admin/seo-settings/{page} [put]
// @Security BearerAuth
func UpdateSEOHandler(settingsRepo *settings.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := c.Param("page")

		var req SEOUpdateRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		fields := settings.SEOFields{
			Title:       req.Title,
			Description: req.Description,
			Keywords:    req.Keywords,
			Canonical:   req.Canonical,
			OGImage:     req.OGImage,
		}

		if _, err := settingsRepo.UpsertSEO(c.Request.Context(), page, fields); err != nil {
			apierrors.InternalError(c, "failed to save seo settings", err)
			return
		}

		c.JSON(http.StatusOK, SuccessResponse{Success: true, Page: page})
	}
}

// ListUsersHandler godoc
// @Summary List users
// @Description Return every user with plan and credit balances
// @Tags admin
// @Produce json
// @Success 200 {array} UserSummary
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Router /api/admin/users [get]
// @Security BearerAuth
func ListUsersHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := userRepo.List(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "failed to load users", err)
			return
		}

		result := make([]UserSummary, 0, len(all))
		for _, u := range all {
			result = append(result, UserSummary{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				Plan:      u.Plan,
				Credits:   u.Credits,
				CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
			})
		}

		c.JSON(http.StatusOK, result)
	}
}

// UpdateUserCreditsHandler godoc
// @Summary Override a user's credit balances
// @Description Set any subset of remaining balances directly, bypassing plan quotas
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body entitlements.Override true "Balance overrides"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Router /api/admin/users/{id}/credits [put]
// @Security BearerAuth
func UpdateUserCreditsHandler(engine *entitlements.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")

		var req entitlements.Override

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		if err := engine.Override(c.Request.Context(), userID, req); err != nil {
			if errors.Is(err, entitlements.ErrUserNotFound) {
				apierrors.NotFound(c, "user")
				return
			}

			apierrors.InternalError(c, "failed to update credits", err)
			return
		}

		c.JSON(http.StatusOK, SuccessResponse{Success: true})
	}
}
