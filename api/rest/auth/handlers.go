package auth

import (
	"errors"
	"net/http"

	"codeberg.org/insightsnap/server/insightsnap/plans"
	"codeberg.org/insightsnap/server/insightsnap/users"
	"codeberg.org/insightsnap/server/internal/auth"
	"codeberg.org/insightsnap/server/internal/entitlements"
	apierrors "codeberg.org/insightsnap/server/internal/errors"
	"codeberg.org/insightsnap/server/internal/metrics"
	"github.com/gin-gonic/gin"
)

// every new account starts on this plan
const defaultPlanName = "Free"

// quotas used if the default plan record is ever missing from the store
var fallbackQuota = entitlements.Quota{
	SearchesPerDay:     5,
	AIGenerations:      3,
	ExportsPerMonth:    3,
	ResultsPerCategory: 3,
}

// RegisterHandler godoc
// @Summary Register a new account
// @Description Create a user on the Free plan and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 409 {object} apierrors.ErrorResponse
// @Router /api/auth/register [post]
func RegisterHandler(userRepo *users.Repository, planRepo *plans.Repository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			apierrors.InternalError(c, "failed to create account", err)
			return
		}

		quota := fallbackQuota
		if plan, err := planRepo.FindByName(c.Request.Context(), defaultPlanName); err == nil {
			quota = entitlements.Quota{
				SearchesPerDay:     plan.SearchesPerDay,
				AIGenerations:      plan.AIGenerations,
				ExportsPerMonth:    plan.ExportsPerMonth,
				ResultsPerCategory: plan.ResultsPerCategory,
			}
		}

		user, err := userRepo.Create(
			c.Request.Context(),
			req.Name,
			req.Email,
			hash,
			defaultPlanName,
			entitlements.NewLedger(quota),
		)

		if err != nil {
			if errors.Is(err, users.ErrEmailTaken) {
				apierrors.Conflict(c, "email already registered")
				return
			}

			apierrors.InternalError(c, "failed to create account", err)
			return
		}

		token, err := auth.GenerateToken(secret, user.ID, auth.RoleUser)
		if err != nil {
			apierrors.InternalError(c, "failed to generate token", err)
			return
		}

		metrics.RegistrationsTotal.Inc()

		c.JSON(http.StatusOK, AuthResponse{
			Token: token,
			User:  NewUserProfile(user),
		})
	}
}

// LoginHandler godoc
// @Summary Log in
// @Description Authenticate with email and password and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Router /api/auth/login [post]
func LoginHandler(userRepo *users.Repository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), req.Email)
		if err != nil || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
			// identical response for unknown email and wrong password
			apierrors.Unauthorized(c, "invalid email or password")
			return
		}

		token, err := auth.GenerateToken(secret, user.ID, auth.RoleUser)
		if err != nil {
			apierrors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Token: token,
			User:  NewUserProfile(user),
		})
	}
}

// MeHandler godoc
// @Summary Get current user
// @Description Return the authenticated user's profile and credits
// @Tags auth
// @Produce json
// @Success 200 {object} UserProfile
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Router /api/auth/me [get]
// @Security BearerAuth
func MeHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			apierrors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, NewUserProfile(user))
	}
}
