package insights

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"codeberg.org/insightsnap/server/insightsnap/plans"
	"codeberg.org/insightsnap/server/insightsnap/searches"
	"codeberg.org/insightsnap/server/insightsnap/users"
	"codeberg.org/insightsnap/server/internal/auth"
	"codeberg.org/insightsnap/server/internal/entitlements"
	apierrors "codeberg.org/insightsnap/server/internal/errors"
	"codeberg.org/insightsnap/server/internal/insights"
	"codeberg.org/insightsnap/server/internal/logger"
	"codeberg.org/insightsnap/server/internal/metrics"
	"github.com/gin-gonic/gin"
)

const (
	// categories are capped at this when the user's plan record is gone
	fallbackResultsPerCategory = 3

	historyLimit = 50
)

// SearchHandler godoc
// @Summary Search audience insights
// @Description Debit one search credit, run the query and archive the results
// @Tags insights
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search query"
// @Success 200 {object} insights.SearchResult
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Router /api/insights/search [post]
// @Security BearerAuth
func SearchHandler(
	engine *entitlements.Engine,
	provider insights.Provider,
	userRepo *users.Repository,
	planRepo *plans.Repository,
	searchRepo *searches.Repository,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req SearchRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			apierrors.NotFound(c, "user")
			return
		}

		if !consumeOrFail(c, engine, userID, entitlements.FeatureSearch, "no search credits remaining") {
			return
		}

		limit := fallbackResultsPerCategory
		if plan, err := planRepo.FindByName(c.Request.Context(), user.Plan); err == nil {
			limit = plan.ResultsPerCategory
		}

		results, err := provider.Search(c.Request.Context(), req.Query, limit)
		if err != nil {
			apierrors.InternalError(c, "search failed", err)
			return
		}

		// the debit already happened; losing the history row here is an
		// accepted inconsistency, so log and return the results anyway
		if _, err := searchRepo.Insert(c.Request.Context(), userID, req.Query, results); err != nil {
			logger.ErrorErr(err, "failed to archive search", "user_id", userID)
		}

		metrics.SearchesPerformedTotal.Inc()

		c.JSON(http.StatusOK, results)
	}
}

// GenerateHandler godoc
// @Summary Generate a content script
// @Description Debit one AI-generation credit and return a generated script
// @Tags insights
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Script topic"
// @Success 200 {object} insights.Script
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Router /api/insights/generate [post]
// @Security BearerAuth
func GenerateHandler(engine *entitlements.Engine, provider insights.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req GenerateRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		if !consumeOrFail(c, engine, userID, entitlements.FeatureAIGeneration, "no AI generation credits remaining") {
			return
		}

		script, err := provider.GenerateScript(c.Request.Context(), req.Query)
		if err != nil {
			apierrors.InternalError(c, "script generation failed", err)
			return
		}

		c.JSON(http.StatusOK, script)
	}
}

// ExportHandler godoc
// @Summary Export search results
// @Description Debit one export credit and return a download link for a past search
// @Tags insights
// @Accept json
// @Produce json
// @Param request body ExportRequest true "Search id and format"
// @Success 200 {object} ExportResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Failure 403 {object} apierrors.ErrorResponse
// @Failure 404 {object} apierrors.ErrorResponse
// @Router /api/insights/export [post]
// @Security BearerAuth
func ExportHandler(engine *entitlements.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req ExportRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		format := strings.ToLower(req.Format)
		if format != "csv" && format != "pdf" {
			apierrors.BadRequest(c, "format must be csv or pdf", nil)
			return
		}

		if !consumeOrFail(c, engine, userID, entitlements.FeatureExport, "no export credits remaining") {
			return
		}

		c.JSON(http.StatusOK, ExportResponse{
			DownloadURL: fmt.Sprintf("/downloads/%s.%s", req.SearchID, format),
			Success:     true,
		})
	}
}

// HistoryHandler godoc
// @Summary List recent searches
// @Description Return the authenticated user's recent search history
// @Tags insights
// @Produce json
// @Success 200 {object} HistoryResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Router /api/insights/history [get]
// @Security BearerAuth
func HistoryHandler(searchRepo *searches.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		history, err := searchRepo.ListByUser(c.Request.Context(), userID, historyLimit)
		if err != nil {
			apierrors.InternalError(c, "failed to load history", err)
			return
		}

		if history == nil {
			history = []searches.Record{}
		}

		c.JSON(http.StatusOK, HistoryResponse{History: history})
	}
}

// debits a credit and writes the error response on failure
func consumeOrFail(c *gin.Context, engine *entitlements.Engine, userID string, f entitlements.Feature, exhaustedMsg string) bool {
	_, err := engine.TryConsume(c.Request.Context(), userID, f)
	if err == nil {
		metrics.CreditsConsumedTotal.WithLabelValues(string(f)).Inc()
		return true
	}

	switch {
	case errors.Is(err, entitlements.ErrQuotaExhausted):
		apierrors.QuotaExhausted(c, exhaustedMsg)
	case errors.Is(err, entitlements.ErrUserNotFound):
		apierrors.NotFound(c, "user")
	default:
		apierrors.InternalError(c, "failed to debit credits", err)
	}

	return false
}
