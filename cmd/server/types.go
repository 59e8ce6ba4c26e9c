package main

import (
	"codeberg.org/insightsnap/server/insightsnap/admins"
	"codeberg.org/insightsnap/server/insightsnap/plans"
	"codeberg.org/insightsnap/server/insightsnap/searches"
	"codeberg.org/insightsnap/server/insightsnap/settings"
	"codeberg.org/insightsnap/server/insightsnap/users"
	"codeberg.org/insightsnap/server/internal/config"
	"codeberg.org/insightsnap/server/internal/entitlements"
	"codeberg.org/insightsnap/server/internal/insights"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	config       *config.Config
	userRepo     *users.Repository
	planRepo     *plans.Repository
	searchRepo   *searches.Repository
	settingsRepo *settings.Repository
	adminRepo    *admins.Repository
	engine       *entitlements.Engine
	provider     insights.Provider
	router       *gin.Engine
}
