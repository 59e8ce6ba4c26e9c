package main

import (
	"context"
	"fmt"

	"codeberg.org/insightsnap/server/insightsnap/admins"
	"codeberg.org/insightsnap/server/insightsnap/plans"
	"codeberg.org/insightsnap/server/insightsnap/searches"
	"codeberg.org/insightsnap/server/insightsnap/settings"
	"codeberg.org/insightsnap/server/insightsnap/users"
	"codeberg.org/insightsnap/server/internal/config"
	"codeberg.org/insightsnap/server/internal/database"
	"codeberg.org/insightsnap/server/internal/entitlements"
	"codeberg.org/insightsnap/server/internal/insights"
	"github.com/gin-gonic/gin"
)

const (
	// seeded on first boot; the password must be rotated through the
	// console before real use
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	userRepo := users.NewRepository(db)
	planRepo := plans.NewRepository(db)
	searchRepo := searches.NewRepository(db)
	settingsRepo := settings.NewRepository(db)
	adminRepo := admins.NewRepository(db)

	if err := adminRepo.EnsureDefault(ctx, defaultAdminUsername, defaultAdminPassword); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed default admin: %w", err)
	}

	engine := entitlements.NewEngine(userRepo, planRepo)
	provider := insights.NewTemplateProvider()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:           db,
		config:       cfg,
		userRepo:     userRepo,
		planRepo:     planRepo,
		searchRepo:   searchRepo,
		settingsRepo: settingsRepo,
		adminRepo:    adminRepo,
		engine:       engine,
		provider:     provider,
		router:       router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
