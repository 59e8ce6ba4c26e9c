package main

import (
	"time"

	restadmin "codeberg.org/insightsnap/server/api/rest/admin"
	restauth "codeberg.org/insightsnap/server/api/rest/auth"
	"codeberg.org/insightsnap/server/api/rest/health"
	restinsights "codeberg.org/insightsnap/server/api/rest/insights"
	"codeberg.org/insightsnap/server/api/rest/pricing"
	"codeberg.org/insightsnap/server/api/rest/seo"
	restusers "codeberg.org/insightsnap/server/api/rest/users"
	apierrors "codeberg.org/insightsnap/server/internal/errors"
	"codeberg.org/insightsnap/server/internal/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// credential endpoints get a tighter per-IP budget than the rest of
// the API to slow down stuffing attempts
const loginRateLimit = 20

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = server.config.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.Use(metrics.Middleware())

	router.GET("/health", health.Handler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("", health.RootHandler)
		api.GET("/ping", health.PingHandler)

		loginLimiter := loginRateMiddleware()

		restauth.RegisterRoutes(api, server.userRepo, server.planRepo, server.config.JWTSecret, loginLimiter)
		restusers.RegisterRoutes(api, server.engine, server.config.JWTSecret)
		restinsights.RegisterRoutes(api, server.engine, server.provider, server.userRepo, server.planRepo, server.searchRepo, server.config.JWTSecret)
		pricing.RegisterRoutes(api, server.planRepo)
		seo.RegisterRoutes(api, server.settingsRepo)
		restadmin.RegisterRoutes(api, server.adminRepo, server.planRepo, server.settingsRepo, server.userRepo, server.engine, server.config.JWTSecret, loginLimiter)
	}
}

// builds the per-IP rate limit middleware applied to credential routes
func loginRateMiddleware() gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  loginRateLimit,
	}

	instance := limiter.New(memory.NewStore(), rate)

	return mgin.NewMiddleware(instance, mgin.WithLimitReachedHandler(func(c *gin.Context) {
		apierrors.TooManyRequests(c, "too many requests, slow down")
	}))
}
