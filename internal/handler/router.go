package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-dashboard/internal/middleware"
	"github.com/noah-isme/sma-adp-dashboard/internal/models"
	"github.com/noah-isme/sma-adp-dashboard/internal/service"
	"github.com/noah-isme/sma-adp-dashboard/pkg/logger"
	corsmiddleware "github.com/noah-isme/sma-adp-dashboard/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sma-adp-dashboard/pkg/middleware/requestid"
	"github.com/noah-isme/sma-adp-dashboard/pkg/session"
)

// RouterDeps collects everything the dashboard router serves.
type RouterDeps struct {
	Logger         *zap.Logger
	Prefix         string
	AllowedOrigins []string
	Auth           *service.AuthService
	Sessions       session.Provider
	Schools        *service.SchoolController
	Admins         *service.AdminController
	Dashboard      *service.DashboardService
	Exports        *service.ExportService
	Metrics        *service.MetricsService
	EnableDocs     bool
}

// NewRouter builds the gin engine. Exports and metrics are optional.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	prefix := "/" + strings.Trim(deps.Prefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	loginPath := prefix + "/auth/login"
	dashboardPath := prefix
	if dashboardPath == "" {
		dashboardPath = "/"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(deps.AllowedOrigins))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if deps.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := NewAuthHandler(deps.Auth, deps.Sessions, loginPath, dashboardPath)
	dashboardHandler := NewDashboardHandler(deps.Dashboard, deps.Schools, deps.Admins)

	var exports exportRenderer
	if deps.Exports != nil {
		exports = deps.Exports
	}
	schoolHandler := NewEntityHandler[models.School](deps.Schools, exports, "Schools")
	adminHandler := NewEntityHandler[models.SchoolAdmin](deps.Admins, exports, "School Admins")

	root := r.Group(prefix)
	auth := root.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)

	protected := root.Group("")
	protected.Use(middleware.RequireSession(deps.Auth, deps.Sessions, loginPath))
	protected.GET("", dashboardHandler.Overview)
	protected.POST("/reset", dashboardHandler.Reset)
	schoolHandler.Register(protected.Group("/schools"))
	adminHandler.Register(protected.Group("/admins"))

	return r
}
