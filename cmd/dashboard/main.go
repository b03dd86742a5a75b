package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/sma-adp-dashboard/api/swagger"
	"github.com/noah-isme/sma-adp-dashboard/internal/entity"
	"github.com/noah-isme/sma-adp-dashboard/internal/handler"
	"github.com/noah-isme/sma-adp-dashboard/internal/seed"
	"github.com/noah-isme/sma-adp-dashboard/internal/service"
	"github.com/noah-isme/sma-adp-dashboard/pkg/config"
	"github.com/noah-isme/sma-adp-dashboard/pkg/export"
	"github.com/noah-isme/sma-adp-dashboard/pkg/logger"
	"github.com/noah-isme/sma-adp-dashboard/pkg/session"
)

// @title SMA ADP Dashboard
// @version 0.1.0
// @description School and school-admin management dashboard
// @BasePath /dashboard
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dataset, err := seed.Load(cfg.Seed.File)
	if err != nil {
		logr.Fatal("failed to load seed dataset", zap.Error(err))
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	validate := validator.New()
	opts := []entity.Option{
		entity.WithValidator(validate),
		entity.WithLogger(logr),
	}
	if metrics != nil {
		opts = append(opts, entity.WithRecorder(metrics))
	}

	schools := service.NewSchoolController(dataset.Schools, opts...)
	admins := service.NewAdminController(dataset.Admins, schools, opts...)

	authService, err := service.NewAuthService(validate, logr, metrics, service.AuthConfig{
		Email:      cfg.Auth.Email,
		Password:   cfg.Auth.Password,
		Name:       cfg.Auth.Name,
		LoginDelay: cfg.Auth.LoginDelay,
		SessionTTL: cfg.Session.TTL,
	})
	if err != nil {
		logr.Fatal("failed to init auth service", zap.Error(err))
	}

	sessions, err := newSessionProvider(cfg)
	if err != nil {
		logr.Fatal("failed to init session store", zap.Error(err), zap.String("driver", cfg.Session.Driver))
	}

	var exports *service.ExportService
	if cfg.Exports.Enabled {
		exports = service.NewExportService(logr, metrics, export.NewCSVExporter(), export.NewPDFExporter())
	}

	r := handler.NewRouter(handler.RouterDeps{
		Logger:         logr,
		Prefix:         cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Auth:           authService,
		Sessions:       sessions,
		Schools:        schools,
		Admins:         admins,
		Dashboard:      service.NewDashboardService(schools, admins, service.DefaultRecentLimit),
		Exports:        exports,
		Metrics:        metrics,
		EnableDocs:     cfg.Docs.Enabled && cfg.Env != config.EnvProduction,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "session_driver", cfg.Session.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newSessionProvider(cfg *config.Config) (session.Provider, error) {
	switch cfg.Session.Driver {
	case config.SessionDriverMemory:
		return session.NewDeviceProvider(session.NewMemoryStore(), cfg.Session.KeyPrefix, cfg.Session.CookieSecure, cfg.Session.TTL), nil
	case config.SessionDriverRedis:
		client, err := session.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return session.NewDeviceProvider(session.NewRedisStore(client), cfg.Session.KeyPrefix, cfg.Session.CookieSecure, cfg.Session.TTL), nil
	default:
		return session.NewCookieProvider(cfg.Session.Secret, cfg.Session.CookieSecure), nil
	}
}
