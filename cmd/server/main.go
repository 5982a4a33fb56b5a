package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bot-admin-panel/internal/common/audit"
	"bot-admin-panel/internal/common/config"
	"bot-admin-panel/internal/common/logger"
	"bot-admin-panel/internal/common/middleware"
	authhttp "bot-admin-panel/internal/features/auth/delivery/http"
	"bot-admin-panel/internal/features/auth/repository/memory"
	"bot-admin-panel/internal/features/auth/service"
	panelhttp "bot-admin-panel/internal/features/panel/delivery/http"
	"bot-admin-panel/internal/platform/botapi"
	redisplatform "bot-admin-panel/internal/platform/redis"
)

const (
	staticDir       = "./static"
	shutdownTimeout = 30 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}

	logger.Init("bot-admin-panel", cfg.Debug)

	recorder, err := audit.New(cfg.Audit)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open audit logs")
	}
	defer recorder.Close()

	sessions := memory.NewSessionStore()
	go sessions.StartSweeper(ctx, cfg.Auth.SweepInterval)

	apiClient := botapi.NewClient(cfg.BotAPI.URL, cfg.BotAPI.Key, cfg.BotAPI.Timeout)
	authSvc := service.NewAuthService(cfg, sessions, apiClient)

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(gin.Recovery())

	metrics := middleware.NewMetrics("bot_admin_panel")
	router.Use(metrics.Handler())

	if cfg.CORS.Enabled {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     cfg.CORS.AllowedMethods,
			AllowHeaders:     cfg.CORS.AllowedHeaders,
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.Use(middleware.RequestAudit(recorder, authSvc))
	router.Use(middleware.SessionGate(cfg.Auth.BasicEnabled, authSvc))

	if cfg.Redis.Enabled {
		rdb, err := redisplatform.Open(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to redis")
		}
		defer rdb.Close()
		router.Use(middleware.ResponseCache(rdb, cfg.Redis.CacheTTL))
	}

	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", staticDir)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authhttp.NewAuthHandler(authSvc, recorder, cfg.Auth.SessionTTL, cfg.Auth.BasicEnabled).RegisterRoutes(router)
	panelhttp.NewPanelHandler(apiClient, recorder, staticDir).RegisterRoutes(router)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		logger.Info().Str("addr", addr).Msg("Admin panel listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
