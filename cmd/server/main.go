package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/config"
	cronrunner "github.com/FangedParakeet/fantasy-baseball-assistant/internal/cron"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/db"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/handler"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/logger"
	gormrepository "github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository/gorm"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/service"

	_ "github.com/FangedParakeet/fantasy-baseball-assistant/docs"
)

func main() {
	cfgPath := os.Getenv("FBA_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("FBA_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)
	watchlistSvc := &service.WatchlistService{Repo: store, Logger: logger, Engine: cfg.Engine}
	rankingsSvc := &service.RankingsService{Repo: store, Logger: logger, Engine: cfg.Engine}
	scheduleSvc := &service.ScheduleService{Repo: store, Logger: logger, Engine: cfg.Engine}
	streamingSvc := &service.StreamingService{Repo: store, Logger: logger, Engine: cfg.Engine}
	playerSvc := &service.PlayerService{Repo: store, Logger: logger}
	retentionSvc := &service.RetentionService{Repo: store, Logger: logger, Retention: cfg.Retention}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm, Env: cfg.App.Env}
	healthHandler.Register(engine)
	playerHandler := &handler.PlayerHandler{
		Watchlists: watchlistSvc,
		Rankings:   rankingsSvc,
		Players:    playerSvc,
		Logger:     logger,
	}
	playerHandler.Register(engine)
	pitcherHandler := &handler.PitcherHandler{Streaming: streamingSvc, Logger: logger}
	pitcherHandler.Register(engine)
	teamHandler := &handler.TeamHandler{
		Schedule: scheduleSvc,
		Rankings: rankingsSvc,
		Logger:   logger,
	}
	teamHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, ctx)
		_, err = cronRunner.Add(cfg.Cron.Retention, func(ctx context.Context) {
			if err := retentionSvc.RunOnce(ctx); err != nil {
				logger.Warn("cron retention failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Warn("cron register retention failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
