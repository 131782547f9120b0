package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/remixhub/docs"
	"github.com/remixhub/internal/config"
	"github.com/remixhub/internal/db"
	"github.com/remixhub/internal/handler"
	"github.com/remixhub/internal/logger"
	"github.com/remixhub/internal/router"
	"github.com/remixhub/internal/service"
	"github.com/remixhub/internal/store"
	"go.uber.org/zap"
)

// @title           RemixHub API
// @version         1.0
// @description     创意项目展示、众筹数据与 AI 重构接口。
// @BasePath        /
func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	// 初始化数据库
	gdb, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		zl.Fatal("failed to initialize database", zap.Error(err))
	}

	models := service.NewModelConfigService(gdb, cfg.AI.Timeout)
	if err := models.Seed(providerKeys(cfg.AI)); err != nil {
		zl.Fatal("failed to seed model configs", zap.Error(err))
	}

	ids := store.NewIDSource()
	records := store.New(append(store.SeedRecords(), store.DemoRecords(ids, cfg.SeedDemoRecords)...))
	gateway := service.NewGateway(models, zl.Named("ai"))

	api := handler.NewAPI(handler.Dependencies{
		Records:  records,
		Feed:     service.NewFeedService(records, models),
		Remixes:  service.NewRemixService(records, ids, gateway),
		Editor:   service.NewEditorService(records, ids, gateway),
		Models:   models,
		Requests: service.NewRequestTrackerWithTTL(cfg.RequestStateTTL),
		Logger:   zl,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router.SetupRouter(cfg, api, zl),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zl.Info("http server starting", zap.String("addr", cfg.ListenAddr), zap.Int("records", records.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		zl.Info("shutdown requested")
	case err := <-errCh:
		zl.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}

// providerKeys 将环境变量中的凭据映射到内置模型平台。
func providerKeys(ai config.AIConfig) map[string]string {
	return map[string]string{
		"deepseek": ai.DeepSeekAPIKey,
		"qwen":     ai.DashScopeAPIKey,
		"baichuan": ai.BaichuanAPIKey,
		"gemini":   ai.GeminiAPIKey,
		"gpt4":     ai.OpenAIAPIKey,
		"claude":   ai.AnthropicAPIKey,
	}
}
