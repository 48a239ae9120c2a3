package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"globalquote/internal/bootstrap"
	"globalquote/internal/config"
	httpserver "globalquote/internal/infrastructure/http"
	"globalquote/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	cfg := config.Load()
	logger, err := logx.New(cfg.LogLevel)
	if err != nil {
		logger = logx.L()
	}
	logx.SetLogger(logger)
	defer func() { _ = logger.Sync() }()
	addr := ":" + cfg.Port

	svc, err := bootstrap.BuildQuoteService(cfg, logger)
	if err != nil {
		logger.Fatal("bootstrap quote service", zap.Error(err))
	}
	srv := httpserver.NewServer(svc)
	srv.SetReadyCheck(func(context.Context) error { return cfg.Validate() })

	server := &http.Server{
		Addr:    addr,
		Handler: httpserver.NewRouter(srv),
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
