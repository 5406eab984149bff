package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boxful/internal/auth"
	"boxful/internal/config"
	"boxful/internal/history"
	"boxful/internal/infrastructure/api"
	"boxful/internal/infrastructure/logger"
	"boxful/internal/order"
	"boxful/internal/server"
	"boxful/internal/web"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	client := api.NewClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout})
	sessions := web.NewSessionStore(cfg.Session.Secret, zapLogger)

	renderer, err := web.NewRenderer(zapLogger)
	if err != nil {
		zapLogger.Fatal("parsing templates", zap.Error(err))
	}
	shell := web.NewShellLoader(client, zapLogger)

	authCtrl := auth.NewController(client, sessions, renderer, zapLogger)
	orderCtrl := order.NewModule(client, sessions, renderer, shell, zapLogger)
	historyCtrl := history.NewModule(client, sessions, renderer, shell, zapLogger)

	router := server.NewRouter(authCtrl, orderCtrl, historyCtrl, sessions, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
