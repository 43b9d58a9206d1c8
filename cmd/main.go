package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/meleongg/flashcard-backend/internal/auth"
	"github.com/meleongg/flashcard-backend/internal/client"
	"github.com/meleongg/flashcard-backend/internal/config"
	"github.com/meleongg/flashcard-backend/internal/handler"
	"github.com/meleongg/flashcard-backend/internal/repository"
	"github.com/meleongg/flashcard-backend/internal/service"
	"github.com/meleongg/flashcard-backend/internal/storage/cache"
	"github.com/meleongg/flashcard-backend/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer database.Close()

	repos := repository.NewRepository(database)
	clients := client.InitClients(cfg.OpenAI)
	memCache := cache.NewCache()
	services := service.InitServices(clients, repos, memCache, service.NewClock(), logger)

	tokens := auth.NewTokenParser(cfg.Auth.Secret)
	h := handler.New(services, tokens, logger)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      h.Routes(),
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
