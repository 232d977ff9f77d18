package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"homework-status-bot/config"
	"homework-status-bot/internal/api"
	"homework-status-bot/internal/db"
	"homework-status-bot/internal/logging"
	"homework-status-bot/internal/notification"
	"homework-status-bot/internal/poller"
	"homework-status-bot/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath, envPath string
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to an optional config yaml")
	flag.StringVar(&envPath, "env", ".env", "path to an optional .env file")
	flag.Parse()

	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", envPath, err)
		return 1
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return 1
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		return 1
	}
	defer logCloser.Close()

	logger.Debug().Msg("bot starting")

	if !config.CheckTokens(cfg, logger) {
		logging.Critical(logger).Msg("required credentials are missing, stopping")
		return 1
	}

	gormDB, err := db.Init(&cfg.Database, logger)
	if err != nil {
		logging.Critical(logger).Err(err).Msg("failed to initialize journal database")
		return 1
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}
	journal := store.NewGormStore(gormDB)

	bot, err := notification.NewBot(cfg.Telegram, cfg.Credentials.TelegramToken)
	if err != nil {
		logging.Critical(logger).Err(err).Msg("failed to create telegram bot")
		return 1
	}
	notifier := notification.New(bot, cfg.Credentials.TelegramChatID, cfg.Telegram.RatePerSec, logger)

	fetcher := poller.NewHTTPFetcher(cfg.Poller, cfg.Credentials.PracticumToken, logger)
	svc := poller.NewService(cfg, fetcher, notifier, journal, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var server *http.Server
	if cfg.Server.Enabled {
		server = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           api.NewRouter(journal, cfg.Server, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info().Int("port", cfg.Server.Port).Msg("status server starting")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("status server stopped")
			}
		}()
	}

	svc.Run(ctx)
	logger.Info().Msg("shutdown signal received, stopping services")

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("status server shutdown")
		}
	}

	logger.Info().Msg("bot stopped")
	return 0
}
