package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/heywood8/telegram-downloader-bot/internal/di"
	"github.com/heywood8/telegram-downloader-bot/internal/shared/config"
	httpServer "github.com/heywood8/telegram-downloader-bot/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	// Setup structured logging with multiple handlers using slog-multi
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if !cfg.EnableTelegramPolling && !cfg.EnableHTTPServer {
		slog.Info("Both Telegram polling and HTTP server are disabled, nothing to do")
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start Telegram long polling
	if cfg.EnableTelegramPolling {
		// A rejected token surfaces here, before any adapter runs
		b, err := do.Invoke[*bot.Bot](injector)
		if err != nil {
			slog.Error("Failed to start Telegram bot", "error", err)
			os.Exit(1)
		}

		go b.Start(ctx)
		slog.Info("Telegram polling started")
	}

	// Start HTTP server
	if cfg.EnableHTTPServer {
		server := do.MustInvoke[*httpServer.Server](injector)
		go func() {
			if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Failed to start HTTP server", "error", err)
				os.Exit(1)
			}
		}()
		slog.Info("HTTP server started", "port", cfg.HTTPPort)
	}

	slog.Info("Application started")
	slog.Info("Press Ctrl+C to stop")

	<-ctx.Done()
	slog.Info("Shutting down...")
}
