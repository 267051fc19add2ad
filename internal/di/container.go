package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	linkService "github.com/heywood8/telegram-downloader-bot/internal/modules/link/service"
	replyService "github.com/heywood8/telegram-downloader-bot/internal/modules/reply/service"
	"github.com/heywood8/telegram-downloader-bot/internal/shared/config"
	httpServer "github.com/heywood8/telegram-downloader-bot/internal/transport/http"
	telegramHandler "github.com/heywood8/telegram-downloader-bot/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Link Matcher Service
	do.Provide(injector, func(i do.Injector) (*linkService.Service, error) {
		return linkService.New(), nil
	})

	// Register Reply Policy Service
	do.Provide(injector, func(i do.Injector) (*replyService.Service, error) {
		matcher := do.MustInvoke[*linkService.Service](i)
		return replyService.New(matcher), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		replyService := do.MustInvoke[*replyService.Service](i)
		return telegramHandler.New(cfg, replyService), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		replyService := do.MustInvoke[*replyService.Service](i)
		server := httpServer.New(cfg, replyService)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Bot (lazy: only constructed when polling is enabled, since
	// bot.New validates the token against the Telegram API)
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		telegramHandler := do.MustInvoke[*telegramHandler.Handler](i)

		opts := []bot.Option{
			bot.WithServerURL(cfg.TelegramAPIURL),
			bot.WithDefaultHandler(telegramHandler.HandleUpdate),
			bot.WithAllowedUpdates(bot.AllowedUpdates{"message", "edited_message"}),
			bot.WithErrorsHandler(func(err error) {
				slog.Error("Telegram polling error", "error", err)
			}),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		// Register bot commands
		telegramHandler.RegisterCommands(b)

		return b, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return nil
	}

	// Shutdown bot if polling was enabled
	if cfg.EnableTelegramPolling {
		if b, err := do.Invoke[*bot.Bot](injector); err == nil && b != nil {
			if _, err := b.Close(ctx); err != nil {
				slog.Error("Failed to close Telegram bot", "error", err)
			}
		}
	}

	// Shutdown HTTP server if it was started
	if cfg.EnableHTTPServer {
		if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
			if err := server.Stop(ctx); err != nil {
				return err
			}
		}
	}

	return nil
}
